// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline runs and complexity-log
// writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myRunHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Run().OnReadStart(ctx, path)
//	// ... read points ...
//	observability.Run().OnReadComplete(ctx, path, len(points), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Run Hooks
// =============================================================================

// RunHooks receives events from a read → sweep → write run.
type RunHooks interface {
	// Read events
	OnReadStart(ctx context.Context, path string)
	OnReadComplete(ctx context.Context, path string, points int, duration time.Duration, err error)

	// OnSweepComplete records a finished sweep: input size, resulting
	// layer count and operation count.
	OnSweepComplete(ctx context.Context, points, layers int, ops int64, duration time.Duration)

	// OnWriteComplete records the output file write.
	OnWriteComplete(ctx context.Context, path, format string, duration time.Duration, err error)
}

// =============================================================================
// Log Hooks
// =============================================================================

// LogHooks receives events from complexity-log operations.
type LogHooks interface {
	// OnLogAppend records an "n,T" append.
	OnLogAppend(ctx context.Context, path string, n int, t int64, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnReadStart(context.Context, string)                                   {}
func (NoopRunHooks) OnReadComplete(context.Context, string, int, time.Duration, error)     {}
func (NoopRunHooks) OnSweepComplete(context.Context, int, int, int64, time.Duration)       {}
func (NoopRunHooks) OnWriteComplete(context.Context, string, string, time.Duration, error) {}

// NoopLogHooks is a no-op implementation of LogHooks.
type NoopLogHooks struct{}

func (NoopLogHooks) OnLogAppend(context.Context, string, int, int64, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	runHooks RunHooks = NoopRunHooks{}
	logHooks LogHooks = NoopLogHooks{}
	hooksMu  sync.RWMutex
)

// SetRunHooks registers custom run hooks.
// This should be called once at application startup before any runs.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// SetLogHooks registers custom log hooks.
func SetLogHooks(h LogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		logHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Log returns the registered log hooks.
func Log() LogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return logHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
	logHooks = NoopLogHooks{}
}

package errors

import (
	"strings"
	"unicode"
)

// MaxPointCount bounds the declared point count of an input file. Counts
// above it are reported as allocation failures before any buffer is made.
const MaxPointCount = 1 << 28

// ValidatePointCount checks a declared point count.
func ValidatePointCount(n int) error {
	if n < 0 {
		return New(ErrCodeInputParse, "negative number of points: %d", n)
	}
	if n > MaxPointCount {
		return New(ErrCodeAllocation, "cannot allocate %d points (max %d)", n, MaxPointCount)
	}
	return nil
}

// ValidateFilePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateRange checks that lo ≤ hi and both are non-negative.
func ValidateRange(name string, lo, hi int) error {
	if lo < 0 || hi < 0 {
		return New(ErrCodeInvalidInput, "%s range must be non-negative: [%d, %d]", name, lo, hi)
	}
	if lo > hi {
		return New(ErrCodeInvalidInput, "%s range is empty: [%d, %d]", name, lo, hi)
	}
	return nil
}

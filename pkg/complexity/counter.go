package complexity

// Counter accumulates unit operation costs.
//
// The zero value is ready to use. All methods are safe to call on a nil
// *Counter, which counts nothing; this lets algorithms accept an optional
// counter without branching at every step.
//
// Counter is not safe for concurrent use.
type Counter struct {
	n int64
}

// Add records k units of work.
func (c *Counter) Add(k int64) {
	if c != nil {
		c.n += k
	}
}

// Inc records one unit of work.
func (c *Counter) Inc() { c.Add(1) }

// Value returns the accumulated total. A nil counter reports 0.
func (c *Counter) Value() int64 {
	if c == nil {
		return 0
	}
	return c.n
}

// Reset sets the total back to zero.
func (c *Counter) Reset() {
	if c != nil {
		c.n = 0
	}
}

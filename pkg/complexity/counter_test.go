package complexity

import "testing"

func TestCounter(t *testing.T) {
	var c Counter
	c.Inc()
	c.Add(4)
	if got := c.Value(); got != 5 {
		t.Errorf("Value() = %d, want 5", got)
	}
	c.Reset()
	if got := c.Value(); got != 0 {
		t.Errorf("Value() after Reset = %d, want 0", got)
	}
}

func TestNilCounter(t *testing.T) {
	var c *Counter
	c.Inc()
	c.Add(10)
	c.Reset()
	if got := c.Value(); got != 0 {
		t.Errorf("nil Counter Value() = %d, want 0", got)
	}
}

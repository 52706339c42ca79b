package catalog

// cursor is a circular read position over a sequence of length total.
// pos stays in [0, total): it wraps to 0 the moment it reaches total, so a
// non-empty sequence never reports zero remaining items.
type cursor struct {
	pos int
}

func (c *cursor) remaining(total int) int {
	return total - c.pos
}

// advance returns the current index and moves past it.
func (c *cursor) advance(total int) int {
	contract(c.remaining(total) > 0, "no items remaining")
	i := c.pos
	c.pos++
	if c.pos >= total {
		c.pos = 0
	}
	return i
}

func (c *cursor) reset() {
	c.pos = 0
}

// shift keeps the cursor on the same upcoming item after the first element
// of the sequence is removed. total is the new length.
func (c *cursor) shift(total int) {
	if c.pos > 0 {
		c.pos--
	}
	if c.pos >= total {
		c.pos = 0
	}
}

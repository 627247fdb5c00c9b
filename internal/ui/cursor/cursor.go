// Package cursor tracks the selected row of a scrolling list and the
// window of rows on screen.
package cursor

// Cursor is a selected position plus the first visible row. The list length
// and the window height are passed to each call because the play list can
// change under the cursor at any time.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the selection
}

// New creates a cursor at the top of the list.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row.
func (c Cursor) Pos() int {
	return c.pos
}

// Move shifts the selection by delta rows, clamped to the list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects row pos, clamped to the list, and scrolls it into view.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = min(max(pos, 0), n-1)
	c.follow(n, height)
}

// Clamp keeps the selection inside a list that may have shrunk.
func (c *Cursor) Clamp(n, height int) {
	c.Jump(c.pos, n, height)
}

// Window returns the visible rows [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

func (c *Cursor) follow(n, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = min(max(c.offset, 0), max(n-height, 0))
}

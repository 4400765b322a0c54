package console

import "fmt"

// MoveCursor moves the cursor horizontally by delta columns, clamped to the
// window: the target column never goes below 0 or past the last column.
// Out-of-range deltas are not an error, they just pin the cursor at the
// edge. When output is redirected there is no cursor to move and the call
// is a no-op.
//
// The current column is the one implied by the Console's own writes; output
// that bypasses the Console is invisible to the clamp.
func (c *Console) MoveCursor(delta int) error {
	if c.outRedirected {
		return nil
	}

	target := c.col + delta
	if target < 0 {
		target = 0
	}
	if max := c.Width() - 1; target > max {
		target = max
	}
	c.col = target

	// CHA positions by absolute column, 1-based.
	return c.writeRaw(fmt.Sprintf("\x1b[%dG", target+1))
}

// ClearLine blanks the current line and leaves the cursor at column 0. On a
// redirected stream there is no line to revisit, so the clear degrades to a
// line break and the cursor position is never touched.
func (c *Console) ClearLine() error {
	if c.outRedirected {
		return c.write("\n")
	}

	c.col = 0
	return c.writeRaw("\r\x1b[K")
}

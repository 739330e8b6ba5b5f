// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/cursor.go
// Summary: Implements the cursor with deferred wrap and the scroll region.
// Usage: Owned by Terminal; motion ops clamp to grid bounds and never fail.
// Notes: Motion clamps to the full grid, not the scroll region.

package term

// Cursor tracks the write position, the pending-wrap flag and the active
// scroll region.
//
// PendingWrap implements deferred autowrap: after writing into the last
// column the cursor stays on that column with PendingWrap set, and the
// wrap happens on the next printable character.
type Cursor struct {
	Row, Col    int
	PendingWrap bool
	Pen         Pen

	scrollTop    int // inclusive
	scrollBottom int // exclusive

	savedRow, savedCol int
	savedPen           Pen
	hasSaved           bool
}

// NewCursor returns a cursor at the origin with the scroll region covering
// the full grid.
func NewCursor(cols, rows int) *Cursor {
	return &Cursor{
		Pen:          DefaultPen(),
		scrollBottom: rows,
	}
}

// ScrollTop returns the inclusive top row of the scroll region.
func (cu *Cursor) ScrollTop() int { return cu.scrollTop }

// ScrollBottom returns the exclusive bottom row of the scroll region.
func (cu *Cursor) ScrollBottom() int { return cu.scrollBottom }

// CarriageReturn moves the cursor to column 0 and clears the pending wrap.
func (cu *Cursor) CarriageReturn() {
	cu.Col = 0
	cu.PendingWrap = false
}

// MoveUp moves the cursor up by n rows, clamped at the top of the grid.
func (cu *Cursor) MoveUp(n int) {
	cu.Row -= n
	if cu.Row < 0 {
		cu.Row = 0
	}
	cu.PendingWrap = false
}

// MoveDown moves the cursor down by n rows, clamped at the last row.
func (cu *Cursor) MoveDown(n, rows int) {
	cu.Row += n
	if cu.Row >= rows {
		cu.Row = rows - 1
	}
	if cu.Row < 0 {
		cu.Row = 0
	}
	cu.PendingWrap = false
}

// MoveLeft moves the cursor left by n columns, clamped at column 0.
func (cu *Cursor) MoveLeft(n int) {
	cu.Col -= n
	if cu.Col < 0 {
		cu.Col = 0
	}
	cu.PendingWrap = false
}

// MoveRight moves the cursor right by n columns, clamped at the last column.
func (cu *Cursor) MoveRight(n, cols int) {
	cu.Col += n
	if cu.Col >= cols {
		cu.Col = cols - 1
	}
	if cu.Col < 0 {
		cu.Col = 0
	}
	cu.PendingWrap = false
}

// MoveTo places the cursor at an absolute position, clamped to the grid.
func (cu *Cursor) MoveTo(row, col, rows, cols int) {
	cu.Row = clamp(row, 0, max(rows-1, 0))
	cu.Col = clamp(col, 0, max(cols-1, 0))
	cu.PendingWrap = false
}

// SetScrollRegion sets the scroll region to [top, bottom). Bottom is
// clamped to the grid height and a degenerate top >= bottom collapses to a
// one-row region.
func (cu *Cursor) SetScrollRegion(top, bottom, rows int) {
	if top < 0 {
		top = 0
	}
	if bottom > rows {
		bottom = rows
	}
	if top >= bottom {
		if bottom > 0 {
			top = bottom - 1
		} else {
			top = 0
			bottom = min(1, rows)
		}
	}
	cu.scrollTop = top
	cu.scrollBottom = bottom
}

// Save records the cursor position and pen for a later Restore (DECSC).
func (cu *Cursor) Save() {
	cu.savedRow = cu.Row
	cu.savedCol = cu.Col
	cu.savedPen = cu.Pen
	cu.hasSaved = true
}

// Restore returns the cursor to the saved position and pen (DECRC). With
// no prior Save it homes the cursor with a default pen, matching VT100.
func (cu *Cursor) Restore(rows, cols int) {
	if !cu.hasSaved {
		cu.MoveTo(0, 0, rows, cols)
		cu.Pen = DefaultPen()
		return
	}
	cu.MoveTo(cu.savedRow, cu.savedCol, rows, cols)
	cu.Pen = cu.savedPen
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/terminal.go
// Summary: Composes grid, cursor and scrollback and applies actions.
// Usage: Apply is the single entry point for state transitions.
// Notes: Not safe for concurrent use; callers serialize access.

package term

import "github.com/rivo/uniseg"

const (
	defaultScrollbackLines = 2000
	tabWidth               = 8
)

// Terminal is the complete emulation state: one grid, one cursor and one
// scrollback buffer. Every transition goes through Apply, is total and
// never fails; out-of-range parameters clamp or no-op.
//
// Terminal performs no I/O and is not safe for concurrent use.
type Terminal struct {
	grid       *Grid
	cursor     *Cursor
	scrollback *Scrollback

	cols, rows    int
	scrollbackCap int
}

// Option configures a Terminal at construction.
type Option func(*Terminal)

// WithScrollback sets the scrollback capacity in lines. Zero disables
// scrollback entirely.
func WithScrollback(lines int) Option {
	return func(t *Terminal) {
		t.scrollbackCap = lines
	}
}

// New creates a terminal with a blank cols x rows grid and the cursor at
// the origin. Zero dimensions are legal; every action is then a no-op.
func New(cols, rows int, opts ...Option) *Terminal {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	t := &Terminal{
		cols:          cols,
		rows:          rows,
		scrollbackCap: defaultScrollbackLines,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.grid = NewGrid(cols, rows)
	t.cursor = NewCursor(cols, rows)
	t.scrollback = NewScrollback(t.scrollbackCap)
	return t
}

// Grid returns the live grid. The caller must not retain it across Apply
// of FullReset or Resize.
func (t *Terminal) Grid() *Grid { return t.grid }

// Cursor returns the live cursor state.
func (t *Terminal) Cursor() *Cursor { return t.cursor }

// Scrollback returns the scrollback buffer.
func (t *Terminal) Scrollback() *Scrollback { return t.scrollback }

// Cols returns the terminal width in columns.
func (t *Terminal) Cols() int { return t.cols }

// Rows returns the terminal height in rows.
func (t *Terminal) Rows() int { return t.rows }

// Apply executes one action against the terminal state.
func (t *Terminal) Apply(a Action) {
	cu := t.cursor
	bg := cu.Pen.BG
	switch a.Kind {
	case KindPrint:
		t.printCluster(a.R, "", RuneDisplayWidth(a.R))

	case KindNewline, KindIndex:
		t.lineFeed()

	case KindCarriageReturn:
		cu.CarriageReturn()

	case KindCursorUp:
		cu.MoveUp(a.N)
	case KindCursorDown:
		cu.MoveDown(a.N, t.rows)
	case KindCursorLeft:
		cu.MoveLeft(a.N)
	case KindCursorRight:
		cu.MoveRight(a.N, t.cols)
	case KindCursorPosition:
		cu.MoveTo(a.Row, a.Col, t.rows, t.cols)

	case KindSetScrollRegion:
		bottom := a.Bottom
		if bottom == 0 {
			bottom = t.rows
		} else {
			bottom = min(bottom, t.rows)
		}
		cu.SetScrollRegion(a.Top, bottom, t.rows)
		cu.MoveTo(0, 0, t.rows, t.cols)

	case KindScrollUp:
		t.grid.ScrollUpInto(cu.ScrollTop(), cu.ScrollBottom(), a.N, t.scrollback, bg)
		cu.PendingWrap = false
	case KindScrollDown:
		t.grid.ScrollDown(cu.ScrollTop(), cu.ScrollBottom(), a.N, bg)
		cu.PendingWrap = false

	case KindInsertLines:
		t.grid.InsertLines(cu.Row, a.N, cu.ScrollTop(), cu.ScrollBottom(), bg)
		cu.PendingWrap = false
	case KindDeleteLines:
		t.grid.DeleteLines(cu.Row, a.N, cu.ScrollTop(), cu.ScrollBottom(), bg)
		cu.PendingWrap = false

	case KindInsertChars:
		t.grid.InsertChars(cu.Row, cu.Col, a.N, bg)
		cu.PendingWrap = false
	case KindDeleteChars:
		t.grid.DeleteChars(cu.Row, cu.Col, a.N, bg)
		cu.PendingWrap = false

	case KindEraseInDisplay:
		switch a.Mode {
		case 0:
			t.grid.EraseBelow(cu.Row, cu.Col, bg)
		case 1:
			t.grid.EraseAbove(cu.Row, cu.Col, bg)
		case 2:
			t.grid.EraseAll(bg)
		}

	case KindEraseInLine:
		switch a.Mode {
		case 0:
			t.grid.EraseLineRight(cu.Row, cu.Col, bg)
		case 1:
			t.grid.EraseLineLeft(cu.Row, cu.Col, bg)
		case 2:
			t.grid.EraseLine(cu.Row, bg)
		}

	case KindEraseChars:
		t.grid.EraseChars(cu.Row, cu.Col, a.N, bg)

	case KindReverseIndex:
		if cu.Row <= cu.ScrollTop() {
			t.grid.ScrollDown(cu.ScrollTop(), cu.ScrollBottom(), 1, bg)
		} else {
			cu.MoveUp(1)
		}

	case KindNextLine:
		cu.CarriageReturn()
		t.lineFeed()

	case KindTab:
		t.horizontalTab()

	case KindBackspace:
		cu.MoveLeft(1)

	case KindSaveCursor:
		cu.Save()
	case KindRestoreCursor:
		cu.Restore(t.rows, t.cols)

	case KindAlignmentFill:
		t.grid.FillAll('E')
		cu.SetScrollRegion(0, t.rows, t.rows)
		cu.MoveTo(0, 0, t.rows, t.cols)

	case KindSetPen:
		cu.Pen = a.Pen

	case KindFullReset:
		t.Reset()

	default:
		// Mode changes and other unhandled controls do not affect
		// structural state.
	}
}

// WriteString applies a plain text string: printable grapheme clusters
// are printed with wrap semantics and the simple C0 controls (\n, \r,
// \t, \b) map to their actions. Other control runes are ignored.
func (t *Terminal) WriteString(s string) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		runes := gr.Runes()
		// Segmentation joins "\r\n" into one two-rune cluster, so control
		// handling walks the cluster's runes rather than assuming one.
		if runes[0] < 0x20 {
			for _, r := range runes {
				switch r {
				case '\n':
					t.Apply(Newline())
				case '\r':
					t.Apply(CarriageReturn())
				case '\t':
					t.Apply(Tab())
				case '\b':
					t.Apply(Backspace())
				}
			}
			continue
		}
		if len(runes) == 1 {
			t.printCluster(runes[0], "", RuneDisplayWidth(runes[0]))
			continue
		}
		t.printCluster(runes[0], cluster, GraphemeDisplayWidth(cluster))
	}
}

// Reset reconstructs the grid, cursor and scrollback from scratch,
// keeping the configured dimensions and scrollback capacity.
func (t *Terminal) Reset() {
	t.grid = NewGrid(t.cols, t.rows)
	t.cursor = NewCursor(t.cols, t.rows)
	t.scrollback = NewScrollback(t.scrollbackCap)
}

// Resize changes the terminal dimensions, anchoring content through the
// scrollback buffer and resetting the scroll region to the full height.
func (t *Terminal) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == t.cols && rows == t.rows {
		return
	}
	grid, cursorRow := t.grid.ResizeWithScrollback(cols, rows, t.cursor.Row, t.scrollback)
	t.grid = grid
	t.cols = cols
	t.rows = rows
	t.cursor.Row = cursorRow
	t.cursor.Col = clamp(t.cursor.Col, 0, max(cols-1, 0))
	t.cursor.PendingWrap = false
	t.cursor.SetScrollRegion(0, rows, rows)
}

// lineFeed moves the cursor down one row, scrolling the region up (and
// feeding scrollback) at the bottom margin. Below the region the cursor
// is bounded by the last grid row.
func (t *Terminal) lineFeed() {
	cu := t.cursor
	if cu.Row+1 >= cu.ScrollBottom() {
		t.grid.ScrollUpInto(cu.ScrollTop(), cu.ScrollBottom(), 1, t.scrollback, cu.Pen.BG)
	} else if cu.Row+1 < t.rows {
		cu.Row++
	}
	cu.PendingWrap = false
}

// horizontalTab advances to the next fixed 8-column tab stop, clamped at
// the last column.
func (t *Terminal) horizontalTab() {
	cu := t.cursor
	if t.cols == 0 {
		return
	}
	next := (cu.Col/tabWidth + 1) * tabWidth
	if next > t.cols-1 {
		next = t.cols - 1
	}
	cu.Col = next
	cu.PendingWrap = false
}

// printCluster implements the deferred-wrap print policy shared by Apply
// and WriteString.
func (t *Terminal) printCluster(r rune, grapheme string, width int) {
	cu := t.cursor

	// A pending wrap resolves before anything else, even for zero-width
	// input.
	if cu.PendingWrap {
		cu.Col = 0
		t.wrapAdvance()
		cu.PendingWrap = false
	}

	if width == 0 {
		return
	}

	// A wide cluster that cannot fit before the right edge wraps first.
	if width == 2 && cu.Col+1 >= t.cols {
		cu.Col = 0
		t.wrapAdvance()
	}

	var written int
	if grapheme != "" {
		written = t.grid.WriteGrapheme(cu.Row, cu.Col, grapheme, cu.Pen)
	} else {
		written = t.grid.WritePrintable(cu.Row, cu.Col, r, cu.Pen)
	}
	if written == 0 {
		return
	}

	if cu.Col+written >= t.cols {
		cu.PendingWrap = true
	} else {
		cu.Col += written
		cu.PendingWrap = false
	}
}

// wrapAdvance moves the cursor to the next row for a wrap, scrolling the
// region up at the bottom margin.
func (t *Terminal) wrapAdvance() {
	cu := t.cursor
	if cu.Row+1 >= cu.ScrollBottom() {
		t.grid.ScrollUpInto(cu.ScrollTop(), cu.ScrollBottom(), 1, t.scrollback, cu.Pen.BG)
	} else if cu.Row+1 < t.rows {
		cu.Row++
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid.go
// Summary: Implements the fixed-size screen grid and printable writes.
// Usage: Owned by Terminal; all operations clamp or no-op, never panic.
// Notes: Cells live in one flat slice indexed row*cols+col.

package term

// Grid is the rectangular screen of cells. Dimensions are fixed at
// construction; Resize builds a new grid.
type Grid struct {
	cells []Cell
	cols  int
	rows  int
}

// NewGrid creates a grid of blank cells. Zero dimensions are legal and
// yield a grid on which every operation is a no-op.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &Grid{
		cells: make([]Cell, cols*rows),
		cols:  cols,
		rows:  rows,
	}
	for i := range g.cells {
		g.cells[i] = EmptyCell()
	}
	return g
}

// Cols returns the grid width in columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in rows.
func (g *Grid) Rows() int { return g.rows }

// Cell returns a copy of the cell at (row, col), with ok=false when the
// position is out of range.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[g.index(row, col)], true
}

// CellAt returns a pointer to the cell at (row, col), or nil when the
// position is out of range.
func (g *Grid) CellAt(row, col int) *Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.cells[g.index(row, col)]
}

// Row returns the cells of one row as a slice into the grid's storage,
// or nil when the row is out of range.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	start := g.index(row, 0)
	return g.cells[start : start+g.cols]
}

// WritePrintable writes one printable rune at (row, col) with the pen's
// colors and attributes, and returns the display width written:
//
//   - 0 for combining marks, control runes, or when a wide rune does not
//     fit at col (col+1 past the right edge); the grid is unchanged
//   - 1 for narrow cells
//   - 2 for wide cells (head at col, continuation at col+1)
//
// Wrap policy is the caller's responsibility.
func (g *Grid) WritePrintable(row, col int, r rune, pen Pen) int {
	return g.writeCluster(row, col, r, "", RuneDisplayWidth(r), pen)
}

// WriteGrapheme writes a full grapheme cluster at (row, col) with the
// same width semantics as WritePrintable. Single-codepoint clusters are
// stored as a plain rune.
func (g *Grid) WriteGrapheme(row, col int, s string, pen Pen) int {
	if s == "" {
		return 0
	}
	grapheme := s
	r := firstRune(s)
	if len(s) == len(string(r)) {
		grapheme = ""
	}
	return g.writeCluster(row, col, r, grapheme, GraphemeDisplayWidth(s), pen)
}

func (g *Grid) writeCluster(row, col int, r rune, grapheme string, width int, pen Pen) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0
	}
	switch width {
	case 0:
		return 0
	case 1:
		// Overwriting the continuation of a wide pair orphans its head.
		if col > 0 && g.cells[g.index(row, col-1)].IsWide() {
			g.cells[g.index(row, col-1)].Clear()
		}
		// Overwriting a wide head orphans its continuation.
		idx := g.index(row, col)
		if g.cells[idx].IsWide() && col+1 < g.cols {
			g.cells[g.index(row, col+1)].Clear()
		}
		cell := &g.cells[idx]
		if grapheme != "" {
			cell.SetGrapheme(grapheme, 1)
		} else {
			cell.SetContent(r, 1)
		}
		cell.FG, cell.BG, cell.Attr = pen.FG, pen.BG, pen.Attr
		return 1
	default:
		if col+1 >= g.cols {
			return 0
		}
		g.writeWide(row, col, r, grapheme, pen)
		return 2
	}
}

// writeWide places a wide head at col and its continuation at col+1,
// clearing any wide pairs the write partially overlaps.
func (g *Grid) writeWide(row, col int, r rune, grapheme string, pen Pen) {
	if col > 0 && g.cells[g.index(row, col-1)].IsWide() {
		g.cells[g.index(row, col-1)].Clear()
	}
	next := g.index(row, col+1)
	if g.cells[next].IsWide() && col+2 < g.cols {
		g.cells[g.index(row, col+2)].Clear()
	}
	head, tail := wideCells(r, grapheme, pen)
	g.cells[g.index(row, col)] = head
	g.cells[next] = tail
}

// FillAll fills every cell with the given rune and default attributes.
// Used by the DECALN alignment pattern, which fills the screen with 'E'.
func (g *Grid) FillAll(r rune) {
	for i := range g.cells {
		g.cells[i] = EmptyCell()
		g.cells[i].SetContent(r, 1)
	}
}

// Resize returns a new grid with the given dimensions. Content is kept
// where it fits: the overlapping top-left rectangle is copied, extras are
// truncated, new space is blank.
func (g *Grid) Resize(cols, rows int) *Grid {
	ng := NewGrid(cols, rows)
	copyRows := min(g.rows, ng.rows)
	copyCols := min(g.cols, ng.cols)
	for r := 0; r < copyRows; r++ {
		copy(ng.cells[r*ng.cols:r*ng.cols+copyCols], g.cells[r*g.cols:r*g.cols+copyCols])
	}
	return ng
}

// ResizeWithScrollback returns a new grid resized with scrollback
// integration, plus the adjusted cursor row.
//
// Reflow policy is truncate/extend, no soft-wrap reflow:
//   - width decrease discards cells past the new width;
//   - width increase blanks the new columns;
//   - height decrease pushes excess top rows (at most the rows above
//     the cursor) into scrollback so the cursor stays anchored;
//   - height increase pulls rows back from scrollback to the top.
func (g *Grid) ResizeWithScrollback(cols, rows, cursorRow int, sb *Scrollback) (*Grid, int) {
	if cols == g.cols && rows == g.rows {
		return g, cursorRow
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	srcTop := 0
	newCursorRow := cursorRow
	if rows < g.rows {
		excess := g.rows - rows
		push := min(excess, cursorRow)
		for r := 0; r < push; r++ {
			sb.Push(g.Row(r), false)
		}
		srcTop = push
		newCursorRow = cursorRow - push
	}

	pulled := 0
	if rows > g.rows {
		pulled = min(sb.Len(), rows-g.rows)
	}

	ng := NewGrid(cols, rows)

	destRow := 0
	if pulled > 0 {
		lines := make([]Line, 0, pulled)
		for i := 0; i < pulled; i++ {
			line, ok := sb.PopNewest()
			if !ok {
				break
			}
			lines = append(lines, line)
		}
		// Newest popped first; place oldest at the top.
		for i := len(lines) - 1; i >= 0; i-- {
			n := min(len(lines[i].Cells), cols)
			copy(ng.cells[destRow*cols:destRow*cols+n], lines[i].Cells[:n])
			destRow++
		}
		newCursorRow = cursorRow + pulled
	}

	copyCols := min(g.cols, cols)
	copyRows := min(g.rows-srcTop, rows-destRow)
	for r := 0; r < copyRows; r++ {
		src := (srcTop + r) * g.cols
		dst := (destRow + r) * cols
		copy(ng.cells[dst:dst+copyCols], g.cells[src:src+copyCols])
	}

	return ng, clamp(newCursorRow, 0, max(rows-1, 0))
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

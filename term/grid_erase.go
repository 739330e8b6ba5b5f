// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid_erase.go
// Summary: Implements the ED/EL/ECH erase family on the grid.
// Usage: Called by Terminal.Apply for EraseInDisplay/EraseInLine/EraseChars.
// Notes: Erased cells inherit the pen background (BCE).

package term

// EraseBelow erases from (row, col) to the end of the display (ED 0).
func (g *Grid) EraseBelow(row, col int, bg Color) {
	if row < 0 || row >= g.rows {
		return
	}
	g.eraseSpan(row, col, g.cols, bg)
	for r := row + 1; r < g.rows; r++ {
		g.eraseSpan(r, 0, g.cols, bg)
	}
}

// EraseAbove erases from the start of the display through (row, col)
// inclusive (ED 1).
func (g *Grid) EraseAbove(row, col int, bg Color) {
	if row < 0 || row >= g.rows {
		return
	}
	for r := 0; r < row; r++ {
		g.eraseSpan(r, 0, g.cols, bg)
	}
	g.eraseSpan(row, 0, min(col+1, g.cols), bg)
}

// EraseAll erases the whole display (ED 2).
func (g *Grid) EraseAll(bg Color) {
	for i := range g.cells {
		g.cells[i].Erase(bg)
	}
}

// EraseLineRight erases from (row, col) to the end of the line (EL 0).
func (g *Grid) EraseLineRight(row, col int, bg Color) {
	g.eraseSpan(row, col, g.cols, bg)
}

// EraseLineLeft erases from the start of the line through (row, col)
// inclusive (EL 1).
func (g *Grid) EraseLineLeft(row, col int, bg Color) {
	g.eraseSpan(row, 0, min(col+1, g.cols), bg)
}

// EraseLine erases the whole line (EL 2).
func (g *Grid) EraseLine(row int, bg Color) {
	g.eraseSpan(row, 0, g.cols, bg)
}

// EraseChars erases count cells starting at (row, col) without shifting
// anything (ECH).
func (g *Grid) EraseChars(row, col, count int, bg Color) {
	if col < 0 || count <= 0 {
		return
	}
	g.eraseSpan(row, col, min(col+count, g.cols), bg)
}

// eraseSpan erases [startCol, endCol) on one row, fixing up wide pairs
// split at either boundary.
func (g *Grid) eraseSpan(row, startCol, endCol int, bg Color) {
	if row < 0 || row >= g.rows {
		return
	}
	sc := clamp(startCol, 0, g.cols)
	ec := clamp(endCol, 0, g.cols)
	if sc >= ec {
		return
	}

	// Left fixup: erasing starts on a continuation cell, so the head just
	// outside the span is orphaned.
	if sc > 0 && g.cells[g.index(row, sc)].IsWideTail() {
		g.cells[g.index(row, sc-1)].Erase(bg)
	}
	// Right fixup: the cell just past the span is a continuation whose
	// head is being erased.
	if ec < g.cols && g.cells[g.index(row, ec)].IsWideTail() {
		g.cells[g.index(row, ec)].Erase(bg)
	}

	for c := sc; c < ec; c++ {
		g.cells[g.index(row, c)].Erase(bg)
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid_edit.go
// Summary: Implements ICH/DCH character shifts and IL/DL line edits.
// Usage: Called by Terminal.Apply for insert/delete of chars and lines.
// Notes: Line edits only take effect with the cursor inside the region.

package term

// InsertChars inserts count blank cells at (row, col), shifting the rest
// of the line right. Cells pushed past the right edge are lost (ICH).
func (g *Grid) InsertChars(row, col, count int, bg Color) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || count <= 0 {
		return
	}
	n := min(count, g.cols-col)
	line := g.Row(row)

	// Inserting at a continuation cell orphans the head at col-1.
	wasTail := line[col].IsWideTail()
	if wasTail && col > 0 {
		line[col-1].Erase(bg)
	}

	copy(line[col+n:], line[col:g.cols-n])
	for i := col; i < col+n; i++ {
		line[i].Erase(bg)
	}

	// The continuation that sat at col shifted to col+n with its head
	// already erased.
	if wasTail && col+n < g.cols && line[col+n].IsWideTail() {
		line[col+n].Erase(bg)
	}
	// A wide head shifted onto the last column lost its continuation.
	if line[g.cols-1].IsWide() {
		line[g.cols-1].Erase(bg)
	}
}

// DeleteChars deletes count cells at (row, col), shifting the rest of the
// line left and blanking the vacated cells at the right edge (DCH).
func (g *Grid) DeleteChars(row, col, count int, bg Color) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols || count <= 0 {
		return
	}
	n := min(count, g.cols-col)
	line := g.Row(row)

	// Deleting at a continuation cell orphans the head at col-1.
	if line[col].IsWideTail() && col > 0 {
		line[col-1].Erase(bg)
	}

	copy(line[col:], line[col+n:])
	for i := g.cols - n; i < g.cols; i++ {
		line[i].Erase(bg)
	}

	// After the shift, a continuation at col means its head was deleted.
	if line[col].IsWideTail() {
		line[col].Erase(bg)
	}
}

// InsertLines inserts count blank lines at row within the scroll region
// [top, bottom). Lines pushed past bottom are discarded; a cursor outside
// the region makes this a no-op (IL).
func (g *Grid) InsertLines(row, count, top, bottom int, bg Color) {
	if row < top || row >= bottom {
		return
	}
	g.ScrollDown(row, bottom, count, bg)
}

// DeleteLines deletes count lines at row within the scroll region
// [top, bottom), with blanks appearing at the region bottom (DL).
func (g *Grid) DeleteLines(row, count, top, bottom int, bg Color) {
	if row < top || row >= bottom {
		return
	}
	g.ScrollUp(row, bottom, count, bg)
}

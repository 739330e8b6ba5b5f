// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid_scroll.go
// Summary: Implements region scrolls and their scrollback coupling.
// Usage: ScrollUpInto feeds scrollback; ScrollDown discards at the bottom.
// Notes: top is inclusive, bottom exclusive; counts clamp to region size.

package term

// ScrollUp removes count rows at top, shifts rows above bottom up and
// blanks the vacated rows at the bottom of the region. Evicted rows are
// discarded; use ScrollUpInto to keep them.
func (g *Grid) ScrollUp(top, bottom, count int, bg Color) {
	top = clamp(top, 0, g.rows)
	bottom = clamp(bottom, 0, g.rows)
	if top >= bottom || count <= 0 {
		return
	}
	count = min(count, bottom-top)

	src := (top + count) * g.cols
	dst := top * g.cols
	n := (bottom - top - count) * g.cols
	copy(g.cells[dst:dst+n], g.cells[src:src+n])

	for i := (bottom - count) * g.cols; i < bottom*g.cols; i++ {
		g.cells[i].Erase(bg)
	}
}

// ScrollDown inserts count blank rows at top, shifting the region down
// and discarding rows pushed past bottom. Scrollback is never consulted;
// use ScrollDownFrom to restore saved lines.
func (g *Grid) ScrollDown(top, bottom, count int, bg Color) {
	top = clamp(top, 0, g.rows)
	bottom = clamp(bottom, 0, g.rows)
	if top >= bottom || count <= 0 {
		return
	}
	count = min(count, bottom-top)

	src := top * g.cols
	dst := (top + count) * g.cols
	n := (bottom - top - count) * g.cols
	copy(g.cells[dst:dst+n], g.cells[src:src+n])

	for i := top * g.cols; i < (top+count)*g.cols; i++ {
		g.cells[i].Erase(bg)
	}
}

// ScrollUpInto scrolls up and pushes the evicted top rows into the
// scrollback buffer, oldest first. This is the normal content scroll
// triggered by a newline at the bottom of the region.
func (g *Grid) ScrollUpInto(top, bottom, count int, sb *Scrollback, bg Color) {
	top = clamp(top, 0, g.rows)
	bottom = clamp(bottom, 0, g.rows)
	if top >= bottom || count <= 0 {
		return
	}
	count = min(count, bottom-top)

	for r := top; r < top+count; r++ {
		sb.Push(g.Row(r), false)
	}
	g.ScrollUp(top, bottom, count, bg)
}

// ScrollDownFrom scrolls down and refills the vacated top rows from the
// newest scrollback lines. Rows with no saved line stay blank.
func (g *Grid) ScrollDownFrom(top, bottom, count int, sb *Scrollback, bg Color) {
	top = clamp(top, 0, g.rows)
	bottom = clamp(bottom, 0, g.rows)
	if top >= bottom || count <= 0 {
		return
	}
	count = min(count, bottom-top)

	g.ScrollDown(top, bottom, count, bg)

	for r := top + count - 1; r >= top; r-- {
		line, ok := sb.PopNewest()
		if !ok {
			break
		}
		n := min(len(line.Cells), g.cols)
		copy(g.cells[r*g.cols:r*g.cols+n], line.Cells[:n])
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/grid_scroll_test.go
// Summary: Tests for region scrolls and scrollback coupling.
// Usage: Run with `go test` to verify scroll correctness.
// Notes: Only ScrollUpInto feeds scrollback.

package term

import "testing"

func newLetterGrid(cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.WritePrintable(r, c, rune('a'+r), DefaultPen())
		}
	}
	return g
}

func TestScrollUpShiftsAndBlanks(t *testing.T) {
	g := newLetterGrid(2, 4)
	g.ScrollUp(0, 4, 1, DefaultBG)

	want := []string{"bb", "cc", "dd", "  "}
	for r, w := range want {
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}
}

func TestScrollDownShiftsAndBlanks(t *testing.T) {
	g := newLetterGrid(2, 4)
	g.ScrollDown(0, 4, 1, DefaultBG)

	want := []string{"  ", "aa", "bb", "cc"}
	for r, w := range want {
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}
}

func TestScrollRespectsRegion(t *testing.T) {
	g := newLetterGrid(2, 4)
	g.ScrollUp(1, 3, 1, DefaultBG)

	want := []string{"aa", "cc", "  ", "dd"}
	for r, w := range want {
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}
}

func TestScrollClampsCountAndBounds(t *testing.T) {
	g := newLetterGrid(2, 4)
	// Count larger than the region blanks the whole region, no panic.
	g.ScrollUp(1, 3, 99, DefaultBG)
	want := []string{"aa", "  ", "  ", "dd"}
	for r, w := range want {
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}

	// Degenerate and out-of-range regions are no-ops.
	g = newLetterGrid(2, 4)
	g.ScrollUp(3, 3, 1, DefaultBG)
	g.ScrollUp(3, 1, 1, DefaultBG)
	g.ScrollDown(7, 9, 1, DefaultBG)
	g.ScrollUp(0, 4, 0, DefaultBG)
	for r := 0; r < 4; r++ {
		w := string([]rune{rune('a' + r), rune('a' + r)})
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}
}

func TestScrollUpIntoPushesEvictedRows(t *testing.T) {
	g := newLetterGrid(2, 4)
	sb := NewScrollback(8)
	g.ScrollUpInto(0, 4, 2, sb, DefaultBG)

	if sb.Len() != 2 {
		t.Fatalf("expected 2 scrollback lines, got %d", sb.Len())
	}
	first, _ := sb.LineAt(0)
	second, _ := sb.LineAt(1)
	if lineText(first) != "aa" || lineText(second) != "bb" {
		t.Errorf("scrollback order: got %q, %q", lineText(first), lineText(second))
	}
	if gridText(g, 0) != "cc" {
		t.Errorf("grid top should be cc, got %q", gridText(g, 0))
	}
}

func TestScrollUpIntoInnerRegionStillPushes(t *testing.T) {
	g := newLetterGrid(2, 4)
	sb := NewScrollback(8)
	g.ScrollUpInto(1, 3, 1, sb, DefaultBG)

	if sb.Len() != 1 {
		t.Fatalf("expected 1 scrollback line, got %d", sb.Len())
	}
	line, _ := sb.LineAt(0)
	if lineText(line) != "bb" {
		t.Errorf("expected pushed row bb, got %q", lineText(line))
	}
}

func TestScrollDownNeverTouchesScrollback(t *testing.T) {
	g := newLetterGrid(2, 4)
	sb := NewScrollback(8)
	sb.Push(rowOf("zz"), false)
	g.ScrollDown(0, 4, 2, DefaultBG)
	if sb.Len() != 1 {
		t.Errorf("scroll down must not touch scrollback, len=%d", sb.Len())
	}
}

func TestScrollDownFromRestoresLines(t *testing.T) {
	g := newLetterGrid(2, 3)
	sb := NewScrollback(8)
	sb.Push(rowOf("xx"), false)
	sb.Push(rowOf("yy"), false)

	g.ScrollDownFrom(0, 3, 2, sb, DefaultBG)
	want := []string{"xx", "yy", "aa"}
	for r, w := range want {
		if gridText(g, r) != w {
			t.Errorf("row %d: expected %q, got %q", r, w, gridText(g, r))
		}
	}
	if sb.Len() != 0 {
		t.Errorf("restored lines should leave scrollback, len=%d", sb.Len())
	}
}

func TestScrollDownFromWithEmptyScrollbackLeavesBlanks(t *testing.T) {
	g := newLetterGrid(2, 3)
	sb := NewScrollback(8)
	g.ScrollDownFrom(0, 3, 1, sb, DefaultBG)
	if gridText(g, 0) != "  " {
		t.Errorf("expected blank top row, got %q", gridText(g, 0))
	}
	if gridText(g, 1) != "aa" {
		t.Errorf("expected shifted content, got %q", gridText(g, 1))
	}
}

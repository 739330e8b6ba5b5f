// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/testharness.go
// Summary: Test harness for applying actions and verifying grid state.
// Usage: Used by test files to drive a Terminal and assert on the result.
// Notes: Provides helpers for systematic testing of the action vocabulary.

package term

import (
	"fmt"
	"strings"
	"testing"
)

// TestHarness provides utilities for testing Terminal transitions.
type TestHarness struct {
	term *Terminal
}

// NewTestHarness creates a harness with the specified terminal size.
func NewTestHarness(cols, rows int, opts ...Option) *TestHarness {
	return &TestHarness{term: New(cols, rows, opts...)}
}

// Terminal exposes the underlying terminal for direct inspection.
func (h *TestHarness) Terminal() *Terminal {
	return h.term
}

// Apply runs a sequence of actions in order.
func (h *TestHarness) Apply(actions ...Action) {
	for _, a := range actions {
		h.term.Apply(a)
	}
}

// SendText writes printable text (plus \n, \r, \t, \b) to the terminal.
func (h *TestHarness) SendText(text string) {
	h.term.WriteString(text)
}

// GetCell returns the cell at (x, y), or a zero Cell when out of bounds.
func (h *TestHarness) GetCell(x, y int) Cell {
	cell, ok := h.term.Grid().Cell(y, x)
	if !ok {
		return Cell{}
	}
	return cell
}

// GetCursor returns the current cursor position (0-based).
func (h *TestHarness) GetCursor() (x, y int) {
	return h.term.Cursor().Col, h.term.Cursor().Row
}

// GetLine returns the text of one grid row with trailing blanks trimmed.
func (h *TestHarness) GetLine(y int) string {
	row := h.term.Grid().Row(y)
	if row == nil {
		return ""
	}
	var b strings.Builder
	for _, cell := range row {
		if cell.IsWideTail() {
			continue
		}
		b.WriteString(cell.Content())
	}
	return strings.TrimRight(b.String(), " ")
}

// AssertCursor verifies the cursor position.
func (h *TestHarness) AssertCursor(t *testing.T, x, y int) {
	t.Helper()
	gotX, gotY := h.GetCursor()
	if gotX != x || gotY != y {
		t.Errorf("cursor: expected (%d,%d), got (%d,%d)", x, y, gotX, gotY)
	}
}

// AssertRune verifies that a cell contains the expected rune (ignores style).
func (h *TestHarness) AssertRune(t *testing.T, x, y int, expected rune) {
	t.Helper()
	actual := h.GetCell(x, y)
	if actual.Rune != expected {
		t.Errorf("Cell[%d,%d] rune: expected %q, got %q", x, y, expected, actual.Rune)
	}
}

// AssertLine verifies the trimmed text content of one row.
func (h *TestHarness) AssertLine(t *testing.T, y int, expected string) {
	t.Helper()
	actual := h.GetLine(y)
	if actual != expected {
		t.Errorf("Line %d: expected %q, got %q", y, expected, actual)
	}
}

// AssertPendingWrap verifies the deferred wrap flag.
func (h *TestHarness) AssertPendingWrap(t *testing.T, expected bool) {
	t.Helper()
	if h.term.Cursor().PendingWrap != expected {
		t.Errorf("pending wrap: expected %v, got %v", expected, h.term.Cursor().PendingWrap)
	}
}

// AssertScrollbackLen verifies the number of scrollback lines.
func (h *TestHarness) AssertScrollbackLen(t *testing.T, expected int) {
	t.Helper()
	if got := h.term.Scrollback().Len(); got != expected {
		t.Errorf("scrollback length: expected %d, got %d", expected, got)
	}
}

// Dump returns a printable rendering of the grid for debugging failures.
func (h *TestHarness) Dump() string {
	var b strings.Builder
	grid := h.term.Grid()
	fmt.Fprintf(&b, "grid %dx%d cursor (%d,%d) wrap=%v region [%d,%d)\n",
		grid.Cols(), grid.Rows(),
		h.term.Cursor().Col, h.term.Cursor().Row, h.term.Cursor().PendingWrap,
		h.term.Cursor().ScrollTop(), h.term.Cursor().ScrollBottom())
	for y := 0; y < grid.Rows(); y++ {
		fmt.Fprintf(&b, "%2d |", y)
		for x := 0; x < grid.Cols(); x++ {
			cell, _ := grid.Cell(y, x)
			b.WriteRune(cell.Rune)
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/scrollback.go
// Summary: Implements the bounded scrollback ring of evicted grid rows.
// Usage: Fed by Grid.ScrollUpInto; drained by ScrollDownFrom and resize.
// Notes: Up-scrolls push here; down-scrolls inside the region never do.

package term

// Line is one row of cells that has scrolled off the top of the grid.
// Wrapped records that the line soft-wrapped into the one below it.
type Line struct {
	Cells   []Cell
	Wrapped bool
}

// Scrollback is a fixed-capacity ring buffer of lines that have scrolled
// off the top of the screen. Oldest lines are evicted when full.
type Scrollback struct {
	lines []Line // pre-allocated ring buffer
	head  int    // next write position
	len   int    // number of stored lines (<= cap)
}

// NewScrollback creates a scrollback buffer with the given capacity.
// A capacity of 0 disables scrollback: pushes are dropped.
func NewScrollback(capacity int) *Scrollback {
	if capacity < 0 {
		capacity = 0
	}
	return &Scrollback{lines: make([]Line, capacity)}
}

// Push appends a cloned copy of the row to the ring buffer. If the buffer
// is full the oldest line is overwritten and returned with ok=true.
func (s *Scrollback) Push(cells []Cell, wrapped bool) (evicted Line, ok bool) {
	if len(s.lines) == 0 {
		return Line{}, false
	}
	if s.len == len(s.lines) {
		evicted = s.lines[s.head]
		ok = true
	}
	s.lines[s.head] = Line{Cells: cloneCells(cells), Wrapped: wrapped}
	s.head = (s.head + 1) % len(s.lines)
	if s.len < len(s.lines) {
		s.len++
	}
	return evicted, ok
}

// PopNewest removes and returns the most recently pushed line.
func (s *Scrollback) PopNewest() (Line, bool) {
	if s.len == 0 {
		return Line{}, false
	}
	s.head--
	if s.head < 0 {
		s.head += len(s.lines)
	}
	line := s.lines[s.head]
	s.lines[s.head] = Line{}
	s.len--
	return line, true
}

// PeekNewest returns the most recently pushed line without removing it.
func (s *Scrollback) PeekNewest() (Line, bool) {
	if s.len == 0 {
		return Line{}, false
	}
	idx := s.head - 1
	if idx < 0 {
		idx += len(s.lines)
	}
	return s.lines[idx], true
}

// Len returns the number of lines currently stored.
func (s *Scrollback) Len() int {
	return s.len
}

// Capacity returns the maximum number of lines the buffer can hold.
func (s *Scrollback) Capacity() int {
	return len(s.lines)
}

// LineAt returns the line at index i, where 0 is the oldest and Len()-1
// is the newest.
func (s *Scrollback) LineAt(i int) (Line, bool) {
	if i < 0 || i >= s.len {
		return Line{}, false
	}
	idx := (s.head - s.len + i) % len(s.lines)
	if idx < 0 {
		idx += len(s.lines)
	}
	return s.lines[idx], true
}

// Lines returns all stored lines from oldest to newest as a new slice.
func (s *Scrollback) Lines() []Line {
	out := make([]Line, s.len)
	for i := range out {
		out[i], _ = s.LineAt(i)
	}
	return out
}

// SetCapacity resizes the ring, evicting the oldest lines if the new
// capacity is smaller than the current length.
func (s *Scrollback) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if capacity == len(s.lines) {
		return
	}
	keep := min(s.len, capacity)
	lines := make([]Line, capacity)
	// Keep the newest `keep` lines, oldest first.
	for i := 0; i < keep; i++ {
		lines[i], _ = s.LineAt(s.len - keep + i)
	}
	s.lines = lines
	s.len = keep
	s.head = keep % max(capacity, 1)
}

// Clear drops all stored lines without deallocating the ring.
func (s *Scrollback) Clear() {
	for i := range s.lines {
		s.lines[i] = Line{}
	}
	s.head = 0
	s.len = 0
}

func cloneCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}

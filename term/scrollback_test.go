// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/scrollback_test.go
// Summary: Tests for the bounded scrollback ring buffer.
// Usage: Run with `go test` to verify eviction and ordering.
// Notes: Index 0 is always the oldest stored line.

package term

import "testing"

func rowOf(text string) []Cell {
	cells := make([]Cell, len(text))
	for i, r := range text {
		cells[i] = EmptyCell()
		cells[i].SetContent(r, 1)
	}
	return cells
}

func lineText(l Line) string {
	var out []rune
	for _, c := range l.Cells {
		out = append(out, c.Rune)
	}
	return string(out)
}

func TestScrollbackPushAndOrder(t *testing.T) {
	sb := NewScrollback(4)
	for _, s := range []string{"aa", "bb", "cc"} {
		if _, evicted := sb.Push(rowOf(s), false); evicted {
			t.Errorf("push %q should not evict below capacity", s)
		}
	}
	if sb.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", sb.Len())
	}
	oldest, _ := sb.LineAt(0)
	newest, _ := sb.LineAt(2)
	if lineText(oldest) != "aa" || lineText(newest) != "cc" {
		t.Errorf("order: oldest=%q newest=%q", lineText(oldest), lineText(newest))
	}
}

func TestScrollbackEvictsOldest(t *testing.T) {
	sb := NewScrollback(2)
	sb.Push(rowOf("aa"), false)
	sb.Push(rowOf("bb"), false)
	evicted, ok := sb.Push(rowOf("cc"), false)
	if !ok {
		t.Fatal("push past capacity should evict")
	}
	if lineText(evicted) != "aa" {
		t.Errorf("expected evicted %q, got %q", "aa", lineText(evicted))
	}
	if sb.Len() != 2 {
		t.Errorf("expected len 2, got %d", sb.Len())
	}
	oldest, _ := sb.LineAt(0)
	if lineText(oldest) != "bb" {
		t.Errorf("expected oldest %q, got %q", "bb", lineText(oldest))
	}
}

func TestScrollbackZeroCapacityDropsPushes(t *testing.T) {
	sb := NewScrollback(0)
	if _, ok := sb.Push(rowOf("aa"), false); ok {
		t.Error("zero-capacity push should not report an eviction")
	}
	if sb.Len() != 0 {
		t.Errorf("expected empty, got %d", sb.Len())
	}
}

func TestScrollbackPopPeekNewest(t *testing.T) {
	sb := NewScrollback(4)
	sb.Push(rowOf("aa"), false)
	sb.Push(rowOf("bb"), true)

	peeked, ok := sb.PeekNewest()
	if !ok || lineText(peeked) != "bb" || !peeked.Wrapped {
		t.Fatalf("peek: expected wrapped %q, got %+v", "bb", peeked)
	}
	if sb.Len() != 2 {
		t.Errorf("peek should not remove, len=%d", sb.Len())
	}

	popped, ok := sb.PopNewest()
	if !ok || lineText(popped) != "bb" {
		t.Fatalf("pop: expected %q, got %q", "bb", lineText(popped))
	}
	if sb.Len() != 1 {
		t.Errorf("expected len 1 after pop, got %d", sb.Len())
	}
	if _, ok := sb.PopNewest(); !ok {
		t.Fatal("second pop should still succeed")
	}
	if _, ok := sb.PopNewest(); ok {
		t.Error("pop on empty buffer should fail")
	}
}

func TestScrollbackPushClonesCells(t *testing.T) {
	sb := NewScrollback(2)
	row := rowOf("aa")
	sb.Push(row, false)
	row[0].SetContent('z', 1)
	stored, _ := sb.LineAt(0)
	if stored.Cells[0].Rune != 'a' {
		t.Error("push should deep-copy the row")
	}
}

func TestScrollbackWrapAround(t *testing.T) {
	sb := NewScrollback(3)
	for _, s := range []string{"11", "22", "33", "44", "55"} {
		sb.Push(rowOf(s), false)
	}
	want := []string{"33", "44", "55"}
	for i, w := range want {
		line, ok := sb.LineAt(i)
		if !ok || lineText(line) != w {
			t.Errorf("LineAt(%d): expected %q, got %q", i, w, lineText(line))
		}
	}
	if _, ok := sb.LineAt(3); ok {
		t.Error("LineAt past length should fail")
	}
}

func TestScrollbackSetCapacity(t *testing.T) {
	sb := NewScrollback(5)
	for _, s := range []string{"11", "22", "33", "44"} {
		sb.Push(rowOf(s), false)
	}

	sb.SetCapacity(2)
	if sb.Len() != 2 || sb.Capacity() != 2 {
		t.Fatalf("expected len 2 cap 2, got len %d cap %d", sb.Len(), sb.Capacity())
	}
	oldest, _ := sb.LineAt(0)
	newest, _ := sb.LineAt(1)
	if lineText(oldest) != "33" || lineText(newest) != "44" {
		t.Errorf("shrink should keep newest: got %q, %q", lineText(oldest), lineText(newest))
	}

	sb.SetCapacity(4)
	sb.Push(rowOf("55"), false)
	if sb.Len() != 3 {
		t.Errorf("grow should keep content, len=%d", sb.Len())
	}
	newest, _ = sb.LineAt(2)
	if lineText(newest) != "55" {
		t.Errorf("expected newest %q, got %q", "55", lineText(newest))
	}
}

func TestScrollbackClear(t *testing.T) {
	sb := NewScrollback(3)
	sb.Push(rowOf("aa"), false)
	sb.Clear()
	if sb.Len() != 0 {
		t.Errorf("expected empty after clear, got %d", sb.Len())
	}
	if sb.Capacity() != 3 {
		t.Errorf("clear should keep capacity, got %d", sb.Capacity())
	}
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/cell.go
// Summary: Implements the character cell, colors and SGR attributes.
// Usage: Cells are owned by Grid; callers mutate them through Grid methods.
// Notes: Keeps screen state concerns isolated from parsing and rendering.

package term

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Attribute holds SGR text attribute flags.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrDim != 0 {
		parts = append(parts, "dim")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrBlink != 0 {
		parts = append(parts, "blink")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if a&AttrHidden != 0 {
		parts = append(parts, "hidden")
	}
	if a&AttrStrike != 0 {
		parts = append(parts, "strike")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 16 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-15) and 256-mode (0-255)
	R, G, B uint8 // Holds the values for RGB mode
}

// --- Predefined default colors for convenience ---
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// Pen is the current drawing state carried by the cursor. Every cell
// written or erased inherits it.
type Pen struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultPen returns a pen with terminal default colors and no attributes.
func DefaultPen() Pen {
	return Pen{FG: DefaultFG, BG: DefaultBG}
}

// Reset restores the pen to terminal defaults (SGR 0).
func (p *Pen) Reset() {
	*p = DefaultPen()
}

// CellFlags marks cell roles that are orthogonal to SGR attributes.
type CellFlags uint8

const (
	// FlagWideHead marks the leading (left) cell of a wide character.
	FlagWideHead CellFlags = 1 << iota
	// FlagWideTail marks the trailing continuation of a wide character.
	// Its content is meaningless; rendering uses the head cell.
	FlagWideTail
)

// Cell represents a single character cell on the screen.
//
// Rune holds the primary scalar; Grapheme is set only when the cell
// carries a multi-codepoint cluster (base rune plus combining marks).
type Cell struct {
	Rune     rune
	Grapheme string
	Width    uint8 // 0 (wide tail), 1, or 2
	Flags    CellFlags
	FG       Color
	BG       Color
	Attr     Attribute
}

// EmptyCell returns a blank cell with default colors.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, FG: DefaultFG, BG: DefaultBG}
}

// Content returns the cell's displayable text.
func (c Cell) Content() string {
	if c.Grapheme != "" {
		return c.Grapheme
	}
	return string(c.Rune)
}

// IsWide reports whether the cell is the head of a wide character pair.
func (c Cell) IsWide() bool {
	return c.Flags&FlagWideHead != 0
}

// IsWideTail reports whether the cell is the continuation of a wide pair.
func (c Cell) IsWideTail() bool {
	return c.Flags&FlagWideTail != 0
}

// SetContent stores a single rune with an explicit display width and
// clears any wide pairing flags.
func (c *Cell) SetContent(r rune, width int) {
	c.Rune = r
	c.Grapheme = ""
	c.Width = uint8(width)
	c.Flags = 0
}

// SetGrapheme stores a multi-codepoint cluster with an explicit width.
func (c *Cell) SetGrapheme(s string, width int) {
	c.Rune = firstRune(s)
	c.Grapheme = s
	c.Width = uint8(width)
	c.Flags = 0
}

// Erase blanks the cell while keeping the given background (BCE).
func (c *Cell) Erase(bg Color) {
	*c = EmptyCell()
	c.BG = bg
}

// Clear resets the cell to a blank with terminal default colors.
func (c *Cell) Clear() {
	*c = EmptyCell()
}

// wideCells builds the head/tail pair for a wide character write.
func wideCells(r rune, grapheme string, pen Pen) (Cell, Cell) {
	head := Cell{
		Rune:     r,
		Grapheme: grapheme,
		Width:    2,
		Flags:    FlagWideHead,
		FG:       pen.FG,
		BG:       pen.BG,
		Attr:     pen.Attr,
	}
	tail := Cell{
		Rune:  ' ',
		Width: 0,
		Flags: FlagWideTail,
		FG:    pen.FG,
		BG:    pen.BG,
		Attr:  pen.Attr,
	}
	return head, tail
}

// RuneDisplayWidth returns the terminal column width of a rune: 0 for
// combining marks and control characters, 2 for East Asian wide, 1
// otherwise.
func RuneDisplayWidth(r rune) int {
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	if w > 2 {
		return 2
	}
	return w
}

// GraphemeDisplayWidth returns the terminal column width of a grapheme
// cluster, clamped to the 0..2 range a cell pair can hold.
func GraphemeDisplayWidth(s string) int {
	w := uniseg.StringWidth(s)
	if w < 0 {
		return 0
	}
	if w > 2 {
		return 2
	}
	return w
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tcellview/view.go
// Summary: Maps terminal cells to tcell styles and draws grids on screens.
// Usage: Hosts embed a View to present a term.Terminal on a tcell.Screen.
// Notes: Pure translation; the view never mutates terminal state.

package tcellview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelcore/term"
)

// View translates terminal cells into tcell styles through a local
// 256-color palette plus two slots for the default foreground and
// background.
type View struct {
	palette [258]tcell.Color
}

// NewView creates a view with the standard xterm palette.
func NewView() *View {
	return &View{palette: newDefaultPalette()}
}

// SetDefaultColors overrides the palette's default foreground and
// background slots.
func (v *View) SetDefaultColors(fg, bg tcell.Color) {
	v.palette[256] = fg
	v.palette[257] = bg
}

// MapColor translates a term.Color to a true RGB tcell.Color using the
// local palette.
func (v *View) MapColor(c term.Color) tcell.Color {
	switch c.Mode {
	case term.ColorModeDefault:
		return v.palette[256]
	case term.ColorModeStandard:
		return v.palette[c.Value]
	case term.ColorMode256:
		return v.palette[c.Value]
	case term.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// Style builds the tcell style for one cell.
func (v *View) Style(cell term.Cell) tcell.Style {
	fgColor := v.MapColor(cell.FG)

	// The background default maps to its own palette slot.
	var bgColor tcell.Color
	if cell.BG.Mode == term.ColorModeDefault {
		bgColor = v.palette[257]
	} else {
		bgColor = v.MapColor(cell.BG)
	}

	style := tcell.StyleDefault
	style = style.Foreground(fgColor).Background(bgColor)
	style = style.Bold(cell.Attr&term.AttrBold != 0)
	style = style.Dim(cell.Attr&term.AttrDim != 0)
	style = style.Italic(cell.Attr&term.AttrItalic != 0)
	style = style.Underline(cell.Attr&term.AttrUnderline != 0)
	style = style.Blink(cell.Attr&term.AttrBlink != 0)
	style = style.Reverse(cell.Attr&term.AttrReverse != 0)
	style = style.StrikeThrough(cell.Attr&term.AttrStrike != 0)
	return style
}

// Draw renders the terminal grid onto the screen at the given origin,
// reversing the cell under a visible cursor. Wide-character tails are
// skipped; tcell spans them from the head cell.
func (v *View) Draw(screen tcell.Screen, t *term.Terminal, originX, originY int, showCursor bool) {
	grid := t.Grid()
	cursor := t.Cursor()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell, ok := grid.Cell(row, col)
			if !ok || cell.IsWideTail() {
				continue
			}
			style := v.Style(cell)
			if showCursor && row == cursor.Row && col == cursor.Col {
				style = style.Reverse(true)
			}
			var combining []rune
			if cell.Grapheme != "" {
				runes := []rune(cell.Grapheme)
				if len(runes) > 1 {
					combining = runes[1:]
				}
			}
			screen.SetContent(originX+col, originY+row, cell.Rune, combining, style)
		}
	}
}

// newDefaultPalette builds the standard xterm 256 color palette with the
// default foreground and background appended at 256 and 257.
func newDefaultPalette() [258]tcell.Color {
	var p [258]tcell.Color
	// First 16 ANSI colors
	p[0] = tcell.NewRGBColor(0, 0, 0)        // Black
	p[1] = tcell.NewRGBColor(128, 0, 0)      // Maroon
	p[2] = tcell.NewRGBColor(0, 128, 0)      // Green
	p[3] = tcell.NewRGBColor(128, 128, 0)    // Olive
	p[4] = tcell.NewRGBColor(0, 0, 128)      // Navy
	p[5] = tcell.NewRGBColor(128, 0, 128)    // Purple
	p[6] = tcell.NewRGBColor(0, 128, 128)    // Teal
	p[7] = tcell.NewRGBColor(192, 192, 192)  // Silver
	p[8] = tcell.NewRGBColor(128, 128, 128)  // Grey
	p[9] = tcell.NewRGBColor(255, 0, 0)      // Red
	p[10] = tcell.NewRGBColor(0, 255, 0)     // Lime
	p[11] = tcell.NewRGBColor(255, 255, 0)   // Yellow
	p[12] = tcell.NewRGBColor(0, 0, 255)     // Blue
	p[13] = tcell.NewRGBColor(255, 0, 255)   // Fuchsia
	p[14] = tcell.NewRGBColor(0, 255, 255)   // Aqua
	p[15] = tcell.NewRGBColor(255, 255, 255) // White

	// 6x6x6 color cube
	levels := []int32{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = tcell.NewRGBColor(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp
	for j := 0; j < 24; j++ {
		gray := int32(8 + j*10)
		p[i] = tcell.NewRGBColor(gray, gray, gray)
		i++
	}

	// Default Foreground (White) and Background (Black)
	p[256] = p[15]
	p[257] = p[0]

	return p
}

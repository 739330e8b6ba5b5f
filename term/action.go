// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/action.go
// Summary: Defines the closed vocabulary of terminal actions.
// Usage: Built by constructors, consumed by Terminal.Apply.
// Notes: Actions are plain comparable values; unknown kinds are no-ops.

package term

import "fmt"

// ActionKind discriminates the Action union.
type ActionKind int

const (
	// KindIgnored covers everything Apply treats as a no-op.
	KindIgnored ActionKind = iota
	KindPrint
	KindNewline
	KindIndex
	KindCarriageReturn
	KindCursorUp
	KindCursorDown
	KindCursorLeft
	KindCursorRight
	KindCursorPosition
	KindSetScrollRegion
	KindScrollUp
	KindScrollDown
	KindInsertLines
	KindDeleteLines
	KindInsertChars
	KindDeleteChars
	KindEraseInDisplay
	KindEraseInLine
	KindEraseChars
	KindReverseIndex
	KindNextLine
	KindTab
	KindBackspace
	KindSaveCursor
	KindRestoreCursor
	KindAlignmentFill
	KindSetPen
	KindFullReset
)

// Action is one atomic state transition of the terminal. Only the fields
// relevant to the Kind are meaningful; the rest stay zero so actions
// compare and hash cheaply.
type Action struct {
	Kind        ActionKind
	R           rune
	N           int
	Row, Col    int
	Top, Bottom int
	Mode        int
	Pen         Pen
}

// Print writes one printable rune at the cursor.
func Print(r rune) Action { return Action{Kind: KindPrint, R: r} }

// Newline moves the cursor down one row, scrolling at the bottom margin.
func Newline() Action { return Action{Kind: KindNewline} }

// Index is the IND control: same vertical motion as Newline.
func Index() Action { return Action{Kind: KindIndex} }

// CarriageReturn moves the cursor to column 0.
func CarriageReturn() Action { return Action{Kind: KindCarriageReturn} }

// CursorUp moves the cursor up n rows, clamped at the top.
func CursorUp(n int) Action { return Action{Kind: KindCursorUp, N: n} }

// CursorDown moves the cursor down n rows, clamped at the last row.
func CursorDown(n int) Action { return Action{Kind: KindCursorDown, N: n} }

// CursorLeft moves the cursor left n columns, clamped at column 0.
func CursorLeft(n int) Action { return Action{Kind: KindCursorLeft, N: n} }

// CursorRight moves the cursor right n columns, clamped at the last column.
func CursorRight(n int) Action { return Action{Kind: KindCursorRight, N: n} }

// CursorPosition moves the cursor to an absolute position (CUP).
func CursorPosition(row, col int) Action {
	return Action{Kind: KindCursorPosition, Row: row, Col: col}
}

// SetScrollRegion sets the scroll region to [top, bottom) and homes the
// cursor (DECSTBM). bottom == 0 means the full grid height.
func SetScrollRegion(top, bottom int) Action {
	return Action{Kind: KindSetScrollRegion, Top: top, Bottom: bottom}
}

// ScrollUpBy scrolls the region up n rows, feeding scrollback (SU).
func ScrollUpBy(n int) Action { return Action{Kind: KindScrollUp, N: n} }

// ScrollDownBy scrolls the region down n rows (SD).
func ScrollDownBy(n int) Action { return Action{Kind: KindScrollDown, N: n} }

// InsertLines inserts n blank lines at the cursor row (IL).
func InsertLines(n int) Action { return Action{Kind: KindInsertLines, N: n} }

// DeleteLines deletes n lines at the cursor row (DL).
func DeleteLines(n int) Action { return Action{Kind: KindDeleteLines, N: n} }

// InsertChars inserts n blank cells at the cursor (ICH).
func InsertChars(n int) Action { return Action{Kind: KindInsertChars, N: n} }

// DeleteChars deletes n cells at the cursor (DCH).
func DeleteChars(n int) Action { return Action{Kind: KindDeleteChars, N: n} }

// EraseInDisplay erases part of the display (ED): mode 0 below the
// cursor, 1 above, 2 all. Other modes are no-ops.
func EraseInDisplay(mode int) Action { return Action{Kind: KindEraseInDisplay, Mode: mode} }

// EraseInLine erases part of the cursor line (EL): mode 0 right of the
// cursor, 1 left, 2 the whole line. Other modes are no-ops.
func EraseInLine(mode int) Action { return Action{Kind: KindEraseInLine, Mode: mode} }

// EraseChars erases n cells at the cursor without shifting (ECH).
func EraseChars(n int) Action { return Action{Kind: KindEraseChars, N: n} }

// ReverseIndex moves the cursor up one row, scrolling down at the top
// margin (RI).
func ReverseIndex() Action { return Action{Kind: KindReverseIndex} }

// NextLine is CarriageReturn followed by Newline motion (NEL).
func NextLine() Action { return Action{Kind: KindNextLine} }

// Tab moves the cursor right to the next 8-column tab stop (HT).
func Tab() Action { return Action{Kind: KindTab} }

// Backspace moves the cursor one column left, clamped at column 0 (BS).
func Backspace() Action { return Action{Kind: KindBackspace} }

// SaveCursor records the cursor position and pen (DECSC).
func SaveCursor() Action { return Action{Kind: KindSaveCursor} }

// RestoreCursor returns to the saved cursor position and pen (DECRC).
func RestoreCursor() Action { return Action{Kind: KindRestoreCursor} }

// AlignmentFill fills the screen with 'E' and homes the cursor (DECALN).
func AlignmentFill() Action { return Action{Kind: KindAlignmentFill} }

// SetPen replaces the cursor's drawing state (the SGR boundary).
func SetPen(pen Pen) Action { return Action{Kind: KindSetPen, Pen: pen} }

// Ignored is the explicit no-op carrying the open set of unhandled
// control functions.
func Ignored() Action { return Action{Kind: KindIgnored} }

// FullReset reconstructs the grid, cursor and scrollback from scratch
// (RIS).
func FullReset() Action { return Action{Kind: KindFullReset} }

// String returns a compact description for logs and test failures.
func (a Action) String() string {
	switch a.Kind {
	case KindPrint:
		return fmt.Sprintf("Print(%q)", a.R)
	case KindNewline:
		return "Newline"
	case KindIndex:
		return "Index"
	case KindCarriageReturn:
		return "CarriageReturn"
	case KindCursorUp:
		return fmt.Sprintf("CursorUp(%d)", a.N)
	case KindCursorDown:
		return fmt.Sprintf("CursorDown(%d)", a.N)
	case KindCursorLeft:
		return fmt.Sprintf("CursorLeft(%d)", a.N)
	case KindCursorRight:
		return fmt.Sprintf("CursorRight(%d)", a.N)
	case KindCursorPosition:
		return fmt.Sprintf("CursorPosition(%d,%d)", a.Row, a.Col)
	case KindSetScrollRegion:
		return fmt.Sprintf("SetScrollRegion(%d,%d)", a.Top, a.Bottom)
	case KindScrollUp:
		return fmt.Sprintf("ScrollUp(%d)", a.N)
	case KindScrollDown:
		return fmt.Sprintf("ScrollDown(%d)", a.N)
	case KindInsertLines:
		return fmt.Sprintf("InsertLines(%d)", a.N)
	case KindDeleteLines:
		return fmt.Sprintf("DeleteLines(%d)", a.N)
	case KindInsertChars:
		return fmt.Sprintf("InsertChars(%d)", a.N)
	case KindDeleteChars:
		return fmt.Sprintf("DeleteChars(%d)", a.N)
	case KindEraseInDisplay:
		return fmt.Sprintf("EraseInDisplay(%d)", a.Mode)
	case KindEraseInLine:
		return fmt.Sprintf("EraseInLine(%d)", a.Mode)
	case KindEraseChars:
		return fmt.Sprintf("EraseChars(%d)", a.N)
	case KindReverseIndex:
		return "ReverseIndex"
	case KindNextLine:
		return "NextLine"
	case KindTab:
		return "Tab"
	case KindBackspace:
		return "Backspace"
	case KindSaveCursor:
		return "SaveCursor"
	case KindRestoreCursor:
		return "RestoreCursor"
	case KindAlignmentFill:
		return "AlignmentFill"
	case KindSetPen:
		return "SetPen"
	case KindFullReset:
		return "FullReset"
	default:
		return "Ignored"
	}
}

// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/engine"
)

const (
	keypadRows = 5
	keypadCols = 4

	// Inner width of one button cell, excluding the border.
	cellWidth = 5
)

// keypadLayout mirrors the classic pocket-calculator arrangement: backspace
// and the operators along the top, a plus key spanning two rows, equals on
// the right, and a double-width zero. Cells sharing a label belong to the
// same (spanning) button.
var keypadLayout = [keypadRows][keypadCols]rune{
	{'←', '÷', '×', '−'},
	{'7', '8', '9', '+'},
	{'4', '5', '6', '+'},
	{'1', '2', '3', '='},
	{'0', '0', '.', 'C'},
}

// keypadWidth is the rendered width of the whole keypad, used to size the
// display box above it.
const keypadWidth = keypadCols * (cellWidth + 2)

// pressButton feeds the event for a keypad label into the calculator.
// It accepts both the display glyphs (÷ × −) and their ASCII equivalents so
// the same dispatch serves button presses and direct key entry.
func pressButton(c *engine.Calculator, label rune) bool {
	switch label {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		c.Digit(int(label - '0'))
	case '.', ',':
		c.DecimalPoint()
	case '+':
		c.Operator(engine.OpAdd)
	case '-', '−', '_':
		c.Operator(engine.OpSubtract)
	case '*', '×', 'x':
		c.Operator(engine.OpMultiply)
	case '/', '÷':
		c.Operator(engine.OpDivide)
	case '=':
		c.Equals()
	case '←':
		c.Backspace()
	case 'C', 'c':
		c.Clear()
	default:
		return false
	}
	return true
}

// renderKeypad draws the button grid. Every cell belonging to the focused
// button is highlighted, so spanning buttons light up as one unit.
func renderKeypad(focused rune, accent lipgloss.Color) string {
	rows := make([]string, 0, keypadRows)
	for r := 0; r < keypadRows; r++ {
		cells := make([]string, 0, keypadCols)
		for c := 0; c < keypadCols; c++ {
			label := keypadLayout[r][c]
			style := buttonStyle
			if label == focused {
				style = focusedButtonStyle.BorderForeground(accent)
			}
			cells = append(cells, style.Width(cellWidth).Render(string(label)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

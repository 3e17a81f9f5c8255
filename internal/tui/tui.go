// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Tally.
// This file, tui.go, contains the top-level model: a numeric display over a
// keypad grid, translating key presses into calculator engine events and
// rendering the resulting display string after every event.
package tui // import "github.com/tallyhq/tally/internal/tui"

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/engine"
	"github.com/tallyhq/tally/internal/i18n"
)

// Model is the Bubble Tea model for the calculator. It owns the engine
// instance and a cursor over the keypad grid; every accepted key press runs
// exactly one engine event before the next render.
type Model struct {
	calc   *engine.Calculator
	keys   keyMap
	help   help.Model
	accent lipgloss.Color

	cursorRow int
	cursorCol int

	copied bool
	width  int
	height int
}

// NewModel creates the starting state of the TUI with the cursor on the "7"
// key, mirroring where a hand lands on a physical keypad.
func NewModel(cfg config.Config) Model {
	accent := lipgloss.Color(cfg.UI.Accent)
	if cfg.UI.Accent == "" {
		accent = colorHighlight
	}
	return Model{
		calc:      engine.New(),
		keys:      newKeyMap(),
		help:      help.New(),
		accent:    accent,
		cursorRow: 1,
		cursorCol: 0,
	}
}

// Calculator exposes the underlying engine, mainly for tests.
func (m Model) Calculator() *engine.Calculator {
	return m.calc
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all events and delegates calculator input to the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Any key press invalidates a previous "copied" notice.
		m.copied = false

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Copy):
			if err := clipboard.WriteAll(m.calc.Display()); err == nil {
				m.copied = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Press):
			pressButton(m.calc, m.focusedButton())
			return m, nil

		case key.Matches(msg, m.keys.Equals):
			m.calc.Equals()
			return m, nil

		case key.Matches(msg, m.keys.Backspace):
			m.calc.Backspace()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.calc.Clear()
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			m.move(-1, 0)
		case "down", "j":
			m.move(1, 0)
		case "left", "h":
			m.move(0, -1)
		case "right", "l":
			m.move(0, 1)
		default:
			if runes := msg.Runes; len(runes) == 1 {
				pressButton(m.calc, runes[0])
			}
		}
	}
	return m, nil
}

// View renders the display, keypad, status line and help footer.
func (m Model) View() string {
	title := titleStyle.Render(i18n.T("tui.title"))

	display := m.calc.Display()
	ds := displayStyle
	if display == engine.ErrorText {
		ds = displayErrorStyle
	}
	displayBox := ds.Width(keypadWidth - 2).Render(display)

	keypad := renderKeypad(m.focusedButton(), m.accent)

	status := statusStyle.Render(m.statusLine())
	if m.copied {
		status = copiedStyle.Render(i18n.T("tui.copied"))
	}

	helpLine := helpStyle.Render(m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title, displayBox, keypad, status, helpLine))
}

// statusLine describes the pending operation, e.g. "12 +", or a ready
// marker when nothing is pending.
func (m Model) statusLine() string {
	if op := m.calc.Pending(); op != engine.OpNone {
		return op.String()
	}
	return i18n.T("tui.pending_none")
}

// focusedButton returns the label under the keypad cursor.
func (m Model) focusedButton() rune {
	return keypadLayout[m.cursorRow][m.cursorCol]
}

// move shifts the keypad cursor, stepping over the extra cells of spanning
// buttons so one arrow press always lands on a different button.
func (m *Model) move(dr, dc int) {
	cur := m.focusedButton()
	r, c := m.cursorRow+dr, m.cursorCol+dc
	for r >= 0 && r < keypadRows && c >= 0 && c < keypadCols {
		if keypadLayout[r][c] != cur {
			m.cursorRow, m.cursorCol = r, c
			return
		}
		r += dr
		c += dc
	}
}

// Run is the main entrypoint for the TUI. It initializes and runs the
// Bubble Tea program, blocking until the user quits.
func Run(cfg config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}

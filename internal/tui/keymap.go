// Copyright (c) 2026 Tally Team
// Tally - four-function terminal calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tallyhq/tally/internal/i18n"
)

// keyMap defines the keybindings shown in the help footer. Digits and
// operators are always accepted directly and are summarized as one entry.
type keyMap struct {
	Move      key.Binding
	Press     key.Binding
	Type      key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"),
			key.WithHelp("↑↓←→", i18n.T("tui.help.move")),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", i18n.T("tui.help.press")),
		),
		Type: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "*", "/"),
			key.WithHelp("0-9 + - * /", i18n.T("tui.help.type")),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", i18n.T("tui.help.equals")),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", i18n.T("tui.help.backspace")),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "esc"),
			key.WithHelp("c/esc", i18n.T("tui.help.clear")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("tui.help.copy")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("tui.help.quit")),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Press, k.Type, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Press, k.Type},
		{k.Equals, k.Backspace, k.Clear},
		{k.Copy, k.Quit},
	}
}

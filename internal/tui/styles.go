// package tui provides the terminal user interface for Tally.
// This file defines the shared lipgloss styles used across the keypad
// view to ensure a consistent look and feel.
package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorWhite     = lipgloss.Color("231")
)

var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Main title above the display
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// The numeric display
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1).
			Align(lipgloss.Right)

	// The display while it shows the error marker
	displayErrorStyle = displayStyle.
				BorderForeground(colorError).
				Foreground(colorError)

	// Keypad buttons
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Align(lipgloss.Center)

	focusedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorHighlight).
				Foreground(colorWhite).
				Bold(true).
				Align(lipgloss.Center)

	// Status line under the keypad (pending operator, copy notice)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	copiedStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)

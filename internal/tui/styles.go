package tui

import "github.com/charmbracelet/lipgloss"

// Neutral colors with light/dark support for the browser chrome.
var (
	colorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	colorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	colorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			MarginBottom(1)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(1)

	rowSelectedStyle = rowStyle.
				Background(colorHighlight).
				Bold(true)

	hexStyle = lipgloss.NewStyle().
			Foreground(colorTextSecondary)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextSecondary).
			MarginTop(1)
)

// swatchStyle renders the color block for a palette entry.
func swatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Initialize sets the terminal background hint before the program runs.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the drawing canvas.
type Theme struct {
	// Status bar styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDBusy      lipgloss.Style

	// Prompt and messages
	Prompt  lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style

	// Program picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuControls    lipgloss.Style
	MenuPreview     lipgloss.Style

	// Canvas pen colors
	Canvas Palette
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDBusy:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),

		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuControls:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		MenuPreview:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),

		Canvas: ColorPalette(),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.HUDBusy = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Prompt = lipgloss.NewStyle().Bold(true)
	theme.Error = lipgloss.NewStyle().Underline(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Canvas = MonochromePalette()
	return theme
}

// ThemeByName returns the theme for a config value. Unknown names get the
// default theme.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

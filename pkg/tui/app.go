package tui

import (
	"hslboard/pkg/board"
	"hslboard/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(board.DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// AccentColor returns the configured accent colour or the default one
func AccentColor(cfg *config.AppConfig) string {
	if cfg != nil && cfg.AccentColor != "" {
		return cfg.AccentColor
	}
	return board.DefaultAccent
}

// GetTheme loads the user's saved accent colour and constructs the form theme.
func GetTheme() *huh.Theme {
	// an unreadable config just means the default colour
	cfg, _ := config.Load()
	baseColor := AccentColor(cfg)

	// keep plain CLI output in the same colour as the forms
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a huh theme built around baseColor
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// Accent renders text in the accent colour
func Accent(text string) string {
	return accentStyle.Render(text)
}

// Error renders text in the error colour
func Error(text string) string {
	return errorStyle.Render(text)
}

package board

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the title colour when none is configured
const DefaultAccent = "99"

// Styles controls how the board colours its segments
type Styles struct {
	Title  lipgloss.Style
	Name   lipgloss.Style
	Time   lipgloss.Style
	Late   lipgloss.Style
	Early  lipgloss.Style
	Footer lipgloss.Style

	// Plain skips rendering entirely, leaving bare text
	Plain bool
}

// DefaultStyles returns the board colours using accent for the title
func DefaultStyles(accent string) Styles {
	if accent == "" {
		accent = DefaultAccent
	}

	return Styles{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Late:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Early:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// PlainStyles returns styles that leave text untouched
func PlainStyles() Styles {
	return Styles{Plain: true}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if s.Plain {
		return text
	}
	return style.Render(text)
}

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the ticket form.
type Theme struct {
	NormalText  lipgloss.Color
	FaintText   lipgloss.Color
	FocusAccent lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	ErrorBorder   lipgloss.Color
	InfoBorder    lipgloss.Color
	ConfirmBorder lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:  lipgloss.Color("252"),
	FaintText:   lipgloss.Color("243"),
	FocusAccent: lipgloss.Color("75"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ErrorBorder:   lipgloss.Color("196"),
	InfoBorder:    lipgloss.Color("114"),
	ConfirmBorder: lipgloss.Color("220"),
}

// TableHeader renders a result table header cell.
func (theme Theme) TableHeader(cell string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(cell)
}

func (theme Theme) labelStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Width(labelWidth)
	if focused {
		return style.Foreground(theme.FocusAccent)
	}
	return style.Foreground(theme.NormalText)
}

func (theme Theme) modalBorder(kind dialogKind) lipgloss.Color {
	switch kind {
	case dialogError:
		return theme.ErrorBorder
	case dialogConfirm:
		return theme.ConfirmBorder
	default:
		return theme.InfoBorder
	}
}

package ui

import "github.com/charmbracelet/lipgloss"

// theme is the palette-dependent part of the styling. Everything else in
// this file is shared by both palettes.
type theme struct {
	title        lipgloss.Style
	subtle       lipgloss.Style
	warn         lipgloss.Style
	divider      lipgloss.Style
	button       lipgloss.Style
	buttonActive lipgloss.Style
	tag          lipgloss.Style
	keys         lipgloss.Style
	text         lipgloss.Style
	card         lipgloss.Style
	cardCursor   lipgloss.Style
	cardExpanded lipgloss.Style
	caption      lipgloss.Style
	captionHover lipgloss.Style
}

var (
	lightTheme = newTheme(false)
	darkTheme  = newTheme(true)
)

func newTheme(dark bool) theme {
	fg, muted, accent, accent2, border, tagBg := lipgloss.Color("235"), lipgloss.Color("243"),
		lipgloss.Color("#8942E1"), lipgloss.Color("#3AC4BA"), lipgloss.Color("250"), lipgloss.Color("#E9E3F7")
	if dark {
		fg, muted, accent, accent2, border, tagBg = lipgloss.Color("252"), lipgloss.Color("245"),
			lipgloss.Color("#B28CFF"), lipgloss.Color("#3AC4BA"), lipgloss.Color("240"), lipgloss.Color("#2A2B3D")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(fg).
		Padding(0, 1)

	return theme{
		title:        lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		subtle:       lipgloss.NewStyle().Foreground(muted),
		warn:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		divider:      lipgloss.NewStyle().Foreground(border),
		button:       lipgloss.NewStyle().Foreground(fg).Background(tagBg),
		buttonActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent),
		tag:          lipgloss.NewStyle().Foreground(accent2).Background(tagBg),
		keys:         lipgloss.NewStyle().Bold(true).Foreground(accent),
		text:         lipgloss.NewStyle().Foreground(fg),
		card:         card,
		cardCursor:   card.BorderForeground(lipgloss.Color("#FFAB78")),
		cardExpanded: card.BorderForeground(accent),
		caption:      lipgloss.NewStyle().Foreground(muted).Faint(true),
		captionHover: lipgloss.NewStyle().Foreground(accent2),
	}
}

func (m Model) theme() theme {
	if m.dark {
		return darkTheme
	}
	return lightTheme
}

package tui

import (
	"intervaltimer/internal/core/interval"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Base     lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Phases   map[interval.Style]lipgloss.Style
	Captions map[interval.Style]string
}

var DefaultTheme = Theme{
	Base:    lipgloss.NewStyle().Margin(1, 2),
	Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(18),
	Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Width(18),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Phases: map[interval.Style]lipgloss.Style{
		interval.StyleIdle:     phaseStyle("252", "236"),
		interval.StyleRunning:  phaseStyle("230", "28"),
		interval.StyleAlerting: phaseStyle("16", "214"),
		interval.StylePaused:   phaseStyle("230", "25"),
	},
	Captions: map[interval.Style]string{
		interval.StyleIdle:     "Ready",
		interval.StyleRunning:  "Work",
		interval.StyleAlerting: "Almost there",
		interval.StylePaused:   "Rest",
	},
}

// Phase returns the block style and caption for a timer style, falling back
// to the idle look for unknown values.
func (theme Theme) Phase(style interval.Style) (lipgloss.Style, string) {
	block, ok := theme.Phases[style]
	if !ok {
		style = interval.StyleIdle
		block = theme.Phases[style]
	}
	return block, theme.Captions[style]
}

func phaseStyle(foreground, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(foreground)).
		Background(lipgloss.Color(background)).
		Bold(true).
		Padding(1, 4).
		Width(28).
		Align(lipgloss.Center)
}

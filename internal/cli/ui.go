package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
	colorGreen = lipgloss.Color("35")
)

var (
	styleLabel  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleRoute  = lipgloss.NewStyle().Foreground(colorGreen)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

const infinity = "∞"

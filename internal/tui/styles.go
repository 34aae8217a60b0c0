package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#f59e0b")
	colorGray   = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f8fafc")
)

var (
	StyleWarning = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StylePrompt  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	StyleItem    = lipgloss.NewStyle().Foreground(colorWhite)
	StyleDim     = lipgloss.NewStyle().Foreground(colorGray)
)

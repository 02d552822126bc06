package ui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2D3748")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	markXStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF69B4")).Bold(true)
	markOStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	winnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A5568")).Bold(true)
)

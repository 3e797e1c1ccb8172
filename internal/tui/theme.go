package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Task      lipgloss.Style
	Completed lipgloss.Style
	Running   lipgloss.Style
	Timer     lipgloss.Style
	Input     lipgloss.Style
	Priority  lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true).Padding(0, 1),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Priority:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 1),
		Task:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Priority:  lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

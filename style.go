package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
)

var (
	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	rowTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(rowTextFGColor)).
			Padding(0, 1)
	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(rowSelectedTextFGColor)).
				Background(lipgloss.Color(rowSelectedBGColor)).
				Padding(0, 1)

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	noticeStyles = map[string]lipgloss.Style{
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"warn":    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

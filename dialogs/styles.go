package dialogs

import "github.com/charmbracelet/lipgloss"

const dialogWidth = 60

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			BorderBackground(overlayBackground).
			Padding(1, 2).
			Width(dialogWidth)

	// used while a dialog is in its close transition
	closingBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("240")).
			Faint(true)

	titleStyle = lipgloss.NewStyle().Bold(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func frame(closing bool) lipgloss.Style {
	if closing {
		return closingBoxStyle
	}
	return boxStyle
}

package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBackground = lipgloss.Color("236")

// Overlay centres a dialog view on a width x height screen.
func Overlay(width, height int, view string) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		view,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(overlayBackground),
	)
}

package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all dialogs (Detail, Export, Help) implement.
// Open/closed state and payload live in a modalstate.Controller inside each
// dialog; Visible stays true through the close transition so View can render
// the exit with the old payload.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsOpen() bool
	Visible() bool
	Closing() bool
	Close() tea.Cmd
	Dispose()
}

package main

import (
	"fmt"

	"github.com/andareed/modalstate/dialogs"
	"github.com/andareed/modalstate/logging"
	"github.com/charmbracelet/lipgloss"
)

const legend = "? help · enter show · x export · y copy · q quit"

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	// a closing dialog stays up, faded, until its payload is cleared
	if m.activeDialog != nil && m.activeDialog.Visible() {
		return dialogs.Overlay(m.terminalWidth, m.terminalHeight, m.activeDialog.View())
	}

	bordered := tableStyle.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		" "+m.tbl.renderHeader(),
		bordered,
		m.footerView(),
	)
}

func (m *model) footerView() string {
	left := fmt.Sprintf("%s · row %d/%d", m.InitialPath, m.cursor+1, len(m.tbl.rows))
	if logging.IsDebugMode() {
		left += fmt.Sprintf(" · dbg term=%dx%d vp=%dx%d off=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, m.viewport.YOffset)
	}
	status := m.renderNotice()
	if status == "" {
		status = footerStyle.Render(legend)
	}
	return footerStyle.Render(left) + "  " + status
}

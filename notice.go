package main

import (
	"time"

	"github.com/andareed/modalstate/modalstate"
	tea "github.com/charmbracelet/bubbletea"
)

// notice is the payload of the footer's status message.
type notice struct {
	text string
	kind string
}

type expireNoticeMsg struct{ seq int }

func noticeText(n notice) string {
	if n.text == "" {
		return ""
	}
	var icon string
	switch n.kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	}
	if icon == "" {
		return n.text
	}
	return icon + " " + n.text
}

// startNotice shows a status message and schedules it to close after d. The
// message then stays faint for the transition before it is cleared.
func (m *model) startNotice(text, kind string, d time.Duration) tea.Cmd {
	m.notice.Open(notice{text: text, kind: kind})

	// bump sequence to invalidate older timers
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return expireNoticeMsg{seq: seq} })
}

func (m *model) expireNotice(msg expireNoticeMsg) tea.Cmd {
	if msg.seq != m.noticeSeq {
		return nil
	}
	return m.notice.Close()
}

func (m *model) renderNotice() string {
	var (
		n       notice
		closing bool
	)
	switch s := m.notice.State().(type) {
	case modalstate.Opened[notice]:
		n = s.Data
	case modalstate.Closed[notice]:
		if !s.Present {
			return ""
		}
		n, closing = s.Data, true
	}
	style, ok := noticeStyles[n.kind]
	if !ok {
		style = footerStyle
	}
	if closing {
		style = style.Faint(true)
	}
	return style.Render(noticeText(n))
}

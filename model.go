package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/modalstate/clipboard"
	"github.com/andareed/modalstate/config"
	"github.com/andareed/modalstate/dialogs"
	"github.com/andareed/modalstate/modalstate"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type copyResultMsg struct{ err error }

type model struct {
	tbl         *table
	cfg         config.Config
	InitialPath string

	viewport       viewport.Model
	ready          bool
	cursor         int
	terminalWidth  int
	terminalHeight int

	detail *dialogs.Detail
	export *dialogs.Export
	help   *dialogs.Help
	// the dialog currently on screen, open or in its close transition
	activeDialog dialogs.Dialog

	notice    *modalstate.Controller[notice]
	noticeSeq int
}

func newModel(tbl *table, cfg config.Config, path string) *model {
	return &model{
		tbl:         tbl,
		cfg:         cfg,
		InitialPath: path,
		detail:      dialogs.NewDetailDialog(cfg.Transition),
		export:      dialogs.NewExportDialog(filepath.Dir(path), cfg.Transition),
		help:        dialogs.NewHelpDialog(cfg.Transition),
		notice:      modalstate.New[notice](modalstate.WithTransition(cfg.Transition)),
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("sfmodal: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case modalstate.ClearMsg:
		// each controller drops clears that are not its own
		for _, d := range m.allDialogs() {
			d.Update(msg)
		}
		m.notice.Update(msg)
		if m.activeDialog != nil && !m.activeDialog.Visible() {
			m.activeDialog = nil
		}
		return m, nil

	case expireNoticeMsg:
		return m, m.expireNotice(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.activeDialog != nil && m.activeDialog.IsOpen() {
			_, cmd := m.activeDialog.Update(msg)
			return m, cmd
		}
		return m.handleViewKey(msg)

	case dialogs.CopyRequestedMsg:
		return m, copyCmd(msg.Record)

	case copyResultMsg:
		if msg.err != nil {
			return m, m.startNotice(fmt.Sprintf("copy failed: %v", msg.err), "error", m.cfg.NoticeDuration)
		}
		return m, m.startNotice("row copied", "success", m.cfg.NoticeDuration)

	case dialogs.ExportRequestedMsg:
		return m, m.openExport(msg.Record)

	case dialogs.ExportConfirmedMsg:
		return m, exportCmd(msg.Path, msg.Record)

	case dialogs.ExportCanceledMsg:
		return m, m.startNotice("export canceled", "info", m.cfg.NoticeDuration)

	case dialogs.ExportOKMsg:
		return m, m.startNotice("exported to "+msg.Path, "success", m.cfg.NoticeDuration)

	case dialogs.ExportErrorMsg:
		return m, m.startNotice(msg.Err.Error(), "error", m.cfg.NoticeDuration)
	}

	// anything else (cursor blink etc.) goes to the open dialog
	if m.activeDialog != nil && m.activeDialog.IsOpen() {
		_, cmd := m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, Keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, Keys.Top):
		m.moveCursor(-len(m.tbl.rows))
	case key.Matches(msg, Keys.Bottom):
		m.moveCursor(len(m.tbl.rows))
	case key.Matches(msg, Keys.OpenDetail):
		if rec, ok := m.currentRecord(); ok {
			m.detail.Show(rec)
			m.activeDialog = m.detail
		}
	case key.Matches(msg, Keys.Export):
		if rec, ok := m.currentRecord(); ok {
			return m, m.openExport(rec)
		}
	case key.Matches(msg, Keys.CopyRow):
		if rec, ok := m.currentRecord(); ok {
			return m, copyCmd(rec)
		}
	case key.Matches(msg, Keys.OpenHelp):
		m.help.Show(Keys.Bindings())
		m.activeDialog = m.help
	}
	return m, nil
}

func (m *model) openExport(rec dialogs.Record) tea.Cmd {
	m.activeDialog = m.export
	return m.export.Show(rec, defaultExportName(m.InitialPath, rec.Index))
}

// quit closes every dialog for good before leaving.
func (m *model) quit() tea.Cmd {
	for _, d := range m.allDialogs() {
		d.Dispose()
	}
	m.notice.Dispose()
	log.Println("sfmodal: Quitting")
	return tea.Quit
}

func (m *model) allDialogs() []dialogs.Dialog {
	return []dialogs.Dialog{m.detail, m.export, m.help}
}

func (m *model) currentRecord() (dialogs.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tbl.rows) {
		return dialogs.Record{}, false
	}
	return m.tbl.record(m.cursor), true
}

func (m *model) moveCursor(delta int) {
	if len(m.tbl.rows) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.tbl.rows)-1, m.cursor+delta))
	m.refreshViewport()
}

func (m *model) pageSize() int {
	return max(1, m.viewport.Height)
}

// resize lays out columns for the new width and rebuilds the viewport.
func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	// table border, header line and footer
	m.viewport = viewport.New(max(1, width-2), max(1, height-5))
	layoutColumns(m.tbl.header, m.viewport.Width)
	m.ready = true
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	lines := make([]string, len(m.tbl.rows))
	for i := range m.tbl.rows {
		lines[i] = m.tbl.renderRow(i, i == m.cursor)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	// keep the cursor on screen
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func defaultExportName(inputPath string, row int) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if base == "" || base == "." {
		base = "export"
	}
	return fmt.Sprintf("%s-row-%d.csv", base, row)
}

func copyCmd(rec dialogs.Record) tea.Cmd {
	text := rec.String()
	return func() tea.Msg {
		return copyResultMsg{err: clipboard.Copy(text)}
	}
}

func exportCmd(path string, rec dialogs.Record) tea.Cmd {
	return func() tea.Msg {
		if err := writeRecord(path, rec); err != nil {
			log.Printf("export: %v", err)
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}

func writeRecord(path string, rec dialogs.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := rec.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

package dialogs

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/andareed/modalstate/modalstate"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct {
		Path   string
		Record Record
	}
	ExportCanceledMsg struct{}
	ExportErrorMsg    struct{ Err error }
	ExportOKMsg       struct{ Path string }
)

// Export asks for a file name and confirms exporting one record to it.
type Export struct {
	input textinput.Model
	state *modalstate.Controller[Record]
	// optional: remember the last directory
	lastDir string
}

func NewExportDialog(lastDir string, transition time.Duration) *Export {
	ti := textinput.New()
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	// Wide enough for typical paths
	ti.Width = 40
	return &Export{
		input:   ti,
		state:   modalstate.New[Record](modalstate.WithTransition(transition)),
		lastDir: lastDir,
	}
}

func (d *Export) Init() tea.Cmd { return nil }

// Show opens the dialog for r, pre-filling defaultName.
func (d *Export) Show(r Record, defaultName string) tea.Cmd {
	log.Printf("ExportDialog:Show:: row %d default %q\n", r.Index, defaultName)
	d.input.Placeholder = defaultName
	d.input.SetValue(defaultName)
	d.input.CursorEnd()
	d.state.Open(r)
	return d.input.Focus()
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if _, ok := msg.(modalstate.ClearMsg); ok {
		return d, d.state.Update(msg)
	}
	rec, ok := d.state.State().(modalstate.Opened[Record])
	if !ok {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter":
			val := d.input.Value()
			if val == "" {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := d.resolve(val)
			log.Printf("ExportDialog:Update::Enter pressed, exporting row %d to %s\n", rec.Data.Index, path)
			d.input.Blur()
			return d, tea.Batch(
				d.state.Close(),
				func() tea.Msg { return ExportConfirmedMsg{Path: path, Record: rec.Data} },
			)
		case "esc":
			log.Printf("ExportDialog:Update::Esc pressed, export canceled\n")
			d.input.Blur()
			return d, tea.Batch(
				d.state.Close(),
				func() tea.Msg { return ExportCanceledMsg{} },
			)
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve expands a bare file name into lastDir.
func (d *Export) resolve(path string) string {
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		return filepath.Join(d.lastDir, filepath.Base(path))
	}
	return path
}

func (d *Export) View() string {
	var (
		r       Record
		closing bool
	)
	switch s := d.state.State().(type) {
	case modalstate.Opened[Record]:
		r = s.Data
	case modalstate.Closed[Record]:
		if !s.Present {
			return ""
		}
		r, closing = s.Data, true
	}

	title := titleStyle.Render(fmt.Sprintf("Export row %d", r.Index))
	help := hintStyle.Render("enter to export • esc to cancel")
	content := fmt.Sprintf("%s\n\n%s\n\n%s", title, d.input.View(), help)
	return frame(closing).Render(content)
}

func (d *Export) IsOpen() bool   { return d.state.IsOpen() }
func (d *Export) Visible() bool  { return d.state.Phase() != modalstate.PhaseEmpty }
func (d *Export) Closing() bool  { return d.state.Pending() }
func (d *Export) Close() tea.Cmd { d.input.Blur(); return d.state.Close() }
func (d *Export) Dispose()       { d.state.Dispose() }

package dialogs

import (
	"log"
	"time"

	"github.com/andareed/modalstate/modalstate"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const helpColumnSize = 6

// Help lists key bindings. The bindings are the controller's payload, so the
// list stays on screen while the dialog fades out.
type Help struct {
	state *modalstate.Controller[[]key.Binding]
	model help.Model
}

// NewHelpDialog creates a closed help dialog.
func NewHelpDialog(transition time.Duration) *Help {
	h := help.New()
	h.ShowAll = true
	return &Help{
		state: modalstate.New[[]key.Binding](modalstate.WithTransition(transition)),
		model: h,
	}
}

func (d *Help) Init() tea.Cmd { return nil }

// Show opens the dialog listing bindings.
func (d *Help) Show(bindings []key.Binding) {
	log.Printf("HelpDialog:Show:: %d bindings\n", len(bindings))
	d.state.Open(bindings)
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if _, ok := msg.(modalstate.ClearMsg); ok {
		return d, d.state.Update(msg)
	}
	if !d.state.IsOpen() {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			return d, d.state.Close()
		}
	}
	return d, nil
}

func (d *Help) View() string {
	bindings, present := d.state.Data()
	if !present {
		return ""
	}
	content := d.model.FullHelpView(columns(bindings, helpColumnSize)) +
		"\n\n" + hintStyle.Render("enter/esc to return")
	return frame(d.state.Pending()).Render(content)
}

func columns(bindings []key.Binding, size int) [][]key.Binding {
	var cols [][]key.Binding
	for len(bindings) > size {
		cols = append(cols, bindings[:size:size])
		bindings = bindings[size:]
	}
	if len(bindings) > 0 {
		cols = append(cols, bindings)
	}
	return cols
}

func (d *Help) IsOpen() bool   { return d.state.IsOpen() }
func (d *Help) Visible() bool  { return d.state.Phase() != modalstate.PhaseEmpty }
func (d *Help) Closing() bool  { return d.state.Pending() }
func (d *Help) Close() tea.Cmd { return d.state.Close() }
func (d *Help) Dispose()       { d.state.Dispose() }

package dialogs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/andareed/modalstate/modalstate"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// --- Messages ---------------------------------------------------------------

type (
	CopyRequestedMsg   struct{ Record Record }
	ExportRequestedMsg struct{ Record Record }
)

// --- Key bindings -----------------------------------------------------------

type detailKeymap struct {
	close  key.Binding
	copy   key.Binding
	export key.Binding
}

var detailKeys = detailKeymap{
	close: key.NewBinding(
		key.WithKeys("esc", "enter", "q"),
		key.WithHelp("esc", "close"),
	),
	copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
}

// --- Detail dialog ----------------------------------------------------------

// Detail shows every field of one record.
type Detail struct {
	state *modalstate.Controller[Record]
}

func NewDetailDialog(transition time.Duration) *Detail {
	return &Detail{state: modalstate.New[Record](modalstate.WithTransition(transition))}
}

func (d *Detail) Init() tea.Cmd { return nil }

// Show opens the dialog on r.
func (d *Detail) Show(r Record) {
	log.Printf("DetailDialog:Show:: row %d\n", r.Index)
	d.state.Open(r)
}

func (d *Detail) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if _, ok := msg.(modalstate.ClearMsg); ok {
		return d, d.state.Update(msg)
	}
	rec, ok := d.state.State().(modalstate.Opened[Record])
	if !ok {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(m, detailKeys.close):
			log.Printf("DetailDialog:Update::Closing row %d\n", rec.Data.Index)
			return d, d.state.Close()
		case key.Matches(m, detailKeys.copy):
			return d, func() tea.Msg { return CopyRequestedMsg{Record: rec.Data} }
		case key.Matches(m, detailKeys.export):
			return d, tea.Batch(
				d.state.Close(),
				func() tea.Msg { return ExportRequestedMsg{Record: rec.Data} },
			)
		}
	}
	return d, nil
}

func (d *Detail) View() string {
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

	nameWidth := 0
	for _, f := range r.Fields {
		nameWidth = max(nameWidth, ansi.StringWidth(f.Name))
	}
	valueWidth := max(dialogWidth-6-nameWidth-2, 8)

	lines := []string{titleStyle.Render(fmt.Sprintf("Row %d", r.Index)), ""}
	for _, f := range r.Fields {
		name := nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, f.Name))
		lines = append(lines, name+"  "+ansi.Truncate(f.Value, valueWidth, "…"))
	}
	lines = append(lines, "", hintStyle.Render("y copy • x export • esc close"))

	return frame(closing).Render(strings.Join(lines, "\n"))
}

func (d *Detail) IsOpen() bool   { return d.state.IsOpen() }
func (d *Detail) Visible() bool  { return d.state.Phase() != modalstate.PhaseEmpty }
func (d *Detail) Closing() bool  { return d.state.Pending() }
func (d *Detail) Close() tea.Cmd { return d.state.Close() }
func (d *Detail) Dispose()       { d.state.Dispose() }

// Current returns the record being shown, including during the close transition.
func (d *Detail) Current() (Record, bool) { return d.state.Data() }

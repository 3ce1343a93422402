// Package modalstate tracks the open/closed lifecycle of a single dialog and
// the payload it shows.
//
// A Controller opens synchronously and closes in two steps: Close flips the
// dialog to closed straight away but keeps the payload, and returns a Bubble
// Tea command that clears it once the transition window has elapsed. That
// leaves the last payload available while the dialog renders its exit.
//
//	detail := modalstate.New[Record](modalstate.WithTransition(200 * time.Millisecond))
//
//	// In Update():
//	switch msg := msg.(type) {
//	case modalstate.ClearMsg:
//	    return m, detail.Update(msg)
//	case tea.KeyMsg:
//	    switch msg.String() {
//	    case "enter":
//	        detail.Open(m.current())
//	    case "esc":
//	        return m, detail.Close()
//	    }
//	}
//
//	// In View():
//	switch s := detail.State().(type) {
//	case modalstate.Opened[Record]:
//	    return render(s.Data)
//	case modalstate.Closed[Record]:
//	    if s.Present {
//	        return renderFaded(s.Data)
//	    }
//	}
//
// Controllers are not safe for concurrent use; like any Bubble Tea component
// they are driven from the program's Update loop.
package modalstate

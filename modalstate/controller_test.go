package modalstate_test

import (
	"testing"
	"time"

	"github.com/andareed/modalstate/modalstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

// fire runs a Close command to completion and returns the message it produced.
func fire(t *testing.T, cmd tea.Cmd) modalstate.ClearMsg {
	t.Helper()
	assert.Assert(t, cmd != nil, "expected a clear command")
	msg, ok := cmd().(modalstate.ClearMsg)
	assert.Assert(t, ok, "expected a ClearMsg")
	return msg
}

func TestNew_StartsEmpty(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string]()

	assert.Equal(t, c.IsOpen(), false)
	_, present := c.Data()
	assert.Equal(t, present, false)
	assert.Equal(t, c.Phase(), modalstate.PhaseEmpty)
	assert.Equal(t, c.Transition(), time.Duration(0))
	assert.DeepEqual(t, c.State(), modalstate.State[string](modalstate.Closed[string]{}))
}

func TestNewOpen_StartsOpen(t *testing.T) {
	t.Parallel()
	c := modalstate.NewOpen(42)

	assert.Equal(t, c.IsOpen(), true)
	v, present := c.Data()
	assert.Equal(t, present, true)
	assert.Equal(t, v, 42)
	assert.DeepEqual(t, c.State(), modalstate.State[int](modalstate.Opened[int]{Data: 42}))
}

func TestNewOpen_ZeroValueIsPresent(t *testing.T) {
	t.Parallel()
	c := modalstate.NewOpen[*int](nil)

	assert.Equal(t, c.IsOpen(), true)
	_, present := c.Data()
	assert.Equal(t, present, true, "nil is a payload, not absence")
}

func TestOpenCloseClear(t *testing.T) {
	t.Parallel()
	const transition = 30 * time.Millisecond
	c := modalstate.New[string](modalstate.WithTransition(transition))

	c.Open("hello")
	assert.DeepEqual(t, c.State(), modalstate.State[string](modalstate.Opened[string]{Data: "hello"}))

	start := time.Now()
	cmd := c.Close()
	assert.Equal(t, c.IsOpen(), false)
	assert.Equal(t, c.Phase(), modalstate.PhaseClosing)
	assert.Equal(t, c.Pending(), true)
	v, present := c.Data()
	assert.Equal(t, present, true)
	assert.Equal(t, v, "hello")

	msg := fire(t, cmd)
	assert.Assert(t, time.Since(start) >= transition, "cleared before the transition elapsed")
	assert.Equal(t, msg.ID, c.ID())

	// still present until the message is delivered
	_, present = c.Data()
	assert.Equal(t, present, true)

	assert.Assert(t, c.Update(msg) == nil)
	_, present = c.Data()
	assert.Equal(t, present, false)
	assert.Equal(t, c.Phase(), modalstate.PhaseEmpty)
	assert.Equal(t, c.Pending(), false)
}

func TestReopenCancelsPendingClear(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string](modalstate.WithTransition(300 * time.Millisecond))

	c.Open("A")
	cmd := c.Close()
	c.Open("B")
	assert.DeepEqual(t, c.State(), modalstate.State[string](modalstate.Opened[string]{Data: "B"}))

	// the first close's clear still arrives but must not act
	c.Update(modalstate.ClearMsg{ID: c.ID(), Seq: 2})
	assert.DeepEqual(t, c.State(), modalstate.State[string](modalstate.Opened[string]{Data: "B"}))
	assert.Assert(t, cmd != nil)
}

func TestReopenCancelsPendingClear_RealTick(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string](modalstate.WithTransition(10 * time.Millisecond))

	c.Open("A")
	stale := fire(t, c.Close())
	c.Open("B")
	c.Update(stale)

	v, present := c.Data()
	assert.Equal(t, present, true)
	assert.Equal(t, v, "B")
	assert.Equal(t, c.IsOpen(), true)

	// closing again after the stale message still clears
	fresh := fire(t, c.Close())
	c.Update(stale)
	assert.Equal(t, c.Phase(), modalstate.PhaseClosing)
	c.Update(fresh)
	assert.Equal(t, c.Phase(), modalstate.PhaseEmpty)
}

func TestZeroTransitionClearsAsynchronously(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string]()

	c.Open("x")
	cmd := c.Close()
	// nothing has run yet, Close has returned with the payload intact
	v, present := c.Data()
	assert.Equal(t, present, true)
	assert.Equal(t, v, "x")

	c.Update(fire(t, cmd))
	_, present = c.Data()
	assert.Equal(t, present, false)
}

func TestCloseTwiceRearms(t *testing.T) {
	t.Parallel()
	c := modalstate.New[int](modalstate.WithTransition(5 * time.Millisecond))

	c.Open(1)
	first := fire(t, c.Close())
	second := fire(t, c.Close())
	assert.Assert(t, second.Seq > first.Seq)
	assert.Equal(t, c.IsOpen(), false)

	c.Update(first)
	assert.Equal(t, c.Phase(), modalstate.PhaseClosing, "superseded clear must not fire")
	c.Update(second)
	assert.Equal(t, c.Phase(), modalstate.PhaseEmpty)
}

func TestCloseWhenEmptyIsNoop(t *testing.T) {
	t.Parallel()
	c := modalstate.New[int]()

	assert.Assert(t, c.Close() == nil)
	assert.Equal(t, c.Phase(), modalstate.PhaseEmpty)
}

func TestForeignClearIgnored(t *testing.T) {
	t.Parallel()
	a := modalstate.New[string]()
	b := modalstate.New[string]()
	assert.Assert(t, a.ID() != b.ID())

	a.Open("a")
	b.Open("b")
	msg := fire(t, a.Close())
	b.Close()

	b.Update(msg)
	assert.Equal(t, b.Phase(), modalstate.PhaseClosing)
	a.Update(msg)
	assert.Equal(t, a.Phase(), modalstate.PhaseEmpty)
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	t.Parallel()
	c := modalstate.NewOpen("keep")

	assert.Assert(t, c.Update(tea.KeyMsg{Type: tea.KeyEsc}) == nil)
	assert.Equal(t, c.IsOpen(), true)
}

func TestDispose(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string](modalstate.WithTransition(time.Millisecond))
	calls := 0
	c.Subscribe(func(modalstate.State[string]) { calls++ })

	c.Open("a")
	msg := fire(t, c.Close())
	assert.Equal(t, calls, 2)

	c.Dispose()
	assert.Equal(t, c.Disposed(), true)
	assert.Equal(t, c.Pending(), false)
	c.Update(msg)
	c.Open("b")
	assert.Assert(t, c.Close() == nil)

	v, present := c.Data()
	assert.Equal(t, present, true, "a disposed controller is frozen")
	assert.Equal(t, v, "a")
	assert.Equal(t, calls, 2)
}

func TestSubscribe(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string]()
	var seen []modalstate.State[string]
	unsubscribe := c.Subscribe(func(s modalstate.State[string]) { seen = append(seen, s) })

	c.Open("a")
	msg := fire(t, c.Close())
	c.Close() // already closed, no new snapshot
	c.Update(msg)
	c.Update(msg)

	expected := []modalstate.State[string]{
		modalstate.Opened[string]{Data: "a"},
		modalstate.Closed[string]{Data: "a", Present: true},
	}
	// the re-armed close superseded msg, so no clear snapshot yet
	assert.DeepEqual(t, seen, expected)

	unsubscribe()
	c.Open("b")
	assert.Equal(t, len(seen), 2)
}

func TestSubscribe_ClearSnapshot(t *testing.T) {
	t.Parallel()
	c := modalstate.New[string]()
	var seen []modalstate.State[string]
	c.Subscribe(func(s modalstate.State[string]) { seen = append(seen, s) })

	c.Open("a")
	c.Update(fire(t, c.Close()))

	expected := []modalstate.State[string]{
		modalstate.Opened[string]{Data: "a"},
		modalstate.Closed[string]{Data: "a", Present: true},
		modalstate.Closed[string]{},
	}
	if diff := cmp.Diff(expected, seen); diff != "" {
		t.Fatalf("snapshots mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	t.Parallel()
	c := modalstate.New[int]()
	var first, second int
	var unsubscribe func()
	unsubscribe = c.Subscribe(func(modalstate.State[int]) {
		first++
		unsubscribe()
	})
	c.Subscribe(func(modalstate.State[int]) { second++ })

	c.Open(1)
	c.Open(2)
	assert.Equal(t, first, 1)
	assert.Equal(t, second, 2)
}

func TestNegativeTransitionClamps(t *testing.T) {
	t.Parallel()
	c := modalstate.New[int](modalstate.WithTransition(-time.Second))
	assert.Equal(t, c.Transition(), time.Duration(0))

	c = modalstate.New[int](modalstate.WithTransitionMillis(250))
	assert.Equal(t, c.Transition(), 250*time.Millisecond)
}

func TestPhaseString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, modalstate.PhaseEmpty.String(), "empty")
	assert.Equal(t, modalstate.PhaseOpen.String(), "open")
	assert.Equal(t, modalstate.PhaseClosing.String(), "closing")
	assert.Equal(t, modalstate.Phase(9).String(), "unknown")
}

package modalstate

import (
	"sync/atomic"
	"time"

	"github.com/andareed/modalstate/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ClearMsg is sent when a controller's transition window has elapsed. Route it
// to Update; controllers ignore messages that are not theirs or that were
// superseded by a later Open, Close or Dispose.
type ClearMsg struct {
	ID  int
	Seq int
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	transition time.Duration
}

// WithTransition sets how long the payload survives a Close. Negative values
// are treated as zero.
func WithTransition(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			logging.Warnf("modalstate: negative transition %s, using 0", d)
			d = 0
		}
		o.transition = d
	}
}

// WithTransitionMillis is WithTransition for integer millisecond settings.
func WithTransitionMillis(ms int) Option {
	return WithTransition(time.Duration(ms) * time.Millisecond)
}

// Controller owns the open flag and payload of one dialog.
type Controller[T any] struct {
	id         int
	seq        int
	transition time.Duration

	open     bool
	data     T
	present  bool
	disposed bool

	observers []*observer[T]
}

type observer[T any] struct {
	fn func(State[T])
}

// New returns a closed controller with no payload.
func New[T any](opts ...Option) *Controller[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[T]{
		id:         nextID(),
		transition: o.transition,
	}
}

// NewOpen returns a controller that is already open with initial as payload.
func NewOpen[T any](initial T, opts ...Option) *Controller[T] {
	c := New[T](opts...)
	c.open = true
	c.data = initial
	c.present = true
	return c
}

// Open shows the dialog with v as its payload and cancels any pending clear.
// Every value of T counts as a payload, the zero value included.
func (c *Controller[T]) Open(v T) {
	if c.disposed {
		logging.Warnf("modalstate: Open on disposed controller %d", c.id)
		return
	}
	c.seq++
	c.data = v
	c.present = true
	c.open = true
	logging.Debugf("modalstate: controller %d opened (seq %d)", c.id, c.seq)
	c.notify()
}

// Close hides the dialog and returns a command that clears the payload after
// the transition window. Each call re-arms the clear, so the payload lives at
// least the transition duration past the most recent Close. It returns nil
// when there is nothing left to clear.
func (c *Controller[T]) Close() tea.Cmd {
	if c.disposed {
		logging.Warnf("modalstate: Close on disposed controller %d", c.id)
		return nil
	}
	wasOpen := c.open
	c.open = false
	if !c.present {
		return nil
	}

	c.seq++
	id, seq := c.id, c.seq
	logging.Debugf("modalstate: controller %d closing, clear in %s (seq %d)", id, c.transition, seq)
	if wasOpen {
		c.notify()
	}
	return tea.Tick(c.transition, func(time.Time) tea.Msg {
		return ClearMsg{ID: id, Seq: seq}
	})
}

// Update applies a ClearMsg addressed to this controller. Anything else is
// ignored. The returned command is always nil.
func (c *Controller[T]) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(ClearMsg)
	if !ok || m.ID != c.id {
		return nil
	}
	if c.disposed || m.Seq != c.seq || c.open || !c.present {
		logging.Debugf("modalstate: controller %d dropped stale clear (seq %d, current %d)", c.id, m.Seq, c.seq)
		return nil
	}

	var zero T
	c.data = zero
	c.present = false
	logging.Debugf("modalstate: controller %d cleared", c.id)
	c.notify()
	return nil
}

// Dispose cancels any pending clear and detaches observers. The controller
// ignores every call and message afterwards.
func (c *Controller[T]) Dispose() {
	if c.disposed {
		return
	}
	c.seq++
	c.disposed = true
	c.observers = nil
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes it.
func (c *Controller[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	if c.disposed || fn == nil {
		return func() {}
	}
	o := &observer[T]{fn: fn}
	c.observers = append(c.observers, o)
	return func() {
		for i, other := range c.observers {
			if other == o {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller[T]) notify() {
	if len(c.observers) == 0 {
		return
	}
	s := c.State()
	// observers may unsubscribe while being called
	for _, o := range append([]*observer[T](nil), c.observers...) {
		o.fn(s)
	}
}

// State returns a snapshot of the controller.
func (c *Controller[T]) State() State[T] {
	if c.open {
		return Opened[T]{Data: c.data}
	}
	return Closed[T]{Data: c.data, Present: c.present}
}

func (c *Controller[T]) IsOpen() bool { return c.open }

// Data returns the payload and whether one is present.
func (c *Controller[T]) Data() (T, bool) { return c.data, c.present }

func (c *Controller[T]) Phase() Phase { return c.State().Phase() }

// Pending reports whether a clear is armed, i.e. the controller is closing.
func (c *Controller[T]) Pending() bool { return !c.open && c.present && !c.disposed }

func (c *Controller[T]) Transition() time.Duration { return c.transition }
func (c *Controller[T]) ID() int                   { return c.id }
func (c *Controller[T]) Disposed() bool            { return c.disposed }

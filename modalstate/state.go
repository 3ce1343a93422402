package modalstate

// Phase names the three states a Controller moves between.
type Phase int

const (
	// PhaseEmpty is closed with no payload.
	PhaseEmpty Phase = iota
	// PhaseOpen is open with a payload.
	PhaseOpen
	// PhaseClosing is closed but still holding the payload until the clear fires.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a Controller. It is either Opened[T] or
// Closed[T]; an open snapshot always carries data.
type State[T any] interface {
	IsOpen() bool
	// Value returns the payload and whether one is present.
	Value() (T, bool)
	Phase() Phase

	state()
}

// Opened is the snapshot of an open dialog.
type Opened[T any] struct {
	Data T
}

func (Opened[T]) IsOpen() bool       { return true }
func (s Opened[T]) Value() (T, bool) { return s.Data, true }
func (Opened[T]) Phase() Phase       { return PhaseOpen }
func (Opened[T]) state()             {}

// Closed is the snapshot of a closed dialog. Present is true during the
// transition window, when Data still holds the last payload.
type Closed[T any] struct {
	Data    T
	Present bool
}

func (Closed[T]) IsOpen() bool       { return false }
func (s Closed[T]) Value() (T, bool) { return s.Data, s.Present }

func (s Closed[T]) Phase() Phase {
	if s.Present {
		return PhaseClosing
	}
	return PhaseEmpty
}

func (Closed[T]) state() {}

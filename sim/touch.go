package sim

// TouchSource reports the current contact state. It is polled once per frame,
// and only the transition from no contact to contact inserts a point.
type TouchSource interface {
	Touch() (x, y int, down bool)
}

// Touch sources that can also ask for the points to be cleared implement
// Resetter. ResetRequested is polled once per frame and should report each
// request once.
type Resetter interface {
	ResetRequested() bool
}

type Tap struct {
	X, Y int
}

// Script replays a fixed list of taps, one every Every frames. Between taps
// the contact is released, so consecutive taps are separate rising edges.
type Script struct {
	Taps  []Tap
	Every int

	frame int
	next  int
}

func NewScript(taps []Tap, every int) *Script {
	// Every other frame is the fastest rate that still releases the contact
	// between taps
	if every < 2 {
		every = 2
	}
	return &Script{Taps: taps, Every: every}
}

func (s *Script) Touch() (x, y int, down bool) {
	frame := s.frame
	s.frame++
	if s.next >= len(s.Taps) || frame%s.Every != 0 {
		return 0, 0, false
	}
	tap := s.Taps[s.next]
	s.next++
	return tap.X, tap.Y, true
}

// Whether every tap has been replayed
func (s *Script) Done() bool {
	return s.next >= len(s.Taps)
}

// No contact, ever
type NoTouch struct{}

func (NoTouch) Touch() (int, int, bool) { return 0, 0, false }

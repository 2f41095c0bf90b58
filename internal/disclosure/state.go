package disclosure

import "github.com/google/uuid"

// Phase is the disclosure state of one dialog.
type Phase int

const (
	Closed     Phase = iota
	OpenUnseen       // open, bottom not reached yet
	OpenSeen         // open, user has reached the bottom at least once
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case Closed:
		return "Closed"
	case OpenUnseen:
		return "OpenUnseen"
	case OpenSeen:
		return "OpenSeen"
	default:
		return "Unknown"
	}
}

// State is the per-dialog disclosure state machine:
//
//	Closed --Open--> OpenUnseen --bottom reached--> OpenSeen
//	OpenUnseen, OpenSeen --Close--> Closed
//
// reachedBottom only moves from false to true within one open session.
type State struct {
	phase         Phase
	scrollable    bool
	reachedBottom bool
	hint          bool
	sessionID     string
}

// Open starts a new open session from Closed. Content that does not need
// scrolling is seen immediately. Opening an already-open state keeps its
// progress and returns false.
func (s *State) Open(m Metrics, slack int) bool {
	if s.phase != Closed {
		return false
	}
	s.phase = OpenUnseen
	s.reachedBottom = false
	s.sessionID = uuid.New().String()
	s.apply(Observe(m, slack))
	return true
}

// Observe feeds a scroll update into the state. It returns true when the
// phase changed. Updates while closed are ignored.
func (s *State) Observe(m Metrics, slack int) bool {
	if s.phase == Closed {
		return false
	}
	before := s.phase
	s.apply(Observe(m, slack))
	return s.phase != before
}

func (s *State) apply(o Observation) {
	s.scrollable = o.Scrollable
	s.hint = o.ShowHint()
	if !o.Scrollable || o.AtBottom {
		s.reachedBottom = true
		s.phase = OpenSeen
	}
}

// Close ends the open session. It returns false if the state was already closed.
func (s *State) Close() bool {
	if s.phase == Closed {
		return false
	}
	s.phase = Closed
	s.hint = false
	return true
}

func (s *State) Phase() Phase           { return s.phase }
func (s *State) IsOpen() bool           { return s.phase != Closed }
func (s *State) IsScrollable() bool     { return s.scrollable }
func (s *State) HasReachedBottom() bool { return s.reachedBottom }
func (s *State) HintVisible() bool      { return s.hint }
func (s *State) SessionID() string      { return s.sessionID }

// CanClose reports whether a close request would succeed without a prompt.
func (s *State) CanClose() bool {
	return s.phase == OpenSeen
}

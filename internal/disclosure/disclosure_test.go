package disclosure

import "testing"

func TestObserve(t *testing.T) {
	tests := []struct {
		name           string
		m              Metrics
		slack          int
		wantScrollable bool
		wantAtBottom   bool
		wantHint       bool
	}{
		{"fits exactly", Metrics{Offset: 0, Content: 400, Viewport: 400}, DefaultSlack, false, true, false},
		{"short content", Metrics{Offset: 0, Content: 100, Viewport: 400}, DefaultSlack, false, true, false},
		{"top of long content", Metrics{Offset: 0, Content: 1000, Viewport: 400}, DefaultSlack, true, false, true},
		{"within slack", Metrics{Offset: 550, Content: 1000, Viewport: 400}, DefaultSlack, true, true, false},
		{"just outside slack", Metrics{Offset: 549, Content: 1000, Viewport: 400}, DefaultSlack, true, false, true},
		{"scrolled past", Metrics{Offset: 650, Content: 1000, Viewport: 400}, DefaultSlack, true, true, false},
		{"zero slack at bottom", Metrics{Offset: 60, Content: 80, Viewport: 20}, 0, true, true, false},
		{"zero slack one line short", Metrics{Offset: 59, Content: 80, Viewport: 20}, 0, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Observe(tt.m, tt.slack)
			if o.Scrollable != tt.wantScrollable {
				t.Errorf("Scrollable = %v, want %v", o.Scrollable, tt.wantScrollable)
			}
			if o.AtBottom != tt.wantAtBottom {
				t.Errorf("AtBottom = %v, want %v", o.AtBottom, tt.wantAtBottom)
			}
			if o.ShowHint() != tt.wantHint {
				t.Errorf("ShowHint() = %v, want %v", o.ShowHint(), tt.wantHint)
			}
		})
	}
}

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Closed, "Closed"},
		{OpenUnseen, "OpenUnseen"},
		{OpenSeen, "OpenSeen"},
		{Phase(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

var (
	longTop    = Metrics{Offset: 0, Content: 1000, Viewport: 400}
	longMiddle = Metrics{Offset: 300, Content: 1000, Viewport: 400}
	longBottom = Metrics{Offset: 650, Content: 1000, Viewport: 400}
	short      = Metrics{Offset: 0, Content: 200, Viewport: 400}
)

func TestState_ZeroValueIsClosed(t *testing.T) {
	var s State
	if s.Phase() != Closed || s.IsOpen() || s.CanClose() {
		t.Errorf("zero State should be closed, got %v", s.Phase())
	}
	if s.Observe(longBottom, DefaultSlack) {
		t.Error("Observe on a closed state should not change anything")
	}
	if s.HasReachedBottom() {
		t.Error("closed state should not record progress")
	}
}

func TestState_OpenNonScrollableIsSeen(t *testing.T) {
	var s State
	if !s.Open(short, DefaultSlack) {
		t.Fatal("Open from Closed should return true")
	}
	if s.Phase() != OpenSeen {
		t.Errorf("Phase = %v, want OpenSeen", s.Phase())
	}
	if s.IsScrollable() || s.HintVisible() {
		t.Error("short content should not be scrollable or show a hint")
	}
	if !s.CanClose() {
		t.Error("non-scrollable dialog should close without a prompt")
	}
}

func TestState_OpenScrollableIsUnseen(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)

	if s.Phase() != OpenUnseen {
		t.Errorf("Phase = %v, want OpenUnseen", s.Phase())
	}
	if !s.IsScrollable() || !s.HintVisible() {
		t.Error("long content should be scrollable with a visible hint")
	}
	if s.CanClose() {
		t.Error("unseen dialog should not close without a prompt")
	}
	if s.SessionID() == "" {
		t.Error("open session should have an id")
	}
}

func TestState_ReachBottom(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)

	if s.Observe(longMiddle, DefaultSlack) {
		t.Error("scrolling to the middle should not change phase")
	}
	if s.Phase() != OpenUnseen {
		t.Errorf("Phase = %v, want OpenUnseen", s.Phase())
	}

	if !s.Observe(longBottom, DefaultSlack) {
		t.Error("reaching the bottom should change phase")
	}
	if s.Phase() != OpenSeen || !s.HasReachedBottom() {
		t.Errorf("Phase = %v, reached = %v; want OpenSeen, true", s.Phase(), s.HasReachedBottom())
	}
	if s.HintVisible() {
		t.Error("hint should hide at the bottom")
	}

	// Reaching the bottom again is a no-op.
	if s.Observe(longBottom, DefaultSlack) {
		t.Error("second bottom observation should not report a change")
	}
}

func TestState_ReachedBottomIsMonotonic(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)
	s.Observe(longBottom, DefaultSlack)

	for _, m := range []Metrics{longTop, longMiddle, {Offset: 10, Content: 5000, Viewport: 400}} {
		s.Observe(m, DefaultSlack)
		if !s.HasReachedBottom() || s.Phase() != OpenSeen {
			t.Fatalf("after %+v: reached = %v, phase = %v", m, s.HasReachedBottom(), s.Phase())
		}
	}
	// The hint still tracks the live position.
	if !s.HintVisible() {
		t.Error("hint should reappear when scrolled back up")
	}
}

func TestState_ReopenResetsProgress(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)
	first := s.SessionID()
	s.Observe(longBottom, DefaultSlack)

	if !s.Close() {
		t.Fatal("Close from OpenSeen should return true")
	}
	if s.Phase() != Closed || s.HintVisible() {
		t.Error("closed state should be Closed with no hint")
	}

	s.Open(longTop, DefaultSlack)
	if s.HasReachedBottom() {
		t.Error("reopen should reset reached-bottom")
	}
	if s.Phase() != OpenUnseen {
		t.Errorf("Phase = %v, want OpenUnseen", s.Phase())
	}
	if s.SessionID() == first {
		t.Error("reopen should start a new session id")
	}
}

func TestState_OpenWhileOpenKeepsProgress(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)
	s.Observe(longBottom, DefaultSlack)
	id := s.SessionID()

	if s.Open(longTop, DefaultSlack) {
		t.Error("Open while open should return false")
	}
	if s.Phase() != OpenSeen || s.SessionID() != id {
		t.Error("Open while open should not reset the session")
	}
}

func TestState_CloseFromUnseen(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)

	if !s.Close() {
		t.Error("Close from OpenUnseen should succeed at the state level")
	}
	if s.Close() {
		t.Error("Close when already closed should return false")
	}
}

func TestState_ContentShrinksToFit(t *testing.T) {
	var s State
	s.Open(longTop, DefaultSlack)

	// A resize that makes everything visible counts as seen.
	if !s.Observe(Metrics{Offset: 0, Content: 1000, Viewport: 1200}, DefaultSlack) {
		t.Error("content fitting the viewport should mark the dialog seen")
	}
	if s.Phase() != OpenSeen {
		t.Errorf("Phase = %v, want OpenSeen", s.Phase())
	}
}

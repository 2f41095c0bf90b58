// Package disclosure tracks whether a user has actually scrolled through all
// of a dialog's content. It has no rendering dependencies: callers feed it
// scroll metrics and read back the phase.
package disclosure

// DefaultSlack absorbs rounding variance when deciding whether a dialog is
// scrolled to the bottom. Units are whatever the caller measures in.
const DefaultSlack = 50

// DefaultScrollStep is how far "continue reading" moves a dialog forward.
const DefaultScrollStep = 300

// Metrics is a snapshot of a dialog's scroll position.
type Metrics struct {
	Offset   int // distance scrolled from the top
	Content  int // total content extent
	Viewport int // visible extent
}

// Observation is what the scroll observer derives from a Metrics snapshot.
type Observation struct {
	Scrollable bool
	AtBottom   bool
}

// Observe computes scrollability and bottom status for m.
func Observe(m Metrics, slack int) Observation {
	return Observation{
		Scrollable: m.Content > m.Viewport,
		AtBottom:   m.Content-m.Offset <= m.Viewport+slack,
	}
}

// ShowHint reports whether the "more below" affordance should be shown.
func (o Observation) ShowHint() bool {
	return o.Scrollable && !o.AtBottom
}

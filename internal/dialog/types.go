// Package dialog opens and closes checklist dialogs and gates dismissal on
// whether the user has scrolled through the whole dialog. Rendering lives in
// the ui package; this package only holds state and talks to the rendered
// dialog through the Surface interface.
package dialog

import (
	"time"

	"github.com/zhubert/readthrough/internal/disclosure"
)

// Surface is the rendered side of one dialog.
type Surface interface {
	// Metrics reports the current scroll position and extents.
	Metrics() disclosure.Metrics
	// ScrollBy moves the content forward by delta units. Implementations may
	// animate; they report new positions through later scroll events.
	ScrollBy(delta int)
}

// Translator is the translation lookup collaborator.
type Translator interface {
	Lookup(lang, key string) (string, bool)
}

// Source identifies what triggered a close request.
type Source int

const (
	SourceCloseButton Source = iota
	SourceOutsideClick
	SourceEscapeKey
)

func (s Source) String() string {
	switch s {
	case SourceCloseButton:
		return "closeButton"
	case SourceOutsideClick:
		return "outsideClick"
	case SourceEscapeKey:
		return "escapeKey"
	default:
		return "unknown"
	}
}

// CloseResult is the outcome of a close request.
type CloseResult int

const (
	CloseIgnored CloseResult = iota // unknown or already closed dialog
	Closed                          // dialog hidden
	Blocked                         // content not fully seen, warning shown
)

func (r CloseResult) String() string {
	switch r {
	case Closed:
		return "closed"
	case Blocked:
		return "blocked"
	default:
		return "ignored"
	}
}

// Prompt is the warning shown when closing a dialog whose content has not
// been fully seen.
type Prompt struct {
	Visible     bool
	Text        string
	Continue    string
	CloseAnyway string
}

// Pulse is the short emphasis on the scroll hint after a blocked close. It
// expires on its own; Token lets a late expiry for a superseded pulse be
// ignored.
type Pulse struct {
	DialogID string
	Token    string
	Duration time.Duration
	Expires  time.Time
}

// Fallback strings used when the active language has no translation.
const (
	FallbackWarning     = "⚠️ You haven't seen all the content yet!"
	FallbackContinue    = "Continue Reading"
	FallbackCloseAnyway = "Close Anyway"
)

// Options tunes the controller. Slack and ScrollStep are in the same units
// as the Surface metrics.
type Options struct {
	Slack         int
	ScrollStep    int
	PulseDuration time.Duration
	Now           func() time.Time
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Slack:         disclosure.DefaultSlack,
		ScrollStep:    disclosure.DefaultScrollStep,
		PulseDuration: 2 * time.Second,
		Now:           time.Now,
	}
}

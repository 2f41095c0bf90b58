package dialog

// Event is a discrete UI event for the controller. Every state change goes
// through Dispatch, one event at a time, in arrival order.
type Event interface {
	dialogEvent()
}

type OpenEvent struct{ ID string }

// ScrollEvent reports that the scroll position of a dialog may have changed.
type ScrollEvent struct{ ID string }

// LayoutSettledEvent is the one-shot re-evaluation after a dialog opens.
type LayoutSettledEvent struct{ ID string }

type CloseEvent struct {
	ID     string
	Source Source
}

// CloseActiveEvent targets whichever dialog is on top (escape, outside click).
type CloseActiveEvent struct{ Source Source }

type ContinueEvent struct{ ID string }

type CloseAnywayEvent struct{ ID string }

type PulseExpiredEvent struct {
	ID    string
	Token string
}

func (OpenEvent) dialogEvent()          {}
func (ScrollEvent) dialogEvent()        {}
func (LayoutSettledEvent) dialogEvent() {}
func (CloseEvent) dialogEvent()         {}
func (CloseActiveEvent) dialogEvent()   {}
func (ContinueEvent) dialogEvent()      {}
func (CloseAnywayEvent) dialogEvent()   {}
func (PulseExpiredEvent) dialogEvent()  {}

// Outcome describes what handling an event did.
type Outcome struct {
	// Result is set for close-type events.
	Result CloseResult
	// Changed is true when a disclosure phase changed or a pulse ended.
	Changed bool
	// Pulse is set when a blocked close started a new pulse; the caller
	// schedules its expiry.
	Pulse *Pulse
	// Scrolled is true when a continue action asked the surface to scroll.
	Scrolled bool
	// Err carries recovered errors (unknown dialog, nothing visible). They
	// are informational; the event was a no-op.
	Err error
}

// Dispatch routes ev to the matching operation.
func (c *Controller) Dispatch(ev Event) Outcome {
	switch ev := ev.(type) {
	case OpenEvent:
		opened, err := c.RequestOpen(ev.ID)
		return Outcome{Changed: opened, Err: err}

	case ScrollEvent:
		return Outcome{Changed: c.Observe(ev.ID)}

	case LayoutSettledEvent:
		return Outcome{Changed: c.Observe(ev.ID)}

	case CloseEvent:
		res, err := c.RequestClose(ev.ID, ev.Source)
		return c.closeOutcome(ev.ID, res, err)

	case CloseActiveEvent:
		id, _ := c.ActiveID()
		res, err := c.CloseActive(ev.Source)
		return c.closeOutcome(id, res, err)

	case ContinueEvent:
		return Outcome{Scrolled: c.Continue(ev.ID)}

	case CloseAnywayEvent:
		res := c.CloseAnyway(ev.ID)
		return Outcome{Result: res, Changed: res == Closed}

	case PulseExpiredEvent:
		return Outcome{Changed: c.ExpirePulse(ev.ID, ev.Token)}
	}
	return Outcome{}
}

func (c *Controller) closeOutcome(id string, res CloseResult, err error) Outcome {
	out := Outcome{Result: res, Changed: res == Closed, Err: err}
	if res == Blocked {
		if p, ok := c.Pulse(id); ok {
			out.Pulse = &p
		}
	}
	return out
}

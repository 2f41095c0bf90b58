package dialog

import (
	"slices"

	"github.com/zhubert/readthrough/internal/disclosure"
)

// Phase returns the disclosure phase of id; unknown ids are Closed.
func (c *Controller) Phase(id string) disclosure.Phase {
	if e, ok := c.dialogs[id]; ok {
		return e.state.Phase()
	}
	return disclosure.Closed
}

// State returns a copy of the disclosure state of id.
func (c *Controller) State(id string) (disclosure.State, bool) {
	e, ok := c.dialogs[id]
	if !ok {
		return disclosure.State{}, false
	}
	return e.state, true
}

func (c *Controller) Known(id string) bool {
	_, ok := c.dialogs[id]
	return ok
}

func (c *Controller) Visible(id string) bool {
	e, ok := c.dialogs[id]
	return ok && e.visible
}

// ActiveID returns the most recently opened dialog that is still visible.
func (c *Controller) ActiveID() (string, bool) {
	if len(c.order) == 0 {
		return "", false
	}
	return c.order[len(c.order)-1], true
}

// OpenIDs returns the visible dialogs, oldest first.
func (c *Controller) OpenIDs() []string {
	return slices.Clone(c.order)
}

func (c *Controller) HintVisible(id string) bool {
	e, ok := c.dialogs[id]
	return ok && e.state.HintVisible()
}

// Prompt returns the warning prompt of id, if one exists this open session.
func (c *Controller) Prompt(id string) (Prompt, bool) {
	e, ok := c.dialogs[id]
	if !ok || e.prompt == nil {
		return Prompt{}, false
	}
	return *e.prompt, true
}

// PromptVisible is shorthand for a prompt that exists and is shown.
func (c *Controller) PromptVisible(id string) bool {
	p, ok := c.Prompt(id)
	return ok && p.Visible
}

// Pulse returns the pending pulse of id.
func (c *Controller) Pulse(id string) (Pulse, bool) {
	e, ok := c.dialogs[id]
	if !ok || e.pulse == nil {
		return Pulse{}, false
	}
	return *e.pulse, true
}

// Pulsing reports whether the scroll hint of id is currently emphasized. A
// pulse past its expiry is treated as gone even if its timer never fired.
func (c *Controller) Pulsing(id string) bool {
	p, ok := c.Pulse(id)
	return ok && c.opts.Now().Before(p.Expires)
}

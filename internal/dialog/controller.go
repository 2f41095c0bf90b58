package dialog

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/zhubert/readthrough/internal/disclosure"
	"github.com/zhubert/readthrough/internal/errors"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/logger"
)

type entry struct {
	surface Surface
	state   disclosure.State
	visible bool
	prompt  *Prompt // nil until the first blocked close of this open session
	pulse   *Pulse
}

// Controller owns the disclosure state of every registered dialog. It is not
// safe for concurrent use; all calls are expected from the UI event loop.
type Controller struct {
	tr      Translator
	opts    Options
	lang    string
	dialogs map[string]*entry
	order   []string // visible dialogs, oldest first
	log     *slog.Logger
}

// New creates a controller. Zero ScrollStep, PulseDuration and Now take their
// defaults; a zero Slack is a valid tolerance and is kept.
func New(tr Translator, opts Options) *Controller {
	def := DefaultOptions()
	if opts.ScrollStep == 0 {
		opts.ScrollStep = def.ScrollStep
	}
	if opts.PulseDuration == 0 {
		opts.PulseDuration = def.PulseDuration
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	return &Controller{
		tr:      tr,
		opts:    opts,
		lang:    i18n.DefaultLanguage,
		dialogs: make(map[string]*entry),
		log:     logger.ComponentLogger("dialog"),
	}
}

// Register makes a dialog known to the controller. Registering an id again
// replaces its surface and resets it to closed.
func (c *Controller) Register(id string, s Surface) {
	c.dialogs[id] = &entry{surface: s}
	c.removeFromOrder(id)
}

// SetLanguage sets the language used for prompt text.
func (c *Controller) SetLanguage(lang string) {
	c.lang = lang
}

// Language returns the active language.
func (c *Controller) Language() string {
	return c.lang
}

// RequestOpen opens a dialog and reports whether a new session started.
// Unknown ids are a no-op and return an error of kind NotFound. Opening a
// dialog that is already open keeps its progress and returns false.
func (c *Controller) RequestOpen(id string) (bool, error) {
	e, ok := c.dialogs[id]
	if !ok {
		return false, errors.DialogNotFound("dialog.RequestOpen", id)
	}

	opened := e.state.Open(e.surface.Metrics(), c.opts.Slack)
	if opened {
		e.prompt = nil
		e.pulse = nil
		c.log.Debug("opened", "dialog", id, "session", e.state.SessionID(),
			"phase", e.state.Phase(), "scrollable", e.state.IsScrollable())
	}
	if !e.visible {
		e.visible = true
		c.order = append(c.order, id)
	}
	return opened, nil
}

// Observe re-reads the surface metrics of an open dialog. It is called on
// every scroll change and once after layout settles. It returns true when
// the disclosure phase changed.
func (c *Controller) Observe(id string) bool {
	e, ok := c.dialogs[id]
	if !ok {
		return false
	}
	changed := e.state.Observe(e.surface.Metrics(), c.opts.Slack)
	if changed {
		c.log.Debug("phase changed", "dialog", id, "session", e.state.SessionID(), "phase", e.state.Phase())
	}
	if e.state.Phase() == disclosure.OpenSeen && e.prompt != nil {
		e.prompt.Visible = false
	}
	return changed
}

// RequestClose closes a dialog whose content has been fully seen. Otherwise
// it shows the warning prompt and returns Blocked. The policy is the same
// for every source.
func (c *Controller) RequestClose(id string, src Source) (CloseResult, error) {
	e, ok := c.dialogs[id]
	if !ok {
		return CloseIgnored, errors.DialogNotFound("dialog.RequestClose", id)
	}
	if !e.state.IsOpen() {
		return CloseIgnored, nil
	}

	if e.state.CanClose() {
		c.close(id, e)
		c.log.Debug("closed", "dialog", id, "source", src)
		return Closed, nil
	}

	c.activatePrompt(e)
	e.pulse = c.newPulse(id)
	c.log.Debug("close blocked", "dialog", id, "source", src, "session", e.state.SessionID())
	return Blocked, nil
}

// CloseActive sends a close request to the most recently opened visible
// dialog. With nothing visible it returns CloseIgnored and a NotFound error.
func (c *Controller) CloseActive(src Source) (CloseResult, error) {
	id, ok := c.ActiveID()
	if !ok {
		return CloseIgnored, errors.NoActiveDialog("dialog.CloseActive")
	}
	return c.RequestClose(id, src)
}

// Continue hides the prompt and scrolls the dialog forward. It does not
// change the disclosure state; a later scroll event may.
func (c *Controller) Continue(id string) bool {
	e, ok := c.dialogs[id]
	if !ok || !e.state.IsOpen() {
		return false
	}
	if e.prompt != nil {
		e.prompt.Visible = false
	}
	e.surface.ScrollBy(c.opts.ScrollStep)
	return true
}

// CloseAnyway hides the prompt and closes the dialog regardless of progress.
func (c *Controller) CloseAnyway(id string) CloseResult {
	e, ok := c.dialogs[id]
	if !ok || !e.state.IsOpen() {
		return CloseIgnored
	}
	reached := e.state.HasReachedBottom()
	c.close(id, e)
	c.log.Debug("closed anyway", "dialog", id, "reachedBottom", reached)
	return Closed
}

// ExpirePulse ends the pulse with the given token. Expiries for a pulse that
// was superseded or cancelled are ignored.
func (c *Controller) ExpirePulse(id, token string) bool {
	e, ok := c.dialogs[id]
	if !ok || e.pulse == nil || e.pulse.Token != token {
		return false
	}
	e.pulse = nil
	return true
}

func (c *Controller) close(id string, e *entry) {
	e.state.Close()
	e.visible = false
	e.prompt = nil
	e.pulse = nil
	c.removeFromOrder(id)
}

func (c *Controller) removeFromOrder(id string) {
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
}

func (c *Controller) activatePrompt(e *entry) {
	if e.prompt == nil {
		e.prompt = &Prompt{}
	}
	// Refresh in place; the language may have changed since the last attempt.
	e.prompt.Text = c.text(i18n.KeyScrollWarning, FallbackWarning)
	e.prompt.Continue = c.text(i18n.KeyWarningContinue, FallbackContinue)
	e.prompt.CloseAnyway = c.text(i18n.KeyWarningClose, FallbackCloseAnyway)
	e.prompt.Visible = true
}

func (c *Controller) text(key, fallback string) string {
	if c.tr != nil {
		if s, ok := c.tr.Lookup(c.lang, key); ok {
			return s
		}
	}
	c.log.Debug("missing translation", "lang", c.lang, "key", key)
	return fallback
}

func (c *Controller) newPulse(id string) *Pulse {
	return &Pulse{
		DialogID: id,
		Token:    uuid.New().String(),
		Duration: c.opts.PulseDuration,
		Expires:  c.opts.Now().Add(c.opts.PulseDuration),
	}
}

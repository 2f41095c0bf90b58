package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/dialog"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/ui"
)

// dispatch hands ev to the dialog controller and turns the outcome into
// follow-up commands: pulse expiry timers and scroll animation frames.
func (m *Model) dispatch(ev dialog.Event) tea.Cmd {
	out := m.dialogs.Dispatch(ev)
	if out.Err != nil {
		m.log.Debug("dialog event ignored", "event", ev, "error", out.Err)
	}

	var cmds []tea.Cmd
	if p := out.Pulse; p != nil {
		id, token := p.DialogID, p.Token
		cmds = append(cmds, tea.Tick(p.Duration, func(time.Time) tea.Msg {
			return PulseExpiredMsg{ID: id, Token: token}
		}))
	}
	// Continue only ever targets the dialog on top
	if out.Scrolled {
		if v, ok := m.activeView(); ok {
			cmds = append(cmds, v.AnimCmd())
		}
	}
	return tea.Batch(cmds...)
}

// openDialog shows the dialog of an item and schedules the one-shot
// re-measure once the layout has settled.
func (m *Model) openDialog(id string) tea.Cmd {
	v, ok := m.views[id]
	if !ok {
		return m.dispatch(dialog.OpenEvent{ID: id})
	}
	if !m.dialogs.Visible(id) {
		v.GotoTop()
	}
	return tea.Batch(
		m.dispatch(dialog.OpenEvent{ID: id}),
		tea.Tick(ui.LayoutSettleDelay, func(time.Time) tea.Msg {
			return LayoutSettledMsg{ID: id}
		}),
	)
}

// observeOpen re-evaluates every open dialog, e.g. after a resize.
func (m *Model) observeOpen() {
	for _, id := range m.dialogs.OpenIDs() {
		m.dialogs.Dispatch(dialog.ScrollEvent{ID: id})
	}
}

// continueReading hides the prompt and scrolls the active dialog forward.
func (m *Model) continueReading(id string) tea.Cmd {
	return m.dispatch(dialog.ContinueEvent{ID: id})
}

func (m *Model) closeAnyway(id string) tea.Cmd {
	return m.dispatch(dialog.CloseAnywayEvent{ID: id})
}

// copyDialog places the plain text of the dialog on the clipboard.
func (m *Model) copyDialog(v *ui.DialogView) tea.Cmd {
	if err := m.copyText(v.PlainText()); err != nil {
		m.log.Warn("copy failed", "dialog", v.ID(), "error", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess(m.text(i18n.KeyCopied, "Copied to clipboard"))
}

// syncDialogStatus copies controller state the active view draws: hint,
// pulse and prompt.
func (m *Model) syncDialogStatus() {
	id, ok := m.dialogs.ActiveID()
	if !ok {
		return
	}
	v := m.views[id]
	if v == nil {
		return
	}
	p, _ := m.dialogs.Prompt(id)
	v.SetPrompt(p)
	v.SetStatus(
		m.dialogs.HintVisible(id),
		m.dialogs.Pulsing(id),
		m.text(i18n.KeyScrollHint, "more"),
		"esc close · y copy · n more",
	)
}

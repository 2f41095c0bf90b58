package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/dialog"
	"github.com/zhubert/readthrough/internal/keys"
	"github.com/zhubert/readthrough/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout(msg.Width, msg.Height)
		m.observeOpen()
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		if msg.String() == keys.CtrlC {
			return m, tea.Quit
		}
		if id, ok := m.dialogs.ActiveID(); ok {
			return m, m.handleDialogKey(id, msg)
		}
		return m.handleListKey(msg)

	case tea.MouseClickMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		return m, m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		return m, m.handleMouseWheel(msg)

	case LayoutSettledMsg:
		return m, m.dispatch(dialog.LayoutSettledEvent{ID: msg.ID})

	case PulseExpiredMsg:
		return m, m.dispatch(dialog.PulseExpiredEvent{ID: msg.ID, Token: msg.Token})

	case ui.AnimTickMsg:
		v, ok := m.views[msg.ID]
		if !ok {
			return m, nil
		}
		v.Step()
		m.dispatch(dialog.ScrollEvent{ID: msg.ID})
		return m, v.AnimCmd()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()
	}

	// huh forms rely on their own internal messages
	if m.modal.IsVisible() {
		_, cmd := m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleListKey handles keys when no dialog is open.
func (m *Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	result, cmd, _ := m.ExecuteShortcut(msg.String())
	return result, cmd
}

// handleDialogKey handles keys while a dialog is on top. The warning prompt
// takes its own keys first; scroll keys always reach the body.
func (m *Model) handleDialogKey(id string, msg tea.KeyPressMsg) tea.Cmd {
	v := m.views[id]
	key := msg.String()

	if m.dialogs.PromptVisible(id) {
		switch key {
		case "c":
			return m.continueReading(id)
		case "a":
			return m.closeAnyway(id)
		case keys.Left, keys.Right, keys.Tab, keys.ShiftTab:
			v.ToggleFocus()
			return nil
		case keys.Enter:
			if v.Focus() == ui.ButtonCloseAnyway {
				return m.closeAnyway(id)
			}
			return m.continueReading(id)
		}
	}

	switch key {
	case keys.Escape:
		return m.dispatch(dialog.CloseActiveEvent{Source: dialog.SourceEscapeKey})
	case "x":
		return m.dispatch(dialog.CloseEvent{ID: id, Source: dialog.SourceCloseButton})
	case "n":
		return m.continueReading(id)
	case "y":
		return m.copyDialog(v)
	}

	moved, cmd := v.Update(msg)
	if moved {
		return tea.Batch(cmd, m.dispatch(dialog.ScrollEvent{ID: id}))
	}
	return cmd
}

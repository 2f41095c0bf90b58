package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/dialog"
	"github.com/zhubert/readthrough/internal/ui"
)

// handleMouseClick hit-tests a left click against the dialog on top, or
// against the checklist when no dialog is open.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}
	x, y := msg.X, msg.Y

	id, ok := m.dialogs.ActiveID()
	if !ok {
		return m.clickChecklist(x, y)
	}
	v := m.views[id]

	switch {
	case v.CloseButtonBounds().Contains(x, y):
		return m.dispatch(dialog.CloseEvent{ID: id, Source: dialog.SourceCloseButton})
	case v.ButtonBounds(ui.ButtonContinue).Contains(x, y):
		return m.continueReading(id)
	case v.ButtonBounds(ui.ButtonCloseAnyway).Contains(x, y):
		return m.closeAnyway(id)
	case v.HintBounds().Contains(x, y):
		return m.continueReading(id)
	case !v.Bounds().Contains(x, y):
		return m.dispatch(dialog.CloseActiveEvent{Source: dialog.SourceOutsideClick})
	}
	return nil
}

// clickChecklist selects the clicked row. A click on the checkbox toggles
// it; a click anywhere else on the row opens the item.
func (m *Model) clickChecklist(x, y int) tea.Cmd {
	if !m.ctx.InContent(y) {
		return nil
	}
	relX := x - m.ctx.ListLeft()
	if relX < 0 || relX >= m.ctx.ListWidth() {
		return nil
	}
	i, ok := m.checklist.IndexAt(y - m.ctx.ContentTop)
	if !ok {
		return nil
	}
	m.checklist.Select(i)
	if m.checklist.OnCheckbox(relX) {
		return m.toggleSelected()
	}
	return m.openSelected()
}

// handleMouseWheel scrolls the dialog on top, or moves the checklist cursor.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	id, ok := m.dialogs.ActiveID()
	if !ok {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.checklist.MoveUp()
		case tea.MouseWheelDown:
			m.checklist.MoveDown()
		}
		return nil
	}

	moved, cmd := m.views[id].Update(msg)
	if moved {
		return tea.Batch(cmd, m.dispatch(dialog.ScrollEvent{ID: id}))
	}
	return cmd
}

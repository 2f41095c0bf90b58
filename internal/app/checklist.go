package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/i18n"
)

// allDoneText announces completion when no translation is available.
const allDoneText = "Every item is checked"

// toggleSelected flips the checkbox under the cursor and persists it.
// Checking the last open item announces completion.
func (m *Model) toggleSelected() tea.Cmd {
	it, ok := m.checklist.Selected()
	if !ok {
		return nil
	}

	checked := m.config.ToggleChecked(it.ID)
	m.checklist.SetChecked(it.ID, checked)
	m.updateProgress()
	m.log.Debug("item toggled", "item", it.ID, "checked", checked)

	if err := m.config.Save(); err != nil {
		m.log.Error("failed to save checklist state", "error", err)
		return m.ShowFlashError("Could not save: " + err.Error())
	}

	if checked && m.allChecked() {
		return tea.Batch(m.ShowFlashSuccess(m.text(i18n.KeyAllDone, allDoneText)), m.notifyComplete())
	}
	return nil
}

// notifyComplete sends the desktop notification off the event loop.
func (m *Model) notifyComplete() tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	notify, log := m.notify, m.log
	title := m.header.Title()
	message := m.text(i18n.KeyAllDone, allDoneText)
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			log.Warn("completion notification failed", "error", err)
		}
		return nil
	}
}

// openSelected opens the dialog of the item under the cursor. Items without
// a dialog do nothing.
func (m *Model) openSelected() tea.Cmd {
	it, ok := m.checklist.Selected()
	if !ok {
		return nil
	}
	for _, di := range m.doc.Items {
		if di.ID == it.ID && di.DialogID != "" {
			return m.openDialog(di.DialogID)
		}
	}
	return nil
}

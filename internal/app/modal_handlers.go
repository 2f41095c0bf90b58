package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/keys"
	"github.com/zhubert/readthrough/internal/ui"
	"github.com/zhubert/readthrough/internal/ui/modals"
)

// handleModalKey routes keys to the visible modal. Enter and Escape are
// decided here; everything else goes to the modal's form or list.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.LanguageState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			m.modal.Hide()
			if s.Changed() {
				return m, m.SetLanguage(s.Selected())
			}
			return m, nil
		}

	case *modals.SettingsState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			m.modal.Hide()
			return m, m.applySettings(s)
		}

	case *modals.HelpState:
		if s.IsFiltering() {
			break
		}
		switch key {
		case keys.Escape, "q", "?":
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			sel := s.Selected()
			m.modal.Hide()
			if sel != nil {
				return m.runShortcut(sel.Key)
			}
			return m, nil
		}
	}

	_, cmd := m.modal.Update(msg)
	return m, cmd
}

func (m *Model) showLanguageModal() {
	var options []modals.LanguageOption
	for _, code := range m.catalog.Languages() {
		options = append(options, modals.LanguageOption{Code: code, Name: i18n.Name(code)})
	}
	m.modal.Show(modals.NewLanguageState(options, m.lang))
}

func (m *Model) showSettingsModal() {
	var themes, names []string
	for _, t := range ui.ThemeNames() {
		themes = append(themes, string(t))
		names = append(names, ui.GetTheme(t).Name)
	}
	m.modal.Show(modals.NewSettingsState(themes, names, string(ui.CurrentThemeName()), m.config.GetNotificationsEnabled()))
}

// SetLanguage switches the interface language, re-translates every view and
// persists the choice.
func (m *Model) SetLanguage(lang string) tea.Cmd {
	m.lang = lang
	m.dialogs.SetLanguage(lang)
	m.checklist.SetRTL(i18n.IsRTL(lang))
	m.refreshContent()
	m.layout(m.ctx.TerminalWidth, m.ctx.TerminalHeight)
	m.observeOpen()
	m.log.Info("language changed", "lang", lang)

	m.config.SetLanguage(lang)
	if err := m.config.Save(); err != nil {
		m.log.Error("failed to save language", "error", err)
		return m.ShowFlashError("Could not save: " + err.Error())
	}
	return m.ShowFlashInfo(m.text(i18n.KeyLanguage, "Language") + ": " + i18n.Name(lang))
}

func (m *Model) applySettings(s *modals.SettingsState) tea.Cmd {
	if s.Theme != s.OriginalTheme {
		ui.SetThemeByName(s.Theme)
		m.config.SetTheme(s.Theme)
	}
	m.config.SetNotificationsEnabled(s.NotificationsEnabled)

	if err := m.config.Save(); err != nil {
		m.log.Error("failed to save settings", "error", err)
		return m.ShowFlashError("Could not save: " + err.Error())
	}
	return m.ShowFlashSuccess("Settings saved")
}

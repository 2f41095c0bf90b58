package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// SettingsState edits the theme and notification preference.
type SettingsState struct {
	OriginalTheme        string
	Theme                string
	NotificationsEnabled bool

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.form.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// NewSettingsState builds the settings form. themes and names are parallel.
func NewSettingsState(themes, names []string, currentTheme string, notifications bool) *SettingsState {
	s := &SettingsState{
		OriginalTheme:        currentTheme,
		Theme:                currentTheme,
		NotificationsEnabled: notifications,
	}

	opts := make([]huh.Option[string], len(themes))
	for i := range themes {
		opts[i] = huh.NewOption(names[i], themes[i])
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(opts...).
			Value(&s.Theme),
		huh.NewConfirm().
			Title("Notify when the checklist is complete").
			Affirmative("On").
			Negative("Off").
			Value(&s.NotificationsEnabled),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// LanguageOption is one entry of the language picker.
type LanguageOption struct {
	Code string
	Name string
}

// LanguageState picks the interface language with a huh select.
type LanguageState struct {
	Original string
	selected string
	form     *huh.Form
}

func (*LanguageState) modalState() {}

func (s *LanguageState) Title() string { return "Language" }

func (s *LanguageState) Help() string { return "↑/↓: choose  Enter: apply  Esc: cancel" }

func (s *LanguageState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.form.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *LanguageState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted language code.
func (s *LanguageState) Selected() string { return s.selected }

// Changed reports whether the selection differs from the language in use.
func (s *LanguageState) Changed() bool { return s.selected != s.Original }

// NewLanguageState builds the picker with current preselected.
func NewLanguageState(options []LanguageOption, current string) *LanguageState {
	s := &LanguageState{Original: current, selected: current}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Name+" ("+o.Code+")", o.Code)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Options(opts...).
			Height(min(len(opts)+1, 10)).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	return s
}

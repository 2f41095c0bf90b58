package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Checklist",
			Shortcuts: []HelpShortcut{
				{Key: "enter", Desc: "open item"},
				{Key: "space", Desc: "toggle"},
			},
		},
		{
			Title: "Dialog",
			Shortcuts: []HelpShortcut{
				{Key: "esc", Desc: "close"},
			},
		},
	}
}

func TestHelpState_StartsOnShortcut(t *testing.T) {
	state := NewHelpState(testSections())

	sel := state.Selected()
	if sel == nil {
		t.Fatal("expected a shortcut to be selected initially")
	}
	if sel.Key != "enter" {
		t.Errorf("expected first shortcut 'enter', got %q", sel.Key)
	}
}

func TestHelpState_Render(t *testing.T) {
	state := NewHelpState(testSections())
	state.SetSize(50, 20)

	out := state.Render()
	for _, want := range []string{"Keyboard Shortcuts", "Checklist", "open item"} {
		if !strings.Contains(out, want) {
			t.Errorf("render should contain %q", want)
		}
	}
	if state.IsFiltering() {
		t.Error("should not be filtering initially")
	}
	if state.Help() == "" {
		t.Error("help text should not be empty")
	}
}

func TestHelpState_Navigate(t *testing.T) {
	state := NewHelpState(testSections())

	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel := state.Selected()
	if sel == nil || sel.Key != "space" {
		t.Errorf("expected 'space' after moving down, got %v", sel)
	}
}

func TestLanguageState(t *testing.T) {
	opts := []LanguageOption{
		{Code: "en", Name: "English"},
		{Code: "is", Name: "Íslenska"},
	}
	state := NewLanguageState(opts, "is")

	if state.Selected() != "is" {
		t.Errorf("Selected() = %q, want is", state.Selected())
	}
	if state.Changed() {
		t.Error("new picker should not report a change")
	}
	if !strings.Contains(state.Render(), "Language") {
		t.Error("render should contain the title")
	}

	// Enter and Escape are left for the app
	_, cmd := state.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter should not be handled by the form")
	}
	if state.Selected() != "is" {
		t.Error("enter should not change the selection")
	}
}

func TestSettingsState(t *testing.T) {
	state := NewSettingsState(
		[]string{"dark-purple", "nord"},
		[]string{"Dark Purple", "Nord"},
		"nord", true,
	)

	if state.Theme != "nord" || state.OriginalTheme != "nord" {
		t.Errorf("theme = %q, original = %q", state.Theme, state.OriginalTheme)
	}
	if !state.NotificationsEnabled {
		t.Error("notifications should start enabled")
	}
	out := state.Render()
	if !strings.Contains(out, "Settings") || !strings.Contains(out, "Theme") {
		t.Error("render should contain title and theme field")
	}

	_, cmd := state.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("escape should not be handled by the form")
	}
}

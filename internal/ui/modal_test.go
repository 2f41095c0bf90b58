package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/readthrough/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}
	if m.View(80, 24) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(modals.NewHelpState([]modals.HelpSection{{
		Title:     "General",
		Shortcuts: []modals.HelpShortcut{{Key: "q", Desc: "quit"}},
	}}))
	if !m.IsVisible() {
		t.Fatal("modal should be visible after Show")
	}

	m.SetError("boom")
	plain := ansi.Strip(m.View(80, 24))
	if !strings.Contains(plain, "Keyboard Shortcuts") || !strings.Contains(plain, "boom") {
		t.Errorf("modal view missing content: %q", plain)
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(60)
	h.SetTitle("Digital safety")
	h.SetLanguage("Íslenska")
	h.SetProgress(2, 5)

	out := h.View()
	plain := ansi.Strip(out)

	if !strings.Contains(plain, "Digital safety") {
		t.Errorf("header should contain the title, got %q", plain)
	}
	if !strings.Contains(plain, "Íslenska") || !strings.Contains(plain, "2/5") {
		t.Errorf("header should contain language and progress, got %q", plain)
	}
	if w := ansi.StringWidth(out); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
}

func TestHeader_NarrowDropsTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(20)
	h.SetTitle("A rather long checklist title")
	h.SetLanguage("English")
	h.SetProgress(0, 3)

	plain := ansi.Strip(h.View())
	if strings.Contains(plain, "checklist") {
		t.Error("title should be dropped when it does not fit")
	}
	if !strings.Contains(plain, "0/3") {
		t.Error("progress should always be shown")
	}
}

func TestHeader_Empty(t *testing.T) {
	h := NewHeader()
	if h.renderGradient("", 0) != "" {
		t.Error("empty content should render empty")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bogus", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d", tt.in, r, g, b)
		}
	}
}

package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which bindings the footer shows.
type FooterMode int

const (
	FooterList FooterMode = iota
	FooterDialog
	FooterPrompt
	FooterModal
)

// FlashType is the severity of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays up.
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a temporary footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	Duration  time.Duration
	CreatedAt time.Time
}

// IsExpired reports whether the message has been shown long enough.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg asks the footer to check whether its flash expired
type FlashTickMsg time.Time

// FlashTick returns a command that sends a flash tick
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode chooses the bindings to show
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		Duration:  d,
		CreatedAt: time.Now(),
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the bindings for the current mode.
func (f *Footer) Bindings() []KeyBinding {
	switch f.mode {
	case FooterDialog:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "n", Desc: "next"},
			{Key: "x", Desc: "close"},
			{Key: "y", Desc: "copy"},
			{Key: "esc", Desc: "close"},
		}
	case FooterPrompt:
		return []KeyBinding{
			{Key: "c", Desc: "continue"},
			{Key: "a", Desc: "close anyway"},
			{Key: "←/→", Desc: "switch"},
			{Key: "enter", Desc: "choose"},
		}
	case FooterModal:
		return []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
	default:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "move"},
			{Key: "enter", Desc: "open"},
			{Key: "space", Desc: "check"},
			{Key: "L", Desc: "language"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.fit(renderFlash(f.flashMessage)))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+FooterSepStyle.Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(f.fit(content))
}

// fit keeps the footer on one line; bindings past the edge are cut.
func (f *Footer) fit(s string) string {
	if f.width <= 0 {
		return s
	}
	return ansi.Truncate(s, max(0, f.width-FooterStyle.GetHorizontalFrameSize()), "…")
}

func renderFlash(m *FlashMessage) string {
	switch m.Type {
	case FlashError:
		return StatusErrorStyle.Render("✕ " + m.Text)
	case FlashWarning:
		return PromptWarningStyle.Render("⚠ " + m.Text)
	case FlashSuccess:
		return CheckboxDoneStyle.Render("✓ " + m.Text)
	default:
		return HintStyle.Render("ℹ " + m.Text)
	}
}

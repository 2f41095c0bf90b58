package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// Header represents the top header bar
type Header struct {
	width    int
	title    string
	language string
	done     int
	total    int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the document title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// Title returns the document title
func (h *Header) Title() string {
	return h.title
}

// Progress returns the checked and total item counts
func (h *Header) Progress() (done, total int) {
	return h.done, h.total
}

// SetLanguage sets the language label shown on the right
func (h *Header) SetLanguage(label string) {
	h.language = label
}

// SetProgress sets the checked and total item counts
func (h *Header) SetProgress(done, total int) {
	h.done = done
	h.total = total
}

// View renders the header
func (h *Header) View() string {
	left := " " + h.title
	right := fmt.Sprintf("%s  %d/%d ", h.language, h.done, h.total)

	// Drop the title before the progress when the terminal is narrow
	if uniseg.StringWidth(left)+uniseg.StringWidth(right) > h.width {
		left = ""
	}

	paddingLen := max(0, h.width-uniseg.StringWidth(left)-uniseg.StringWidth(right))
	return h.renderGradient(left+strings.Repeat(" ", paddingLen)+right, uniseg.GraphemeClusterCount(left))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient draws content over a background fading from the primary
// color to the main background. The first boldCount clusters are bold.
func (h *Header) renderGradient(content string, boldCount int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	// Step per grapheme cluster so combining marks and wide runes keep
	// their background
	total := uniseg.GraphemeClusterCount(content)
	var result strings.Builder
	gr := uniseg.NewGraphemes(content)
	for i := 0; gr.Next(); i++ {
		t := float64(i) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldCount)

		result.WriteString(style.Render(gr.Str()))
	}

	return result.String()
}

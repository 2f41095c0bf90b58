package ui

import (
	"github.com/zhubert/readthrough/internal/logger"
)

// Smallest terminal the layout is computed for
const (
	MinTerminalWidth  = 30
	MinTerminalHeight = 12
)

// ViewContext holds the layout derived from the terminal size. All size
// calculations go through it so the view and mouse hit testing agree.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	// ContentTop is the first line below the header
	ContentTop    int
	ContentHeight int
}

// NewViewContext computes the layout for a terminal of the given size.
func NewViewContext(width, height int) ViewContext {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v := ViewContext{
		TerminalWidth:  width,
		TerminalHeight: height,
		ContentTop:     HeaderHeight,
		ContentHeight:  height - HeaderHeight - FooterHeight,
	}

	logger.ComponentLogger("ui").Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
	return v
}

// InContent reports whether screen line y is in the content area.
func (v ViewContext) InContent(y int) bool {
	return y >= v.ContentTop && y < v.ContentTop+v.ContentHeight
}

// ListWidth is the checklist width: full width on narrow terminals, capped
// on wide ones.
func (v ViewContext) ListWidth() int {
	return min(v.TerminalWidth, DialogMaxWidth+BorderSize*2)
}

// ListLeft is the column where the centered checklist starts.
func (v ViewContext) ListLeft() int {
	return (v.TerminalWidth - v.ListWidth()) / 2
}

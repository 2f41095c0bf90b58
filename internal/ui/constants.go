package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// DialogPaddingX is the horizontal padding inside the dialog border, per side
	DialogPaddingX = 1

	// DialogChromeLines is the number of lines inside the dialog border that
	// are not the scrolling body: title, separator and two status lines
	DialogChromeLines = 4

	// DialogMaxWidth caps the dialog on wide terminals so lines stay readable
	DialogMaxWidth = 76

	// DialogMargin is the space kept around the dialog on each side
	DialogMargin = 2

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Scrolling in lines. The disclosure core is unit agnostic; these are the
// terminal equivalents of its slack and continue-reading step.
const (
	// LineSlack is how many lines from the end still count as the bottom
	LineSlack = 1

	// LineScrollStep is how far Continue Reading and the hint scroll
	LineScrollStep = 10

	// MouseWheelDelta is lines scrolled per wheel notch
	MouseWheelDelta = 3
)

// Timing
const (
	// LayoutSettleDelay is how long after opening a dialog its scroll
	// position is measured again
	LayoutSettleDelay = 100 * time.Millisecond

	// AnimationFPS drives the smooth scroll spring
	AnimationFPS = 60
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// HelpModalMaxVisible is how many help rows are shown before scrolling
	HelpModalMaxVisible = 16
)

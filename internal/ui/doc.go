// Package ui renders readthrough in the terminal.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): title, language, progress          │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Checklist, or the active dialog centered over it  │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line): key hints or a flash message       │
//	└─────────────────────────────────────────────────────┘
//
// # Dialogs
//
// DialogView wraps a bubbles viewport and implements dialog.Surface, so the
// disclosure core sees the body in lines: Offset is the viewport's top line,
// Content the wrapped line count and Viewport the visible height. Programmatic
// scrolls (Continue Reading, the scroll hint) animate with a harmonica spring
// and report every intermediate offset back through AnimTickMsg.
//
// DialogView only draws what the controller decides. Hint visibility, the
// warning prompt and pulse emphasis are pushed in by the app before View.
//
// # Hit testing
//
// The app places the active dialog with Layout and uses Rect values from
// Bounds, CloseButtonBounds, HintBounds and ButtonBounds to turn mouse clicks
// into close-button, outside-click and prompt events.
package ui

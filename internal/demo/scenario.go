// Package demo plays scripted sessions against the checklist UI and captures
// the rendered frames. Scenarios run without a terminal, so recordings are
// deterministic and can be regenerated whenever the UI changes.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/readthrough/internal/document"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepClick sends a left click at a screen cell.
	StepClick
	// StepWheel scrolls the mouse wheel at a screen cell.
	StepWheel
	// StepResize changes the terminal size.
	StepResize
	// StepSettle finishes pending layout and scroll animation of the open
	// dialog, capturing the animation as it goes.
	StepSettle
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

var stepNames = map[StepType]string{
	StepWait:     "wait",
	StepKey:      "key",
	StepClick:    "click",
	StepWheel:    "wheel",
	StepResize:   "resize",
	StepSettle:   "settle",
	StepCapture:  "capture",
	StepAnnotate: "annotate",
}

func (t StepType) String() string {
	if name, ok := stepNames[t]; ok {
		return name
	}
	return "unknown"
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepClick and StepWheel
	X, Y int
	Up   bool // wheel direction

	// For StepResize
	Width, Height int

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int    // Terminal width (default 100)
	Height      int    // Terminal height (default 30)
	Language    string // Interface language (default "en")

	// Document is the checklist shown; the built-in one when nil.
	Document *document.Document
	// Checked lists item ids that start out checked.
	Checked []string

	Steps []Step
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	if s.Language == "" {
		s.Language = "en"
	}
	if s.Document == nil {
		s.Document = document.Default()
	}
	for i, step := range s.Steps {
		if step.Type == StepResize && (step.Width <= 0 || step.Height <= 0) {
			return &ValidationError{Field: "Steps", Message: fmt.Sprintf("resize step %d needs a positive size", i)}
		}
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: "Steps", Message: fmt.Sprintf("key step %d has no key", i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Repeat presses key n times.
func Repeat(key string, n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Key(key)
	}
	return steps
}

// Click creates a left click step.
func Click(x, y int) Step {
	return Step{Type: StepClick, X: x, Y: y}
}

// WheelDown creates a wheel step scrolling towards the end.
func WheelDown(x, y int) Step {
	return Step{Type: StepWheel, X: x, Y: y}
}

// WheelUp creates a wheel step scrolling towards the start.
func WheelUp(x, y int) Step {
	return Step{Type: StepWheel, X: x, Y: y, Up: true}
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{Type: StepResize, Width: width, Height: height}
}

// Settle finishes layout and animation of the open dialog.
func Settle() Step {
	return Step{Type: StepSettle}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}

// Steps flattens single steps and step groups into one script.
func Steps(parts ...any) []Step {
	var out []Step
	for _, p := range parts {
		switch v := p.(type) {
		case Step:
			out = append(out, v)
		case []Step:
			out = append(out, v...)
		}
	}
	return out
}

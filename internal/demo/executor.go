package demo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/app"
	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/keys"
	"github.com/zhubert/readthrough/internal/logger"
	"github.com/zhubert/readthrough/internal/ui"
)

// maxAnimFrames bounds a settle step in case an animation never converges.
const maxAnimFrames = 1000

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every input step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses and clicks (default: 150ms)
	KeyDelay time.Duration

	// AnimFrameEvery captures one frame per this many animation ticks (default: 3)
	AnimFrameEvery int

	// Catalog translates the UI; the built-in catalog when nil.
	Catalog *i18n.Catalog
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		KeyDelay:         150 * time.Millisecond,
		AnimFrameEvery:   3,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string

	// stateDir holds the throwaway config the scenario writes to
	stateDir string

	// Side effects the scenario triggered instead of touching the desktop
	copied   []string
	notified []string

	log *slog.Logger
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.AnimFrameEvery <= 0 {
		cfg.AnimFrameEvery = 1
	}
	if cfg.Catalog == nil {
		cfg.Catalog = i18n.New()
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
		log:    logger.ComponentLogger("demo"),
	}
}

// Cleanup removes the scenario's temporary state.
func (e *Executor) Cleanup() {
	if e.stateDir == "" {
		return
	}
	if err := os.RemoveAll(e.stateDir); err != nil {
		e.log.Warn("failed to remove demo state", "dir", e.stateDir, "error", err)
	}
	e.stateDir = ""
}

// Model returns the model driven by the last run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Copied returns the texts the scenario copied to the clipboard.
func (e *Executor) Copied() []string {
	return e.copied
}

// Notified returns the desktop notifications the scenario raised.
func (e *Executor) Notified() []string {
	return e.notified
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	e.log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "readthrough-demo-")
	if err != nil {
		return err
	}
	e.stateDir = dir
	e.frames = []Frame{}
	e.copied = nil
	e.notified = nil

	cfg := config.New(filepath.Join(dir, "config.json"))
	for _, id := range scenario.Checked {
		cfg.SetChecked(id, true)
	}

	e.model = app.New(cfg, scenario.Document, e.config.Catalog, app.Options{
		Version:  "demo",
		Language: scenario.Language,
		Notify: func(title, message string) error {
			e.notified = append(e.notified, title+": "+message)
			return nil
		},
		CopyText: func(text string) error {
			e.copied = append(e.copied, text)
			return nil
		},
	})

	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		e.captureInput(index)

	case StepClick:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.captureInput(index)

	case StepWheel:
		button := tea.MouseWheelDown
		if step.Up {
			button = tea.MouseWheelUp
		}
		e.update(tea.MouseWheelMsg{X: step.X, Y: step.Y, Button: button})
		e.captureInput(index)

	case StepResize:
		e.update(tea.WindowSizeMsg{Width: step.Width, Height: step.Height})
		e.captureFrame(index, e.config.KeyDelay)

	case StepSettle:
		if err := e.settle(index); err != nil {
			return err
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// settle delivers the one-shot layout re-measure to the dialog on top and
// plays its scroll animation to the end.
func (e *Executor) settle(stepIndex int) error {
	id, ok := e.model.Controller().ActiveID()
	if !ok {
		return nil
	}
	e.update(app.LayoutSettledMsg{ID: id})

	v, ok := e.model.DialogView(id)
	if !ok {
		return nil
	}
	frameDelay := time.Second / ui.AnimationFPS * time.Duration(e.config.AnimFrameEvery)
	for i := 1; v.Animating(); i++ {
		if i > maxAnimFrames {
			return fmt.Errorf("animation of %q did not settle", id)
		}
		e.update(ui.AnimTickMsg{ID: id})
		if i%e.config.AnimFrameEvery == 0 {
			e.captureFrame(stepIndex, frameDelay)
		}
	}
	e.captureFrame(stepIndex, frameDelay)
	return nil
}

func (e *Executor) captureInput(stepIndex int) {
	if e.config.CaptureEveryStep {
		e.captureFrame(stepIndex, e.config.KeyDelay)
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// update feeds msg to the model. Commands are dropped: timers are replaced
// by explicit settle steps so runs stay deterministic.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

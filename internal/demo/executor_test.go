package demo

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/document"
)

// testDocument has one dialog far taller than a 24 line terminal and one
// that fits.
func testDocument(t *testing.T) *document.Document {
	t.Helper()

	var body strings.Builder
	for i := range 40 {
		fmt.Fprintf(&body, "      Paragraph %d of the long dialog.\n\n", i)
	}
	doc, err := document.Parse([]byte(`
title: Demo list
items:
  - {id: long, title: Long item, dialog: long}
  - {id: short, title: Short item, dialog: short}
dialogs:
  - id: long
    title: Long dialog
    body: |
` + body.String() + `
  - {id: short, title: Short dialog, body: Just one line.}
`))
	if err != nil {
		t.Fatalf("test document: %v", err)
	}
	return doc
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}
	if cfg.KeyDelay != 150*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 150ms", cfg.KeyDelay)
	}
	if cfg.AnimFrameEvery != 3 {
		t.Errorf("AnimFrameEvery = %v, want 3", cfg.AnimFrameEvery)
	}
}

func TestExecutorRun(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Width:    80,
		Height:   24,
		Document: testDocument(t),
		Steps: []Step{
			Wait(100 * time.Millisecond),
			Key("down"),
			Wait(100 * time.Millisecond),
		},
	}

	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	executor := NewExecutor(cfg)
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// initial frame + wait + key + wait
	if len(frames) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(frames))
	}
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
	if frames[2].StepIndex != 1 {
		t.Errorf("key frame StepIndex = %d, want 1", frames[2].StepIndex)
	}
	if strings.Contains(frames[0].Content, "Loading") {
		t.Error("frames should be rendered at the scenario size")
	}
}

func TestExecutorRunInvalidScenario(t *testing.T) {
	executor := NewExecutor(DefaultExecutorConfig())
	_, err := executor.Run(&Scenario{})
	if err == nil {
		t.Fatal("Run() should fail for a scenario without a name")
	}
	if !strings.Contains(err.Error(), "invalid scenario") {
		t.Errorf("error = %v, want it to mention the invalid scenario", err)
	}
}

func TestExecutorNoCaptureEveryStep(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Document: testDocument(t),
		Steps: []Step{
			Key("down"),
			Key("up"),
			Capture(),
		},
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// initial frame + explicit capture
	if len(frames) != 2 {
		t.Errorf("Expected 2 frames, got %d", len(frames))
	}
}

func TestExecutorAnnotation(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Document: testDocument(t),
		Steps: []Step{
			Annotate("first"),
			Capture(),
			Capture(),
		},
	}

	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames[1].Annotation != "first" {
		t.Errorf("annotated frame = %q, want first", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Errorf("annotation should apply to one frame only, got %q", frames[2].Annotation)
	}
}

func TestExecutorReadsDialogToTheEnd(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Width:    80,
		Height:   24,
		Document: testDocument(t),
		Steps: Steps(
			Key("enter"),
			Settle(),
			Key("esc"),
		),
	}

	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	m := executor.Model()
	if id, ok := m.Controller().ActiveID(); !ok || id != "long" {
		t.Fatalf("closing unread dialog should be blocked, active = %q, %v", id, ok)
	}
	if !m.Controller().PromptVisible("long") {
		t.Error("blocked close should show the warning")
	}

	scenario.Steps = Steps(
		Key("enter"),
		Settle(),
		Key("c"),
		Settle(),
		Repeat("pgdown", 20),
		Settle(),
		Key("esc"),
	)
	executor = NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := executor.Model().Controller().ActiveID(); ok {
		t.Error("dialog read to the end should close")
	}
}

func TestExecutorSettleCapturesAnimation(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Width:    80,
		Height:   24,
		Document: testDocument(t),
		Steps: Steps(
			Key("enter"),
			Settle(),
			Key("n"),
			Settle(),
		),
	}

	cfg := DefaultExecutorConfig()
	cfg.AnimFrameEvery = 1
	frames, err := NewExecutor(cfg).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// initial + first settle + several animation frames + final settle frame
	if len(frames) < 4 {
		t.Errorf("expected animation frames, got %d frames", len(frames))
	}
	last := frames[len(frames)-1]
	if last.StepIndex != 3 {
		t.Errorf("last frame StepIndex = %d, want 3", last.StepIndex)
	}
}

func TestExecutorSettleWithoutDialog(t *testing.T) {
	scenario := &Scenario{Name: "test", Document: testDocument(t), Steps: []Step{Settle()}}
	frames, err := NewExecutor(DefaultExecutorConfig()).Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) != 1 {
		t.Errorf("settle with nothing open should not capture, got %d frames", len(frames))
	}
}

func TestExecutorResizeAndMouse(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Width:    80,
		Height:   24,
		Document: testDocument(t),
		Steps: Steps(
			Resize(100, 30),
			WheelDown(10, 10),
			Key("enter"),
			Settle(),
			Click(0, 0),
		),
	}

	executor := NewExecutor(DefaultExecutorConfig())
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) < 2 {
		t.Fatalf("expected the resize frame, got %d frames", len(frames))
	}
	if lines := strings.Count(frames[1].Content, "\n") + 1; lines != 30 {
		t.Errorf("resized frame has %d lines, want 30", lines)
	}

	// The wheel moved to the short item; it fits, so the click closes it.
	if _, ok := executor.Model().Controller().ActiveID(); ok {
		t.Error("click outside a fully visible dialog should close it")
	}
}

func TestExecutorCopy(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Document: testDocument(t),
		Steps:    Steps(Key("down"), Key("enter"), Key("y")),
	}

	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	copied := executor.Copied()
	if len(copied) != 1 || !strings.Contains(copied[0], "Just one line.") {
		t.Errorf("Copied() = %q, want the short dialog text", copied)
	}
}

func TestExecutorCleanup(t *testing.T) {
	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(&Scenario{Name: "test", Document: testDocument(t)}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if executor.stateDir != "" {
		t.Errorf("state dir %q should be removed after Run", executor.stateDir)
	}
}

func TestKeyPress(t *testing.T) {
	tests := []struct {
		key  string
		want tea.KeyPressMsg
	}{
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}},
		{"escape", tea.KeyPressMsg{Code: tea.KeyEscape}},
		{"pgdown", tea.KeyPressMsg{Code: tea.KeyPgDown}},
		{"shift+tab", tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}},
		{"space", tea.KeyPressMsg{Code: tea.KeySpace}},
		{"ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}},
		{"y", tea.KeyPressMsg{Code: 'y', Text: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := keyPress(tt.key)
			if got.Code != tt.want.Code || got.Mod != tt.want.Mod || got.Text != tt.want.Text {
				t.Errorf("keyPress(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

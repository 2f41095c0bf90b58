package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// clearScreen homes the cursor and wipes the screen before each frame.
const clearScreen = "\x1b[H\x1b[2J"

type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Annotations
// are emitted as markers so players can jump between them.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	return writeCast(w, frames, width, height, "", time.Time{})
}

// GenerateTitledCast is GenerateASCIICast with a title and recording time in
// the header.
func GenerateTitledCast(w io.Writer, frames []Frame, width, height int, title string, at time.Time) error {
	return writeCast(w, frames, width, height, title, at)
}

func writeCast(w io.Writer, frames []Frame, width, height int, title string, at time.Time) error {
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   title,
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if !at.IsZero() {
		header.Timestamp = at.Unix()
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("write cast header: %w", err)
	}

	var elapsed time.Duration
	for i, f := range frames {
		elapsed += f.Delay
		ts := elapsed.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{ts, "m", f.Annotation}); err != nil {
				return fmt.Errorf("write marker %d: %w", i, err)
			}
		}
		if err := enc.Encode([]any{ts, "o", clearScreen + toTerminal(f.Content)}); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}
	return nil
}

// toTerminal turns rendered lines into raw terminal output.
func toTerminal(content string) string {
	return strings.ReplaceAll(content, "\n", "\r\n")
}

// VHSConfig configures a generated VHS tape.
type VHSConfig struct {
	Output   string // rendered file, e.g. demo.gif
	Width    int    // terminal columns
	Height   int    // terminal rows
	FontSize int
	Theme    string
	Binary   string // command that starts the app
}

// DefaultVHSConfig returns the default VHS tape settings.
func DefaultVHSConfig() VHSConfig {
	return VHSConfig{
		Output:   "demo.gif",
		Width:    100,
		Height:   30,
		FontSize: 16,
		Theme:    "Catppuccin Mocha",
		Binary:   "readthrough",
	}
}

// GenerateVHSTape writes a VHS script that replays a scenario's key steps
// against the real binary. Only keys and pauses translate; mouse steps are
// skipped since VHS cannot send them.
func GenerateVHSTape(w io.Writer, scenario *Scenario, cfg VHSConfig) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Output %s\n\n", cfg.Output)
	fmt.Fprintf(&b, "Set FontSize %d\n", cfg.FontSize)
	// VHS sizes the window in pixels; approximate a cell as 0.6x by 1.3x the font size
	fmt.Fprintf(&b, "Set Width %d\n", cfg.Width*cfg.FontSize*6/10+40)
	fmt.Fprintf(&b, "Set Height %d\n", cfg.Height*cfg.FontSize*13/10+40)
	if cfg.Theme != "" {
		fmt.Fprintf(&b, "Set Theme %q\n", cfg.Theme)
	}
	b.WriteString("\n")

	launch := cfg.Binary
	if scenario.Language != "" {
		launch += " --lang " + scenario.Language
	}
	fmt.Fprintf(&b, "Type %q\nEnter\nSleep 1s\n\n", launch)

	for _, step := range scenario.Steps {
		switch step.Type {
		case StepKey:
			if line := vhsKey(step.Key); line != "" {
				b.WriteString(line + "\n")
				b.WriteString("Sleep 150ms\n")
			}
		case StepWait:
			fmt.Fprintf(&b, "Sleep %dms\n", step.Duration.Milliseconds())
		case StepSettle:
			b.WriteString("Sleep 500ms\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var vhsKeys = map[string]string{
	"enter":     "Enter",
	"esc":       "Escape",
	"escape":    "Escape",
	"tab":       "Tab",
	"shift+tab": "Shift+Tab",
	"space":     "Space",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"ctrl+c":    "Ctrl+C",
}

func vhsKey(key string) string {
	if k, ok := vhsKeys[key]; ok {
		return k
	}
	if len([]rune(key)) == 1 {
		return fmt.Sprintf("Type %q", key)
	}
	return ""
}

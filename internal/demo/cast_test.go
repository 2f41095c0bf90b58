package demo

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "one\ntwo", Delay: 500 * time.Millisecond},
		{Content: "three", Delay: time.Second, Annotation: "note"},
	}

	var b strings.Builder
	if err := GenerateASCIICast(&b, frames, 80, 24); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	sc := bufio.NewScanner(strings.NewReader(b.String()))
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	// header + frame + marker + frame
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), b.String())
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 {
		t.Errorf("header = %+v", header)
	}
	if header.Timestamp != 0 {
		t.Errorf("untitled cast should have no timestamp, got %d", header.Timestamp)
	}

	var first []any
	if err := json.Unmarshal([]byte(lines[1]), &first); err != nil {
		t.Fatalf("event: %v", err)
	}
	if first[0].(float64) != 0.5 || first[1] != "o" {
		t.Errorf("first event = %v", first)
	}
	if data := first[2].(string); !strings.HasPrefix(data, clearScreen) || !strings.Contains(data, "one\r\ntwo") {
		t.Errorf("first event data = %q", data)
	}

	var marker []any
	if err := json.Unmarshal([]byte(lines[2]), &marker); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if marker[0].(float64) != 1.5 || marker[1] != "m" || marker[2] != "note" {
		t.Errorf("marker = %v", marker)
	}
}

func TestGenerateTitledCast(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	var b strings.Builder
	if err := GenerateTitledCast(&b, nil, 100, 30, "basic", at); err != nil {
		t.Fatalf("GenerateTitledCast() error = %v", err)
	}

	var header castHeader
	if err := json.Unmarshal([]byte(strings.TrimSpace(b.String())), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Title != "basic" || header.Timestamp != at.Unix() {
		t.Errorf("header = %+v", header)
	}
}

func TestGenerateVHSTape(t *testing.T) {
	scenario := &Scenario{
		Name:     "test",
		Language: "ar",
		Steps: []Step{
			Key("enter"),
			Key("c"),
			Wait(250 * time.Millisecond),
			Click(1, 1),
			Settle(),
		},
	}

	cfg := DefaultVHSConfig()
	cfg.Output = "test.gif"

	var b strings.Builder
	if err := GenerateVHSTape(&b, scenario, cfg); err != nil {
		t.Fatalf("GenerateVHSTape() error = %v", err)
	}
	tape := b.String()

	for _, want := range []string{
		"Output test.gif",
		`Type "readthrough --lang ar"`,
		"\nEnter\n",
		`Type "c"`,
		"Sleep 250ms",
		"Sleep 500ms",
	} {
		if !strings.Contains(tape, want) {
			t.Errorf("tape missing %q:\n%s", want, tape)
		}
	}
}

func TestVHSKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"pgdown", "PageDown"},
		{"esc", "Escape"},
		{"x", `Type "x"`},
		{"ctrl+x", ""},
	}
	for _, tt := range tests {
		if got := vhsKey(tt.key); got != tt.want {
			t.Errorf("vhsKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

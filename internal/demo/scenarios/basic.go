// Package scenarios contains built-in demo scenarios for readthrough.
package scenarios

import (
	"time"

	"github.com/zhubert/readthrough/internal/demo"
)

// Basic walks through the checklist:
// - Ticking an item from the list
// - Opening the details of the next one
// - Trying to close it before reading to the end
// - Continuing to read, then closing once the end was seen
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Check items, read a dialog to the end, close it",
	Width:       100,
	Height:      30,
	Steps: demo.Steps(
		demo.Wait(1*time.Second),
		demo.Capture(),

		// Tick the first item
		demo.Annotate("Check off what you have done"),
		demo.KeyWithDesc("space", "Check the first item"),
		demo.Wait(600*time.Millisecond),

		// Open the second item
		demo.Key("down"),
		demo.Annotate("Open an item to read about it"),
		demo.KeyWithDesc("enter", "Open the dialog"),
		demo.Settle(),
		demo.Wait(1*time.Second),

		// Closing early shows the warning and pulses the hint
		demo.Annotate("Closing before the end asks first"),
		demo.KeyWithDesc("esc", "Try to close"),
		demo.Wait(1500*time.Millisecond),

		// Continue scrolls one step further
		demo.KeyWithDesc("c", "Continue reading"),
		demo.Settle(),
		demo.Wait(800*time.Millisecond),

		// Read to the end
		demo.Repeat("pgdown", 4),
		demo.Settle(),
		demo.Wait(800*time.Millisecond),

		// Now it closes right away
		demo.Annotate("Once read, it closes right away"),
		demo.KeyWithDesc("esc", "Close"),
		demo.Wait(1*time.Second),

		demo.KeyWithDesc("space", "Check the second item"),
		demo.Wait(1500*time.Millisecond),
	),
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Mouse,
		RightToLeft,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

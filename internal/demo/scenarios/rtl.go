package scenarios

import (
	"time"

	"github.com/zhubert/readthrough/internal/demo"
)

// RightToLeft runs the checklist in Arabic, where checkboxes and dialog
// text are laid out from the right.
var RightToLeft = &demo.Scenario{
	Name:        "rtl",
	Description: "The checklist in a right-to-left language",
	Width:       100,
	Height:      30,
	Language:    "ar",
	Steps: demo.Steps(
		demo.Wait(1*time.Second),
		demo.Key("space"),
		demo.Wait(500*time.Millisecond),
		demo.Key("enter"),
		demo.Settle(),
		demo.Wait(1*time.Second),
		demo.Key("esc"),
		demo.Wait(1500*time.Millisecond),
		demo.Key("a"),
		demo.Wait(1*time.Second),
	),
}

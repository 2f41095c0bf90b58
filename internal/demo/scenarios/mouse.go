package scenarios

import (
	"time"

	"github.com/zhubert/readthrough/internal/demo"
)

// Mouse shows the same flow with the mouse: wheel scrolling inside the
// dialog and clicking outside it to dismiss.
var Mouse = &demo.Scenario{
	Name:        "mouse",
	Description: "Scroll with the wheel, click outside to close",
	Width:       100,
	Height:      30,
	Checked:     []string{"passwords"},
	Steps: demo.Steps(
		demo.Wait(800*time.Millisecond),
		demo.Key("down"),
		demo.Key("enter"),
		demo.Settle(),
		demo.Wait(800*time.Millisecond),

		demo.Annotate("Clicking outside an unread dialog asks first"),
		demo.Click(2, 5),
		demo.Wait(1500*time.Millisecond),
		demo.KeyWithDesc("c", "Continue reading"),
		demo.Settle(),

		demo.Annotate("The wheel scrolls the dialog"),
		wheel(12),
		demo.Wait(800*time.Millisecond),
		demo.Capture(),

		demo.Click(2, 5),
		demo.Wait(1*time.Second),
	),
}

func wheel(n int) []demo.Step {
	steps := make([]demo.Step, n)
	for i := range steps {
		steps[i] = demo.WheelDown(50, 15)
	}
	return steps
}

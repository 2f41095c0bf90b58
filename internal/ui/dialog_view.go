package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/readthrough/internal/dialog"
	"github.com/zhubert/readthrough/internal/disclosure"
)

// AnimTickMsg advances the smooth scroll of one dialog
type AnimTickMsg struct {
	ID string
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Button identifies one of the warning prompt buttons.
type Button int

const (
	ButtonContinue Button = iota
	ButtonCloseAnyway
)

const (
	closeButtonText = "[x]"
	hintGlyph       = "▼"
)

// DialogView draws one dialog and exposes its scroll metrics in lines.
type DialogView struct {
	id    string
	title string
	body  string
	rtl   bool

	vp     viewport.Model
	innerW int
	rect   Rect

	spring    harmonica.Spring
	pos, vel  float64
	target    int
	animating bool

	// Pushed in by the app before View
	hint     bool
	pulsing  bool
	hintText string
	helpText string
	prompt   dialog.Prompt
	focus    Button
}

// NewDialogView creates a view for the dialog with the given id.
func NewDialogView(id, title, body string) *DialogView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = MouseWheelDelta

	return &DialogView{
		id:       id,
		title:    title,
		body:     body,
		vp:       vp,
		spring:   harmonica.NewSpring(harmonica.FPS(AnimationFPS), 6.0, 1.0),
		hintText: hintGlyph + " more",
	}
}

// ID returns the dialog id
func (d *DialogView) ID() string { return d.id }

// Title returns the displayed title
func (d *DialogView) Title() string { return d.title }

// SetContent replaces the title and body, for example after a language change.
// Call Layout afterwards to re-wrap.
func (d *DialogView) SetContent(title, body string, rtl bool) {
	d.title = title
	d.body = body
	d.rtl = rtl
}

// Layout sizes the dialog for a screen of the given width whose body area
// starts at line top and is height lines tall. The scroll offset is kept
// where possible.
func (d *DialogView) Layout(screenW, top, height int) {
	boxW := min(screenW-2*DialogMargin, DialogMaxWidth)
	boxW = max(boxW, BorderSize+2*DialogPaddingX+len(closeButtonText)+4)
	d.innerW = boxW - BorderSize - 2*DialogPaddingX

	rendered := RenderBody(d.body, d.innerW, d.rtl)
	lines := strings.Count(rendered, "\n") + 1

	maxVp := height - 2 - BorderSize - DialogChromeLines
	vpH := max(1, min(lines, maxVp))
	boxH := vpH + DialogChromeLines + BorderSize

	offset := d.vp.YOffset()
	d.vp.SetWidth(d.innerW)
	d.vp.SetHeight(vpH)
	d.vp.SetContent(rendered)
	d.vp.SetYOffset(offset)
	if d.target > d.maxOffset() {
		d.target = d.maxOffset()
	}

	d.rect = Rect{
		X: max(0, (screenW-boxW)/2),
		Y: top + max(0, (height-boxH)/2),
		W: boxW,
		H: boxH,
	}
}

// Metrics implements dialog.Surface.
func (d *DialogView) Metrics() disclosure.Metrics {
	return disclosure.Metrics{
		Offset:   d.vp.YOffset(),
		Content:  d.vp.TotalLineCount(),
		Viewport: d.vp.Height(),
	}
}

// ScrollBy implements dialog.Surface. The scroll is animated; the app must
// run AnimCmd to drive it.
func (d *DialogView) ScrollBy(delta int) {
	base := d.vp.YOffset()
	if d.animating {
		base = d.target
	} else {
		d.pos = float64(base)
		d.vel = 0
	}
	d.target = max(0, min(base+delta, d.maxOffset()))
	d.animating = d.target != d.vp.YOffset()
}

// Animating reports whether a smooth scroll is in progress.
func (d *DialogView) Animating() bool { return d.animating }

// AnimCmd schedules the next animation frame, or returns nil when idle.
func (d *DialogView) AnimCmd() tea.Cmd {
	if !d.animating {
		return nil
	}
	id := d.id
	return tea.Tick(time.Second/AnimationFPS, func(time.Time) tea.Msg {
		return AnimTickMsg{ID: id}
	})
}

// Step advances the spring by one frame and returns whether to keep going.
func (d *DialogView) Step() bool {
	if !d.animating {
		return false
	}
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, float64(d.target))
	off := int(math.Round(d.pos))
	if math.Abs(d.pos-float64(d.target)) < 0.5 && math.Abs(d.vel) < 0.5 {
		off = d.target
		d.animating = false
	}
	d.vp.SetYOffset(off)
	return d.animating
}

// FinishAnimation jumps to the animation target.
func (d *DialogView) FinishAnimation() {
	if d.animating {
		d.vp.SetYOffset(d.target)
		d.animating = false
	}
}

// Update forwards scroll keys and wheel events to the viewport. It reports
// whether the offset moved. User scrolling cancels any animation.
func (d *DialogView) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := d.vp.YOffset()
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	moved := d.vp.YOffset() != before
	if moved {
		d.animating = false
	}
	return moved, cmd
}

// GotoTop scrolls to the first line without animation.
func (d *DialogView) GotoTop() {
	d.animating = false
	d.vp.GotoTop()
}

// SetStatus updates what the status lines show.
func (d *DialogView) SetStatus(hint, pulsing bool, hintText, helpText string) {
	d.hint = hint
	d.pulsing = pulsing
	if hintText != "" {
		d.hintText = hintGlyph + " " + hintText
	}
	d.helpText = helpText
}

// SetPrompt updates the warning prompt. Focus returns to Continue when the
// prompt appears.
func (d *DialogView) SetPrompt(p dialog.Prompt) {
	if p.Visible && !d.prompt.Visible {
		d.focus = ButtonContinue
	}
	d.prompt = p
}

// PromptVisible reports whether the warning prompt is drawn.
func (d *DialogView) PromptVisible() bool { return d.prompt.Visible }

// Focus returns the focused prompt button.
func (d *DialogView) Focus() Button { return d.focus }

// ToggleFocus moves focus to the other prompt button.
func (d *DialogView) ToggleFocus() {
	if d.focus == ButtonContinue {
		d.focus = ButtonCloseAnyway
	} else {
		d.focus = ButtonContinue
	}
}

// PlainText returns the copyable title and body.
func (d *DialogView) PlainText() string {
	return PlainText(d.title, d.body)
}

func (d *DialogView) maxOffset() int {
	return max(0, d.vp.TotalLineCount()-d.vp.Height())
}

// Bounds is the full dialog box including the border.
func (d *DialogView) Bounds() Rect { return d.rect }

func (d *DialogView) innerX() int { return d.rect.X + 1 + DialogPaddingX }

func (d *DialogView) statusY() int { return d.rect.Y + 1 + 2 + d.vp.Height() }

// CloseButtonBounds is the [x] in the title line.
func (d *DialogView) CloseButtonBounds() Rect {
	return Rect{X: d.innerX() + d.innerW - len(closeButtonText), Y: d.rect.Y + 1, W: len(closeButtonText), H: 1}
}

// HintBounds is the scroll hint; zero when the hint is hidden. The hint
// stays on screen while the warning prompt is shown.
func (d *DialogView) HintBounds() Rect {
	if !d.hint {
		return Rect{}
	}
	return Rect{X: d.innerX(), Y: d.statusY(), W: ansi.StringWidth(d.hintText), H: 1}
}

// ButtonBounds is a prompt button; zero when the prompt is hidden.
func (d *DialogView) ButtonBounds(b Button) Rect {
	if !d.prompt.Visible {
		return Rect{}
	}
	cont := ansi.StringWidth(buttonLabel(d.prompt.Continue))
	r := Rect{X: d.innerX(), Y: d.statusY() + 1, W: cont, H: 1}
	if b == ButtonCloseAnyway {
		r.X += cont + 2
		r.W = ansi.StringWidth(buttonLabel(d.prompt.CloseAnyway))
	}
	return r
}

func buttonLabel(s string) string { return " " + s + " " }

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// View renders the dialog box. Layout must have been called.
func (d *DialogView) View() string {
	w := d.innerW
	lines := make([]string, 0, d.vp.Height()+DialogChromeLines)

	title := ansi.Truncate(d.title, w-len(closeButtonText)-1, "…")
	gap := w - ansi.StringWidth(title) - len(closeButtonText)
	lines = append(lines, DialogTitleStyle.Render(title)+strings.Repeat(" ", max(1, gap))+CloseButtonStyle.Render(closeButtonText))
	lines = append(lines, DialogSeparatorStyle.Render(strings.Repeat("─", w)))

	body := strings.Split(d.vp.View(), "\n")
	for i := 0; i < d.vp.Height(); i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, fit(line, w))
	}

	left := ""
	if d.hint {
		style := HintStyle
		if d.pulsing {
			style = HintPulseStyle
		}
		left = style.Render(d.hintText)
	}

	// The warning sits beside the hint; buttons replace the help line
	right := ""
	switch {
	case d.prompt.Visible:
		right = PromptWarningStyle.Render(d.prompt.Text)
	case d.vp.TotalLineCount() > d.vp.Height():
		right = DialogHelpStyle.Render(fmt.Sprintf("%3.f%%", d.vp.ScrollPercent()*100))
	}
	gap = w - ansi.StringWidth(left) - ansi.StringWidth(right)
	if left != "" && right != "" {
		gap = max(1, gap)
	}
	lines = append(lines, fit(left+strings.Repeat(" ", max(0, gap))+right, w))

	if d.prompt.Visible {
		cont, anyway := ButtonStyle, ButtonStyle
		if d.focus == ButtonContinue {
			cont = ButtonFocusedStyle
		} else {
			anyway = ButtonFocusedStyle
		}
		buttons := cont.Render(buttonLabel(d.prompt.Continue)) + "  " + anyway.Render(buttonLabel(d.prompt.CloseAnyway))
		lines = append(lines, fit(buttons, w))
	} else {
		lines = append(lines, fit(DialogHelpStyle.Render(d.helpText), w))
	}

	return DialogStyle.Render(strings.Join(lines, "\n"))
}

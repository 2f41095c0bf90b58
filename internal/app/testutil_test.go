package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/document"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/keys"
	"github.com/zhubert/readthrough/internal/ui"
)

// testConfig creates an empty config that saves into a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.New(filepath.Join(t.TempDir(), "config.json"))
}

// testDocument has a long dialog, a short one, an item with no dialog and
// an item pointing at a dialog that does not exist.
func testDocument(t *testing.T) *document.Document {
	t.Helper()

	var body strings.Builder
	for i := range 40 {
		fmt.Fprintf(&body, "      Line %d of the long dialog.\n\n", i)
	}
	doc, err := document.Parse([]byte(`
title: Test list
items:
  - {id: long, title: Long item, dialog: long}
  - {id: short, title: Short item, dialog: short}
  - {id: plain, title: Plain item}
  - {id: broken, title: Broken item, dialog: nowhere}
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

// notifyCall records one completion notification.
type notifyCall struct {
	title, message string
}

// testModel creates a Model with side effects captured.
func testModel(t *testing.T, cfg *config.Config) (*Model, *[]notifyCall, *[]string) {
	t.Helper()
	m := New(cfg, testDocument(t), i18n.New(), Options{Version: "0.0.0-test", Language: "en"})

	var notified []notifyCall
	var copied []string
	m.notify = func(title, message string) error {
		notified = append(notified, notifyCall{title, message})
		return nil
	}
	m.copyText = func(text string) error {
		copied = append(copied, text)
		return nil
	}
	return m, &notified, &copied
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) *Model {
	t.Helper()
	m, _, _ := testModel(t, testConfig(t))
	return setSize(m, width, height)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
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

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// click sends a left click at a screen position.
func click(m *Model, x, y int) *Model {
	result, _ := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return result.(*Model)
}

// settleAnimation drives the smooth scroll of id to its end.
func settleAnimation(t *testing.T, m *Model, id string) {
	t.Helper()
	v := m.views[id]
	for i := 0; v.Animating(); i++ {
		if i > 1000 {
			t.Fatal("animation did not settle")
		}
		m.Update(ui.AnimTickMsg{ID: id})
	}
}

// openLong moves to the long item and opens it.
func openLong(t *testing.T, m *Model) {
	t.Helper()
	m.checklist.Select(0)
	sendKey(m, keys.Enter)
	m.Update(LayoutSettledMsg{ID: "long"})
	if id, ok := m.dialogs.ActiveID(); !ok || id != "long" {
		t.Fatalf("active dialog = %q, %v; want long", id, ok)
	}
}

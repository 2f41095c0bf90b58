package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/keys"
	"github.com/zhubert/readthrough/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
type Shortcut struct {
	Keys        []string                            // Key strings that trigger it
	DisplayKey  string                              // Display name in help; defaults to the first key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform from the checklist
}

func (s Shortcut) matches(key string) bool {
	return slices.Contains(s.Keys, key)
}

func (s Shortcut) display() string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Keys[0]
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryChecklist = "Checklist"
	CategoryDialog    = "Dialog"
	CategoryPrompt    = "Unread warning"
	CategoryGeneral   = "General"
)

var categoryOrder = []string{
	CategoryChecklist,
	CategoryDialog,
	CategoryPrompt,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of checklist shortcuts. They are
// executed from key presses and from the help modal.
var ShortcutRegistry = []Shortcut{
	// Checklist
	{
		Keys:        []string{keys.Up, "k"},
		DisplayKey:  "↑/k",
		Description: "Previous item",
		Category:    CategoryChecklist,
		Handler:     shortcutUp,
	},
	{
		Keys:        []string{keys.Down, "j"},
		DisplayKey:  "↓/j",
		Description: "Next item",
		Category:    CategoryChecklist,
		Handler:     shortcutDown,
	},
	{
		Keys:        []string{keys.Space},
		DisplayKey:  "space",
		Description: "Check or uncheck item",
		Category:    CategoryChecklist,
		Handler:     shortcutToggle,
	},
	{
		Keys:        []string{keys.Enter},
		Description: "Open item details",
		Category:    CategoryChecklist,
		Handler:     shortcutOpen,
	},

	// General
	{
		Keys:        []string{"L"},
		Description: "Change language",
		Category:    CategoryGeneral,
		Handler:     shortcutLanguage,
	},
	{
		Keys:        []string{","},
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Keys:        []string{"q"},
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid an initialization cycle: its
// handler builds the help modal from ShortcutRegistry.
var helpShortcut = Shortcut{
	Keys:        []string{"?"},
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but handled by the dialog key
// handler, not from the checklist.
var DisplayOnlyShortcuts = []Shortcut{
	{Keys: []string{"pgup"}, DisplayKey: "↑/↓ PgUp/PgDn", Description: "Scroll", Category: CategoryDialog},
	{Keys: []string{"n"}, Description: "Scroll further", Category: CategoryDialog},
	{Keys: []string{"y"}, Description: "Copy to clipboard", Category: CategoryDialog},
	{Keys: []string{"x"}, DisplayKey: "x/Esc", Description: "Close", Category: CategoryDialog},
	{Keys: []string{"Mouse"}, DisplayKey: "Click outside", Description: "Close", Category: CategoryDialog},

	{Keys: []string{"c"}, Description: "Continue reading", Category: CategoryPrompt},
	{Keys: []string{"a"}, Description: "Close anyway", Category: CategoryPrompt},
	{Keys: []string{"left"}, DisplayKey: "←/→", Description: "Switch button", Category: CategoryPrompt},
}

// ExecuteShortcut runs the checklist shortcut bound to key. It returns false
// when no shortcut matches.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if helpShortcut.matches(key) {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}
	for _, s := range ShortcutRegistry {
		if s.Handler != nil && s.matches(key) {
			m.log.Debug("shortcut", "key", key)
			result, cmd := s.Handler(m)
			return result, cmd, true
		}
	}
	return m, nil, false
}

// helpSections groups the shortcuts for the help modal.
func helpSections() []modals.HelpSection {
	all := slices.Concat(ShortcutRegistry, []Shortcut{helpShortcut}, DisplayOnlyShortcuts)

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		section := modals.HelpSection{Title: cat}
		for _, s := range all {
			if s.Category == cat {
				section.Shortcuts = append(section.Shortcuts, modals.HelpShortcut{Key: s.display(), Desc: s.Description})
			}
		}
		if len(section.Shortcuts) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}

// runShortcut executes the registry entry shown as displayKey in help.
func (m *Model) runShortcut(displayKey string) (tea.Model, tea.Cmd) {
	for _, s := range ShortcutRegistry {
		if s.display() == displayKey && s.Handler != nil {
			return s.Handler(m)
		}
	}
	return m, nil
}

func shortcutUp(m *Model) (tea.Model, tea.Cmd) {
	m.checklist.MoveUp()
	return m, nil
}

func shortcutDown(m *Model) (tea.Model, tea.Cmd) {
	m.checklist.MoveDown()
	return m, nil
}

func shortcutToggle(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleSelected()
}

func shortcutOpen(m *Model) (tea.Model, tea.Cmd) {
	return m, m.openSelected()
}

func shortcutLanguage(m *Model) (tea.Model, tea.Cmd) {
	m.showLanguageModal()
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.showSettingsModal()
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpState(helpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

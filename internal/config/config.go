package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/zhubert/readthrough/internal/errors"
	"github.com/zhubert/readthrough/internal/i18n"
)

// HomeEnv overrides the directory holding config.json.
const HomeEnv = "READTHROUGH_HOME"

// Config holds the persisted user state
type Config struct {
	Language             string          `json:"language,omitempty"`
	Theme                string          `json:"theme,omitempty"`
	Checked              map[string]bool `json:"checked,omitempty"`
	NotificationsEnabled bool            `json:"notifications_enabled,omitempty"`
	DocumentPath         string          `json:"document_path,omitempty"` // Checklist loaded when --doc is not given

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".readthrough"), nil
}

// Path returns the default location of config.json.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns an empty config that saves to path.
func New(path string) *Config {
	return &Config{
		Checked:  make(map[string]bool),
		filePath: path,
	}
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~", err)
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Unmarshal replaces the map with nil when the key is null
	if cfg.Checked == nil {
		cfg.Checked = make(map[string]bool)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.Checked[""]; ok {
		return errors.ConfigInvalid("checked item with empty id")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath changes where Save writes. Used by tests and --config style overrides.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetLanguage returns the saved language, or the default when none is saved
func (c *Config) GetLanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Language == "" {
		return i18n.DefaultLanguage
	}
	return c.Language
}

func (c *Config) SetLanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Language = lang
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

func (c *Config) GetDocumentPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DocumentPath
}

func (c *Config) SetDocumentPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DocumentPath = path
}

// IsChecked reports whether the checklist item is ticked.
func (c *Config) IsChecked(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Checked[id]
}

// SetChecked ticks or unticks an item. Unticked items are removed from the
// map so the file only lists what is done.
func (c *Config) SetChecked(id string, checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Checked == nil {
		c.Checked = make(map[string]bool)
	}
	if checked {
		c.Checked[id] = true
	} else {
		delete(c.Checked, id)
	}
}

// ToggleChecked flips an item and returns its new value.
func (c *Config) ToggleChecked(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Checked == nil {
		c.Checked = make(map[string]bool)
	}
	if c.Checked[id] {
		delete(c.Checked, id)
		return false
	}
	c.Checked[id] = true
	return true
}

// CheckedCount returns how many of ids are ticked. Stale ids from an older
// document do not count.
func (c *Config) CheckedCount(ids []string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, id := range ids {
		if c.Checked[id] {
			n++
		}
	}
	return n
}

// CheckedIDs returns the ticked ids, sorted.
func (c *Config) CheckedIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.Checked))
	for id := range c.Checked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ClearChecked unticks everything and returns how many items were ticked.
func (c *Config) ClearChecked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.Checked)
	c.Checked = make(map[string]bool)
	return n
}

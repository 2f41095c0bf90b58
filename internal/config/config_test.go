package config

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/zhubert/readthrough/internal/errors"
	"github.com/zhubert/readthrough/internal/i18n"
)

func TestConfig_Checked(t *testing.T) {
	cfg := New("")

	if cfg.IsChecked("a") {
		t.Error("new config should have nothing checked")
	}

	cfg.SetChecked("a", true)
	cfg.SetChecked("b", true)
	if !cfg.IsChecked("a") || !cfg.IsChecked("b") {
		t.Error("SetChecked(true) should tick the item")
	}

	cfg.SetChecked("a", false)
	if cfg.IsChecked("a") {
		t.Error("SetChecked(false) should untick the item")
	}
	if _, ok := cfg.Checked["a"]; ok {
		t.Error("unticked items should be removed from the map")
	}

	if got := cfg.ToggleChecked("c"); !got {
		t.Error("ToggleChecked on an unticked item should return true")
	}
	if got := cfg.ToggleChecked("c"); got {
		t.Error("ToggleChecked on a ticked item should return false")
	}

	if got := cfg.CheckedIDs(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("CheckedIDs() = %v, want [b]", got)
	}
}

func TestConfig_CheckedCount(t *testing.T) {
	cfg := New("")
	cfg.SetChecked("a", true)
	cfg.SetChecked("b", true)
	cfg.SetChecked("stale", true)

	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{"all present", []string{"a", "b"}, 2},
		{"partial", []string{"a", "c"}, 1},
		{"none", []string{"x", "y"}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.CheckedCount(tt.ids); got != tt.want {
				t.Errorf("CheckedCount(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}

func TestConfig_ClearChecked(t *testing.T) {
	cfg := New("")
	cfg.SetChecked("a", true)
	cfg.SetChecked("b", true)

	if n := cfg.ClearChecked(); n != 2 {
		t.Errorf("ClearChecked() = %d, want 2", n)
	}
	if cfg.IsChecked("a") {
		t.Error("ClearChecked should untick everything")
	}
	if n := cfg.ClearChecked(); n != 0 {
		t.Errorf("second ClearChecked() = %d, want 0", n)
	}
}

func TestConfig_Language(t *testing.T) {
	cfg := New("")
	if got := cfg.GetLanguage(); got != i18n.DefaultLanguage {
		t.Errorf("GetLanguage() = %q, want default %q", got, i18n.DefaultLanguage)
	}
	cfg.SetLanguage("de")
	if got := cfg.GetLanguage(); got != "de" {
		t.Errorf("GetLanguage() = %q, want de", got)
	}
}

func TestConfig_Settings(t *testing.T) {
	cfg := New("")

	cfg.SetTheme("nord")
	if cfg.GetTheme() != "nord" {
		t.Errorf("GetTheme() = %q", cfg.GetTheme())
	}

	cfg.SetNotificationsEnabled(true)
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should be enabled")
	}

	cfg.SetDocumentPath("/tmp/doc.yaml")
	if cfg.GetDocumentPath() != "/tmp/doc.yaml" {
		t.Errorf("GetDocumentPath() = %q", cfg.GetDocumentPath())
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := New(path)
	cfg.SetLanguage("ar")
	cfg.SetChecked("passwords", true)
	cfg.SetNotificationsEnabled(true)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.GetLanguage() != "ar" {
		t.Errorf("language = %q, want ar", loaded.GetLanguage())
	}
	if !loaded.IsChecked("passwords") {
		t.Error("checked state should survive a round trip")
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("notifications setting should survive a round trip")
	}
	if loaded.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", loaded.FilePath(), path)
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg.Checked == nil {
		t.Error("Checked map should be initialized")
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		kind     errors.Kind
	}{
		{"malformed json", "{not json", errors.KindConfig},
		{"empty item id", `{"checked": {"": true}}`, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if !errors.Is(err, tt.kind) {
				t.Errorf("LoadFrom() error = %v, want kind %v", err, tt.kind)
			}
		})
	}
}

func TestLoadFrom_NullChecked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"checked": null}`), 0644)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetChecked("a", true)
	if !cfg.IsChecked("a") {
		t.Error("config with null map should still accept checks")
	}
}

func TestLoad_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)

	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "config.json"); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FilePath() != path {
		t.Errorf("Load() file path = %q, want %q", cfg.FilePath(), path)
	}
}

func TestSave_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	os.WriteFile(blocker, nil, 0644)

	cfg := New(filepath.Join(blocker, "config.json"))
	if err := cfg.Save(); !errors.Is(err, errors.KindConfig) {
		t.Errorf("Save() error = %v, want KindConfig", err)
	}
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	cfg := New("")
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			cfg.SetChecked(string(rune('a'+n)), true)
		}(i)
		go func() {
			defer wg.Done()
			_ = cfg.CheckedCount([]string{"a", "b", "c"})
			_ = cfg.GetLanguage()
		}()
	}
	wg.Wait()

	if got := len(cfg.CheckedIDs()); got != 10 {
		t.Errorf("expected 10 checked ids, got %d", got)
	}
}

// Package i18n is a key→string translation lookup keyed by language code.
// Built-in catalogs can be extended or overridden from a YAML file.
package i18n

import (
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/readthrough/internal/errors"
)

// DefaultLanguage is used when no language has been chosen yet.
const DefaultLanguage = "is"

// Keys used by the dialog gate and the chrome around it.
const (
	KeyScrollWarning   = "scrollWarning"
	KeyWarningContinue = "warningContinue"
	KeyWarningClose    = "warningClose"
	KeyScrollHint      = "scrollHint"
	KeyProgress        = "progress"
	KeyLanguage        = "language"
	KeyCopied          = "copied"
	KeyAllDone         = "allDone"
)

// Catalog holds translations per language. It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	langs map[string]map[string]string
}

// New returns a catalog preloaded with the built-in languages.
func New() *Catalog {
	c := &Catalog{langs: make(map[string]map[string]string)}
	for lang, table := range builtin {
		c.Merge(lang, table)
	}
	return c
}

// Lookup returns the translation of key in lang. The second result is false
// when either the language or the key is missing.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, ok := c.langs[lang]
	if !ok {
		return "", false
	}
	s, ok := table[key]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Text looks up key and falls back to def when it is missing.
func (c *Catalog) Text(lang, key, def string) string {
	if s, ok := c.Lookup(lang, key); ok {
		return s
	}
	return def
}

// Merge adds or overrides entries for lang.
func (c *Catalog) Merge(lang string, entries map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.langs[lang]
	if !ok {
		table = make(map[string]string, len(entries))
		c.langs[lang] = table
	}
	for k, v := range entries {
		table[k] = v
	}
}

// HasLanguage reports whether lang has any entries.
func (c *Catalog) HasLanguage(lang string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.langs[lang]
	return ok
}

// Languages returns the known language codes, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.langs))
	for lang := range c.langs {
		out = append(out, lang)
	}
	slices.Sort(out)
	return out
}

// LoadFile merges a YAML file of the form
//
//	en:
//	  scrollWarning: "..."
//	is:
//	  scrollWarning: "..."
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.E(errors.Op("i18n.LoadFile"), errors.KindIO, err)
	}
	var parsed map[string]map[string]string
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.TranslationsParseFailed(path, err)
	}
	for lang, entries := range parsed {
		c.Merge(lang, entries)
	}
	return nil
}

// IsRTL reports whether lang is written right to left.
func IsRTL(lang string) bool {
	return lang == "ar" || lang == "fa"
}

// Name returns the native name of a language code, or the code itself.
func Name(lang string) string {
	if n, ok := names[lang]; ok {
		return n
	}
	return lang
}

var names = map[string]string{
	"en": "English",
	"is": "Íslenska",
	"de": "Deutsch",
	"ar": "العربية",
	"fa": "فارسی",
}

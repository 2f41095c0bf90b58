// Package document loads the checklist shown by readthrough: a list of items,
// each pointing at a dialog with longer content.
package document

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/readthrough/internal/errors"
)

//go:embed default.yaml
var defaultYAML []byte

// Item is one row of the checklist.
type Item struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	TitleKey string `yaml:"title_key,omitempty"`
	DialogID string `yaml:"dialog,omitempty"`
}

// Dialog is the detail content disclosed from an item.
type Dialog struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	TitleKey string `yaml:"title_key,omitempty"`
	Body     string `yaml:"body"`
	BodyKey  string `yaml:"body_key,omitempty"`
}

// Document is a whole checklist.
type Document struct {
	Title    string   `yaml:"title"`
	TitleKey string   `yaml:"title_key,omitempty"`
	Items    []Item   `yaml:"items"`
	Dialogs  []Dialog `yaml:"dialogs"`
}

// Default returns the checklist compiled into the binary.
func Default() *Document {
	doc, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded document is invalid: %v", err))
	}
	return doc
}

// Load reads and validates a checklist file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E(errors.Op("document.Load"), errors.KindIO, err)
	}
	doc, err := Parse(data)
	if err != nil {
		if errors.Is(err, errors.KindInvalid) {
			return nil, err
		}
		return nil, errors.DocumentParseFailed(path, err)
	}
	return doc, nil
}

// Parse decodes and validates YAML checklist data.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks ids are present and unique. Items that point at a dialog
// that does not exist are allowed; see DanglingReferences.
func (d *Document) Validate() error {
	if len(d.Items) == 0 {
		return errors.DocumentInvalid("document has no items")
	}
	seen := make(map[string]bool)
	for _, it := range d.Items {
		if it.ID == "" {
			return errors.DocumentInvalid("item with empty id")
		}
		if seen[it.ID] {
			return errors.DocumentInvalid("duplicate item id: " + it.ID)
		}
		seen[it.ID] = true
	}
	seen = make(map[string]bool)
	for _, dl := range d.Dialogs {
		if dl.ID == "" {
			return errors.DocumentInvalid("dialog with empty id")
		}
		if seen[dl.ID] {
			return errors.DocumentInvalid("duplicate dialog id: " + dl.ID)
		}
		seen[dl.ID] = true
	}
	return nil
}

// Dialog returns the dialog with the given id.
func (d *Document) Dialog(id string) (Dialog, bool) {
	for _, dl := range d.Dialogs {
		if dl.ID == id {
			return dl, true
		}
	}
	return Dialog{}, false
}

// DanglingReferences returns the ids of items whose dialog does not exist.
func (d *Document) DanglingReferences() []string {
	var out []string
	for _, it := range d.Items {
		if it.DialogID == "" {
			continue
		}
		if _, ok := d.Dialog(it.DialogID); !ok {
			out = append(out, it.ID)
		}
	}
	return out
}

// ItemIDs returns the item ids in order.
func (d *Document) ItemIDs() []string {
	ids := make([]string, len(d.Items))
	for i, it := range d.Items {
		ids[i] = it.ID
	}
	return ids
}

package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ChecklistItem is one row as the checklist draws it.
type ChecklistItem struct {
	ID        string
	Title     string
	Checked   bool
	HasDialog bool
}

// Checklist is the scrollable list of items with a cursor.
type Checklist struct {
	items  []ChecklistItem
	cursor int
	offset int
	width  int
	height int
	rtl    bool
}

// NewChecklist creates an empty checklist
func NewChecklist() *Checklist {
	return &Checklist{}
}

// SetItems replaces the rows, keeping the cursor in range.
func (c *Checklist) SetItems(items []ChecklistItem) {
	c.items = items
	if c.cursor >= len(items) {
		c.cursor = max(0, len(items)-1)
	}
	c.clampOffset()
}

// Items returns the rows
func (c *Checklist) Items() []ChecklistItem { return c.items }

// SetSize sets the area available to the list
func (c *Checklist) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.clampOffset()
}

// SetRTL right-aligns rows
func (c *Checklist) SetRTL(rtl bool) { c.rtl = rtl }

// Cursor returns the index of the selected row
func (c *Checklist) Cursor() int { return c.cursor }

// Selected returns the row under the cursor.
func (c *Checklist) Selected() (ChecklistItem, bool) {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		return ChecklistItem{}, false
	}
	return c.items[c.cursor], true
}

// MoveUp moves the cursor up, stopping at the first row
func (c *Checklist) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
		c.clampOffset()
	}
}

// MoveDown moves the cursor down, stopping at the last row
func (c *Checklist) MoveDown() {
	if c.cursor < len(c.items)-1 {
		c.cursor++
		c.clampOffset()
	}
}

// Select moves the cursor to index i if it exists.
func (c *Checklist) Select(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.cursor = i
	c.clampOffset()
	return true
}

// IndexAt maps a line inside the list area to a row index.
func (c *Checklist) IndexAt(line int) (int, bool) {
	i := c.offset + line
	if line < 0 || line >= c.visibleRows() || i >= len(c.items) {
		return 0, false
	}
	return i, true
}

// OnCheckbox reports whether column x, relative to the left edge of the
// list, falls on a row's checkbox or the padding next to it.
func (c *Checklist) OnCheckbox(x int) bool {
	const hit = 5
	if c.rtl {
		return x >= c.width-hit && x < c.width
	}
	return x >= 0 && x < hit
}

// SetChecked updates one row's checkbox.
func (c *Checklist) SetChecked(id string, checked bool) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Checked = checked
			return
		}
	}
}

func (c *Checklist) visibleRows() int {
	if c.height <= 0 {
		return len(c.items)
	}
	return c.height
}

func (c *Checklist) clampOffset() {
	rows := c.visibleRows()
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+rows {
		c.offset = c.cursor - rows + 1
	}
	c.offset = max(0, min(c.offset, len(c.items)-rows))
}

// View renders the visible rows.
func (c *Checklist) View() string {
	if len(c.items) == 0 {
		return ""
	}
	rows := c.visibleRows()
	end := min(len(c.items), c.offset+rows)

	var lines []string
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (c *Checklist) renderRow(i int) string {
	it := c.items[i]

	box := CheckboxStyle.Render("[ ]")
	if it.Checked {
		box = CheckboxDoneStyle.Render("[✓]")
	}
	more := " "
	if it.HasDialog {
		more = "›"
		if c.rtl {
			more = "‹"
		}
	}

	// checkbox, space, title, space, marker, plus item padding
	titleW := c.width - 3 - 1 - 1 - 1 - 2
	title := it.Title
	if titleW > 0 && runewidth.StringWidth(title) > titleW {
		title = runewidth.Truncate(title, titleW, "…")
	}

	style := ItemStyle
	switch {
	case i == c.cursor:
		style = ItemSelectedStyle
	case it.Checked:
		style = ItemCheckedStyle
		title = CheckedTitleStyle.Render(title)
	}
	if c.width > 0 {
		style = style.Width(c.width)
	}

	if c.rtl {
		return style.Align(lipgloss.Right).Render(more + " " + title + " " + box)
	}
	return style.Render(box + " " + title + " " + more)
}

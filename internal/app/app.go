package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/readthrough/internal/clipboard"
	"github.com/zhubert/readthrough/internal/config"
	"github.com/zhubert/readthrough/internal/dialog"
	"github.com/zhubert/readthrough/internal/document"
	"github.com/zhubert/readthrough/internal/i18n"
	"github.com/zhubert/readthrough/internal/logger"
	"github.com/zhubert/readthrough/internal/notification"
	"github.com/zhubert/readthrough/internal/ui"
)

// PulseDuration is how long the scroll hint stays emphasized after a
// blocked close.
const PulseDuration = 2 * time.Second

// Size used to lay out dialogs before the terminal reports its own.
const (
	initialWidth  = 80
	initialHeight = 24
)

// LayoutSettledMsg re-measures a dialog shortly after it opened.
type LayoutSettledMsg struct {
	ID string
}

// PulseExpiredMsg ends the hint emphasis of a blocked close.
type PulseExpiredMsg struct {
	ID    string
	Token string
}

// Options are the per-run settings given on the command line.
type Options struct {
	Version string
	// Language overrides the configured language for this run when set.
	Language string

	// Notify and CopyText replace the desktop notification and clipboard
	// when set, e.g. for scripted runs.
	Notify   func(docTitle, message string) error
	CopyText func(text string) error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	doc     *document.Document
	catalog *i18n.Catalog
	version string
	lang    string

	dialogs *dialog.Controller
	views   map[string]*ui.DialogView

	header    *ui.Header
	footer    *ui.Footer
	checklist *ui.Checklist
	modal     *ui.Modal

	width  int
	height int
	ctx    ui.ViewContext

	// Side effects, replaced in tests
	notify   func(docTitle, message string) error
	copyText func(text string) error

	log *slog.Logger
}

// New creates a new app model
func New(cfg *config.Config, doc *document.Document, catalog *i18n.Catalog, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	lang := cfg.GetLanguage()
	if opts.Language != "" {
		lang = opts.Language
	}

	m := &Model{
		config:    cfg,
		doc:       doc,
		catalog:   catalog,
		version:   opts.Version,
		lang:      lang,
		dialogs:   dialog.New(catalog, dialog.Options{Slack: ui.LineSlack, ScrollStep: ui.LineScrollStep, PulseDuration: PulseDuration}),
		views:     make(map[string]*ui.DialogView),
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		checklist: ui.NewChecklist(),
		modal:     ui.NewModal(),
		notify:    notification.ChecklistCompleted,
		copyText:  clipboard.WriteText,
		log:       logger.ComponentLogger("app"),
	}

	for _, d := range doc.Dialogs {
		v := ui.NewDialogView(d.ID, d.Title, d.Body)
		m.views[d.ID] = v
		m.dialogs.Register(d.ID, v)
	}
	if refs := doc.DanglingReferences(); len(refs) > 0 {
		m.log.Warn("items point at missing dialogs", "items", refs)
	}

	if opts.Notify != nil {
		m.notify = opts.Notify
	}
	if opts.CopyText != nil {
		m.copyText = opts.CopyText
	}

	m.dialogs.SetLanguage(lang)
	m.checklist.SetRTL(i18n.IsRTL(lang))
	m.refreshContent()
	m.layout(initialWidth, initialHeight)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Language returns the interface language in use.
func (m *Model) Language() string {
	return m.lang
}

// DialogView returns the view drawing dialog id.
func (m *Model) DialogView(id string) (*ui.DialogView, bool) {
	v, ok := m.views[id]
	return v, ok
}

// Controller exposes the dialog controller for inspection.
func (m *Model) Controller() *dialog.Controller {
	return m.dialogs
}

// text translates key in the current language.
func (m *Model) text(key, def string) string {
	return m.catalog.Text(m.lang, key, def)
}

// refreshContent pushes translated titles and bodies into every view.
func (m *Model) refreshContent() {
	rtl := i18n.IsRTL(m.lang)

	title := m.doc.Title
	if m.doc.TitleKey != "" {
		title = m.text(m.doc.TitleKey, title)
	}
	m.header.SetTitle(title)
	m.header.SetLanguage(i18n.Name(m.lang))

	items := make([]ui.ChecklistItem, len(m.doc.Items))
	for i, it := range m.doc.Items {
		t := it.Title
		if it.TitleKey != "" {
			t = m.text(it.TitleKey, t)
		}
		items[i] = ui.ChecklistItem{
			ID:        it.ID,
			Title:     t,
			Checked:   m.config.IsChecked(it.ID),
			HasDialog: m.dialogs.Known(it.DialogID),
		}
	}
	m.checklist.SetItems(items)
	m.updateProgress()

	for _, d := range m.doc.Dialogs {
		t, body := d.Title, d.Body
		if d.TitleKey != "" {
			t = m.text(d.TitleKey, t)
		}
		if d.BodyKey != "" {
			body = m.text(d.BodyKey, body)
		}
		m.views[d.ID].SetContent(t, body, rtl)
	}
}

func (m *Model) updateProgress() {
	ids := m.doc.ItemIDs()
	m.header.SetProgress(m.config.CheckedCount(ids), len(ids))
}

// allChecked reports whether every item is ticked.
func (m *Model) allChecked() bool {
	ids := m.doc.ItemIDs()
	return len(ids) > 0 && m.config.CheckedCount(ids) == len(ids)
}

// layout resizes every component for a terminal of the given size.
func (m *Model) layout(width, height int) {
	m.ctx = ui.NewViewContext(width, height)

	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.checklist.SetSize(m.ctx.ListWidth(), m.ctx.ContentHeight)
	for _, v := range m.views {
		v.Layout(m.ctx.TerminalWidth, m.ctx.ContentTop, m.ctx.ContentHeight)
	}
}

// activeView returns the dialog on top, if any.
func (m *Model) activeView() (*ui.DialogView, bool) {
	id, ok := m.dialogs.ActiveID()
	if !ok {
		return nil, false
	}
	v, ok := m.views[id]
	return v, ok
}

package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/readthrough/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.syncDialogStatus()
	m.updateFooterMode()

	if m.modal.IsVisible() {
		return m.modal.View(m.ctx.TerminalWidth, m.ctx.TerminalHeight)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.contentView(),
		m.footer.View(),
	)
}

// contentView draws the dialog on top at the position its bounds were
// computed for, so mouse hit testing matches the screen. Dialogs further
// down the stack stay open but are not drawn.
func (m *Model) contentView() string {
	area := lipgloss.NewStyle().
		Height(m.ctx.ContentHeight).
		MaxHeight(m.ctx.ContentHeight)

	if v, ok := m.activeView(); ok {
		b := v.Bounds()
		return area.
			PaddingLeft(b.X).
			PaddingTop(b.Y - m.ctx.ContentTop).
			Render(v.View())
	}
	return area.
		PaddingLeft(m.ctx.ListLeft()).
		Render(m.checklist.View())
}

// updateFooterMode picks the bindings the footer shows.
func (m *Model) updateFooterMode() {
	id, open := m.dialogs.ActiveID()
	switch {
	case m.modal.IsVisible():
		m.footer.SetMode(ui.FooterModal)
	case open && m.dialogs.PromptVisible(id):
		m.footer.SetMode(ui.FooterPrompt)
	case open:
		m.footer.SetMode(ui.FooterDialog)
	default:
		m.footer.SetMode(ui.FooterList)
	}
}

package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, replaced by regenerateStyles when the theme changes
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Checklist styles
var (
	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	ItemCheckedStyle  lipgloss.Style
	CheckedTitleStyle lipgloss.Style
	CheckboxStyle     lipgloss.Style
	CheckboxDoneStyle lipgloss.Style
)

// Dialog styles
var (
	DialogStyle          lipgloss.Style
	DialogTitleStyle     lipgloss.Style
	DialogSeparatorStyle lipgloss.Style
	CloseButtonStyle     lipgloss.Style
	HintStyle            lipgloss.Style
	HintPulseStyle       lipgloss.Style
	DialogHelpStyle      lipgloss.Style

	PromptWarningStyle lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style
)

// Body content styles
var (
	HeadingStyle   lipgloss.Style
	BulletStyle    lipgloss.Style
	CodeBlockStyle lipgloss.Style
)

// Modal and status styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	ItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	ItemSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	ItemCheckedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	// Strikethrough styles rune by rune, so it only ever wraps plain text
	CheckedTitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Strikethrough(true)

	CheckboxStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	CheckboxDoneStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	DialogSeparatorStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	CloseButtonStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	HintStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Italic(true)

	HintPulseStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorWarning).
		Bold(true)

	DialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	PromptWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder)

	ButtonFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true)

	HeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	BulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	CodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg))

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}

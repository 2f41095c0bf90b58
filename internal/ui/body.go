package ui

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().ChromaStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// RenderBody turns dialog text into terminal lines of at most width cells.
// Paragraphs are word wrapped, "# " lines become headings, "- " lines
// bullets, and ``` fences are highlighted and truncated rather than wrapped
// so code stays copyable. RTL bodies are right aligned.
func RenderBody(body string, width int, rtl bool) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	inCode := false
	codeLang := ""
	var code []string

	flushCode := func() {
		if len(code) == 0 {
			return
		}
		for _, line := range strings.Split(highlightCode(strings.Join(code, "\n"), codeLang), "\n") {
			out = append(out, CodeBlockStyle.Render(ansi.Truncate(line, width, "…")))
		}
		code = code[:0]
	}

	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inCode {
				flushCode()
				inCode = false
			} else {
				inCode = true
				codeLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
			}
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}
		out = append(out, renderLine(line, width, rtl)...)
	}
	// Unterminated fence: show what we have
	flushCode()

	return strings.Join(out, "\n")
}

func renderLine(line string, width int, rtl bool) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return []string{""}
	}

	var wrapped []string
	switch {
	case strings.HasPrefix(trimmed, "# "):
		wrapped = wrap(HeadingStyle.Render(strings.TrimPrefix(trimmed, "# ")), width)
	case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
		lines := wrap(trimmed[2:], width-2)
		for i := range lines {
			if i == 0 {
				lines[i] = BulletStyle.Render("•") + " " + lines[i]
			} else {
				lines[i] = "  " + lines[i]
			}
		}
		wrapped = lines
	default:
		wrapped = wrap(trimmed, width)
	}

	if rtl {
		align := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)
		for i, l := range wrapped {
			wrapped[i] = align.Render(l)
		}
	}
	return wrapped
}

// wrap word wraps and then hard wraps anything still too long, such as URLs.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	return strings.Split(ansi.Wrap(ansi.Wordwrap(s, width, ""), width, ""), "\n")
}

// PlainText is the body as it should be copied: fences kept, no styling.
func PlainText(title, body string) string {
	return strings.TrimSpace(title) + "\n\n" + strings.TrimSpace(body) + "\n"
}

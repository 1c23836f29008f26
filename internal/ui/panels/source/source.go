// Package source is a read-only pane that shows a file with syntax
// highlighting.
package source

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/sadopc/gosplit/internal/ui/theme"
)

// Model displays one file.
type Model struct {
	viewport viewport.Model
	theme    theme.Theme
	styles   theme.Styles
	name     string
	raw      []byte
	focused  bool
	width    int
	height   int
}

// New creates an empty source pane.
func New(t theme.Theme, s theme.Styles) *Model {
	return &Model{
		viewport: viewport.New(0, 0),
		theme:    t,
		styles:   s,
	}
}

// SetContent replaces the file shown. name picks the highlighter.
func (m *Model) SetContent(name string, data []byte) {
	m.name = name
	m.raw = data
	m.renderContent()
}

// Name returns the file name shown in the title.
func (m *Model) Name() string {
	return m.name
}

// SetSize updates the pane dimensions, border included.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(0, w-2)
	m.viewport.Height = max(0, h-3) // border + title
	m.renderContent()
}

// Focus marks the pane as receiving keys.
func (m *Model) Focus() { m.focused = true }

// Blur marks the pane as not receiving keys.
func (m *Model) Blur() { m.focused = false }

func (m *Model) renderContent() {
	if len(m.raw) == 0 {
		m.viewport.SetContent(m.styles.Hint.Render("no file loaded"))
		return
	}

	src := m.raw
	lexerName := detectLexer(m.name, src)
	if lexerName == "json" {
		src = pretty.Pretty(src)
	}
	m.viewport.SetContent(highlight(string(src), lexerName))
}

// Update scrolls the viewport while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the bordered pane.
func (m *Model) View() string {
	if m.width < 3 || m.height < 4 {
		return ""
	}

	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	title := m.name
	if title == "" {
		title = "source"
	}
	header := m.styles.Title.MaxWidth(m.viewport.Width).Render(title)

	return border.
		Width(m.viewport.Width).
		Height(m.viewport.Height + 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View()))
}

// detectLexer picks a chroma lexer name from the file name, falling back to
// content analysis.
func detectLexer(name string, data []byte) string {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return "json"
	}
	if l := lexers.Match(filepath.Base(name)); l != nil {
		return l.Config().Name
	}
	if l := lexers.Analyse(string(data)); l != nil {
		return l.Config().Name
	}
	return "plaintext"
}

// highlight applies chroma syntax highlighting to source code.
func highlight(source, lexerName string) string {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

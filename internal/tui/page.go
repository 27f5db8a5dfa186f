package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// PageScreen shows a markdown document, such as a settings help page.
type PageScreen struct {
	title    string
	markdown string
	rendered string
	width    int
}

func NewPageScreen(title, markdown string) *PageScreen {
	return &PageScreen{title: title, markdown: markdown}
}

func (s *PageScreen) Title() string { return s.title }

func (s *PageScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, nil, true
	}
	return s, nil, false
}

func (s *PageScreen) View(width, height int) string {
	if s.rendered == "" || s.width != width {
		s.rendered = renderMarkdown(s.markdown, width)
		s.width = width
	}
	return clipHeight(s.rendered, height)
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

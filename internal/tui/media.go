package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/photofeed/internal/content"
)

// MediaScreen previews a single image or video from the profile grid.
type MediaScreen struct {
	title  string
	fields [][2]string
	video  bool
}

func newImageScreen(img content.Image, date string) *MediaScreen {
	return &MediaScreen{
		title: img.Title,
		fields: [][2]string{
			{"URI", img.URI},
			{"Posted", date},
		},
	}
}

func newVideoScreen(v content.Video, date string) *MediaScreen {
	return &MediaScreen{
		title: v.Title,
		video: true,
		fields: [][2]string{
			{"Thumbnail", v.Thumbnail},
			{"Duration", v.Duration},
			{"Views", content.CompactCount(v.Views)},
			{"Posted", date},
		},
	}
}

func (s *MediaScreen) Title() string { return s.title }

func (s *MediaScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, nil, true
	}
	return s, nil, false
}

func (s *MediaScreen) View(width, height int) string {
	glyph := "▣"
	if s.video {
		glyph = "▶"
	}
	frame := boxStyle.
		Width(min(40, max(12, width-8))).
		Height(max(1, min(9, height-len(s.fields)-2))).
		Align(lipgloss.Center, lipgloss.Center).
		Render(titleStyle.Render(glyph))

	lines := []string{frame, ""}
	for _, f := range s.fields {
		lines = append(lines, fmt.Sprintf("%s %s", mutedStyle.Render(padLabel(f[0])), f[1]))
	}
	return clipHeight(strings.Join(lines, "\n"), height)
}

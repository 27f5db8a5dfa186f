package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/photofeed/internal/content"
)

func (a *App) formatDate(t time.Time) string {
	layout := a.cfg.UI.DateFormat
	if layout == "" {
		layout = "Jan 2"
	}
	return t.Format(layout)
}

func (a *App) renderHome() string {
	lines := []string{titleStyle.Render("Home"), ""}
	switch a.loc {
	case locFound:
		lines = append(lines,
			renderMap(min(40, max(12, a.width-8)), 7),
			"",
			titleStyle.Render("You are here"),
			fmt.Sprintf("Lat %.5f, Lon %.5f", a.reading.Latitude, a.reading.Longitude),
			mutedStyle.Render(a.reading.Describe()),
		)
	case locFailed:
		lines = append(lines,
			errorStyle.Render(a.locErr),
			"",
			buttonStyle.Render("Try Again"),
		)
	default:
		lines = append(lines, mutedStyle.Render("Locating..."))
	}
	return strings.Join(lines, "\n")
}

// renderMap draws a bordered placeholder map with the marker in the middle.
func renderMap(width, height int) string {
	rows := make([]string, height)
	for y := range rows {
		row := strings.Repeat("·", width)
		if y == height/2 {
			row = strings.Repeat("·", width/2) + "◉" + strings.Repeat("·", width-width/2-1)
		}
		rows[y] = mutedStyle.Render(row)
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (a *App) renderSearch() string {
	lines := []string{titleStyle.Render("Search"), "", a.search.View(), ""}
	if strings.TrimSpace(a.search.Value()) == "" {
		lines = append(lines, mutedStyle.Render("Press / to search images and videos"))
		return strings.Join(lines, "\n")
	}
	matches := a.feed.Search(a.search.Value())
	if len(matches) == 0 {
		lines = append(lines, mutedStyle.Render("No results"))
		return strings.Join(lines, "\n")
	}
	for _, m := range matches {
		line := fmt.Sprintf("%-6s %s", m.Kind, m.Title)
		if m.Distance > 0 {
			line += mutedStyle.Render(" ~")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderAdd() string {
	lines := []string{titleStyle.Render("New Post"), "", a.compose.View(), ""}
	drafts := a.drafts.List()
	if len(drafts) == 0 {
		lines = append(lines, mutedStyle.Render("No drafts yet"))
		return strings.Join(lines, "\n")
	}
	for _, d := range drafts {
		lines = append(lines, fmt.Sprintf("%s  %s", mutedStyle.Render(a.formatDate(d.CreatedAt)), d.Caption))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderNotifications() string {
	lines := []string{titleStyle.Render("Notifications"), ""}
	for _, n := range a.notifications {
		lines = append(lines, fmt.Sprintf("%s  %s", badgeStyle.Render("●"), n.Text), mutedStyle.Render("   "+a.formatDate(n.At)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderProfile() string {
	p := a.profile
	stat := func(n int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(content.CompactCount(n)), mutedStyle.Render(label))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(p.Stats.Posts, "Posts"), "   ",
		stat(p.Stats.Followers, "Followers"), "   ",
		stat(p.Stats.Following, "Following"),
	)
	lines := []string{
		titleStyle.Render(p.Name) + mutedStyle.Render("  @"+p.Username),
		stats,
		p.Bio,
		mutedStyle.Render(p.Website),
		"",
	}

	images, videos := activeTabStyle.Render("Images"), inactiveTabStyle.Render("Videos")
	if a.showVideos {
		images, videos = inactiveTabStyle.Render("Images"), activeTabStyle.Render("Videos")
	}
	lines = append(lines, images+" "+videos, "")

	room := max(1, a.height-3-lipgloss.Height(strings.Join(lines, "\n")))
	if a.showVideos {
		first, last := visibleRange(a.mediaCursor, len(a.feed.Videos), room)
		for i := first; i < last; i++ {
			v := a.feed.Videos[i]
			marker := "  "
			if i == a.mediaCursor {
				marker = cursorStyle.Render("> ")
			}
			lines = append(lines, marker+fmt.Sprintf("▶ %-10s %5s  %s views  %s",
				v.Title, v.Duration, content.CompactCount(v.Views), mutedStyle.Render(a.formatDate(v.Timestamp))))
		}
	} else {
		lines = append(lines, a.renderGrid(max(1, room/3)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) gridColumns() int { return max(1, a.width/14) }

// visibleRange returns the window of at most size items that keeps cursor
// on screen, anchored at the top until the cursor passes the last row.
func visibleRange(cursor, total, size int) (int, int) {
	first := max(0, cursor-size+1)
	return first, min(total, first+size)
}

func (a *App) renderGrid(visibleRows int) string {
	cols := a.gridColumns()
	totalRows := (len(a.feed.Images) + cols - 1) / cols
	firstRow, lastRow := visibleRange(a.mediaCursor/cols, totalRows, visibleRows)
	var rows []string
	for start := firstRow * cols; start < lastRow*cols && start < len(a.feed.Images); start += cols {
		end := min(start+cols, len(a.feed.Images))
		tiles := make([]string, 0, cols)
		for i, img := range a.feed.Images[start:end] {
			style := tileStyle
			if start+i == a.mediaCursor {
				style = selectedTileStyle
			}
			tiles = append(tiles, style.Render(img.Title))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No posts yet")
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderSettings() string {
	lines := []string{titleStyle.Render("Settings")}
	section := ""
	for i, row := range a.settings {
		switch {
		case row.logout:
			lines = append(lines, "")
		case row.section != section:
			lines = append(lines, "", mutedStyle.Render(row.section))
			section = row.section
		}
		label := row.item.Title
		if row.item.Subtitle != "" {
			label += mutedStyle.Render("  " + row.item.Subtitle)
		}
		if row.logout {
			label = errorStyle.Render(label)
		}
		if i == a.settingsCursor {
			lines = append(lines, cursorStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return strings.Join(lines, "\n")
}

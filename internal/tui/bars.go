package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/photofeed/internal/route"
)

func renderTabBar(active route.Tab, badge, width int) string {
	parts := make([]string, 0, len(route.Tabs()))
	for i, t := range route.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == route.TabNotifications && badge > 0 {
			label += " " + badgeStyle.Render(fmt.Sprintf("(%d)", badge))
		}
		if t == active {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return renderBar(footerStyle, max(1, width), strings.Join(parts, " "))
}

func renderStatusBar(status string, isErr bool, width int) string {
	msg := strings.TrimSpace(status)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(statusErrBarStyle, max(1, width), msg)
	}
	return renderBar(statusBarStyle, max(1, width), msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func clipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

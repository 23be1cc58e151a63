// Package sidebar provides the status legend shown beside the container.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one selectable status in the legend.
type Entry struct {
	Key    string
	Label  string
	Active bool
}

// Props defines the properties for the sidebar component.
type Props struct {
	Title   string
	Entries []Entry
	Log     []string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the sidebar component.
func Render(p Props) string {
	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("205")
	}
	sidebarStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("63"))

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingBottom(1).
		Foreground(accent)
	normal := lipgloss.NewStyle().PaddingLeft(2)
	active := normal.Foreground(accent).Bold(true)
	muted := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("240"))

	lines := []string{titleStyle.Render(p.Title)}
	for _, e := range p.Entries {
		marker := " "
		style := normal
		if e.Active {
			marker = "▸"
			style = active
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %-6s %s", marker, e.Key, e.Label)))
	}
	if len(p.Log) > 0 {
		lines = append(lines, "", muted.Render("Transitions"))
		for _, l := range p.Log {
			lines = append(lines, muted.Render(l))
		}
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

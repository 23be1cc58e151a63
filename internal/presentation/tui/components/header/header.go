// Package header provides the status line shown above the container.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible   bool
	Status    string
	FeedTitle string
	Detail    string
	Accent    lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	accent := p.Accent
	if accent == "" {
		accent = lipgloss.Color("205")
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(accent).
		Padding(0, 1).
		Render(strings.ToUpper(p.Status))

	parts := []string{badge}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if p.FeedTitle != "" {
		parts = append(parts, muted.Render(p.FeedTitle))
	}
	if p.Detail != "" {
		parts = append(parts, muted.Render("· "+p.Detail))
	}
	return strings.Join(parts, " ")
}

// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FeedItem is an entry the ItemDelegate can render.
type FeedItem interface {
	list.Item
	Title() string
	Description() string
	FeedTitle() string
}

// ItemDelegate renders a feed entry as a title line and a muted meta line.
type ItemDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewItemDelegate creates a new ItemDelegate. theme colors the feed name.
func NewItemDelegate(theme lipgloss.Color) *ItemDelegate {
	return &ItemDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Theme:  theme,
	}
}

// Height returns the height of the item.
func (d *ItemDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *ItemDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(FeedItem)
	if !ok {
		return
	}

	titleStyle, descStyle := itemStyles(d.Styles, m, index)
	title := truncateItemText(m, titleStyle, i.Title())

	meta := i.Description()
	if feed := i.FeedTitle(); feed != "" {
		meta = lipgloss.NewStyle().Foreground(d.Theme).Render(feed) + " " + meta
	}
	meta = truncateItemText(m, descStyle, meta)

	renderItemText(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	renderItemText(w, descStyle, meta)
}

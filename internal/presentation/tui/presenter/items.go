// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/domain/reading"
	"github.com/tesso57/statusview/internal/domain/status"
)

// Item is a view model for list items.
type Item struct {
	TitleText     string
	Desc          string
	Link          string
	Published     string
	GUID          string
	FeedTitleText string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// URL returns the item's URL.
func (i *Item) URL() string { return i.Link }

// FeedTitle returns the feed title for the item.
func (i *Item) FeedTitle() string { return i.FeedTitleText }

// Description returns a formatted description for list display.
func (i *Item) Description() string {
	if i.Published != "" {
		return fmt.Sprintf("%s - %s", i.Published, i.Desc)
	}
	return i.Desc
}

// BuildItems builds numbered list items for the entries of feed.
func BuildItems(feed *reading.Feed) []list.Item {
	if feed.IsEmpty() {
		return []list.Item{}
	}
	result := make([]list.Item, len(feed.Items))
	for i, it := range feed.Items {
		title := it.Title
		if title == "" {
			title = it.Link
		}
		result[i] = &Item{
			TitleText:     fmt.Sprintf("%d. %s", i+1, title),
			Desc:          it.Description,
			Link:          it.Link,
			Published:     it.Published,
			GUID:          it.GUID,
			FeedTitleText: it.FeedTitle,
		}
	}
	return result
}

// ApplyFeed replaces the list items with the entries of feed.
func ApplyFeed(model *list.Model, feed *reading.Feed) tea.Cmd {
	cmd := model.SetItems(BuildItems(feed))
	model.Title = "Articles"
	if feed != nil && feed.Title != "" {
		model.Title = feed.Title
	}
	return cmd
}

// TransitionLine formats a status change for the transition log.
func TransitionLine(old, next status.ID) string {
	return fmt.Sprintf("%s → %s", old, next)
}

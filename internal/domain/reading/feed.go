// Package reading defines the feed models loaded by the demo screen.
package reading

import "time"

// Item represents a single feed entry.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Published   string
	Description string
	Date        time.Time
	FeedTitle   string
	FeedURL     string
}

// Feed represents a parsed RSS or Atom feed.
type Feed struct {
	Title     string
	URL       string
	Items     []Item
	FetchedAt time.Time
}

// IsEmpty reports whether f carries no items.
func (f *Feed) IsEmpty() bool {
	return f == nil || len(f.Items) == 0
}

// Len returns the number of items, zero for a nil feed.
func (f *Feed) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Items)
}

package presenter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/statusview/internal/domain/reading"
	"github.com/tesso57/statusview/internal/domain/status"
)

func TestBuildItems(t *testing.T) {
	feed := &reading.Feed{
		Title: "My Feed",
		Items: []reading.Item{
			{GUID: "guid1", Title: "Article One", Link: "http://example.com/1", Published: "Mon", Description: "Desc 1", FeedTitle: "My Feed"},
			{GUID: "guid2", Link: "http://example.com/2"},
		},
	}

	items := BuildItems(feed)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	i1 := items[0].(*Item)
	if i1.TitleText != "1. Article One" {
		t.Errorf("Expected '1. Article One', got '%s'", i1.TitleText)
	}
	if i1.Description() != "Mon - Desc 1" {
		t.Errorf("Description() = %q", i1.Description())
	}
	if i1.URL() != "http://example.com/1" || i1.FeedTitle() != "My Feed" {
		t.Errorf("unexpected item %+v", i1)
	}

	i2 := items[1].(*Item)
	if !strings.HasPrefix(i2.TitleText, "2. http://example.com/2") {
		t.Errorf("Expected link as fallback title, got '%s'", i2.TitleText)
	}
	if i2.Description() != "" {
		t.Errorf("Description() = %q, want empty", i2.Description())
	}
}

func TestBuildItems_Empty(t *testing.T) {
	if got := BuildItems(nil); len(got) != 0 {
		t.Fatalf("BuildItems(nil) = %v", got)
	}
}

func TestApplyFeed(t *testing.T) {
	model := list.New(nil, list.NewDefaultDelegate(), 20, 10)
	ApplyFeed(&model, &reading.Feed{Title: "Example", Items: []reading.Item{{Title: "a"}}})
	if model.Title != "Example" || len(model.Items()) != 1 {
		t.Fatalf("title=%q items=%d", model.Title, len(model.Items()))
	}

	ApplyFeed(&model, nil)
	if model.Title != "Articles" || len(model.Items()) != 0 {
		t.Fatalf("title=%q items=%d", model.Title, len(model.Items()))
	}
}

func TestTransitionLine(t *testing.T) {
	if got := TransitionLine(status.None, status.Of(status.Loading)); got != "none → loading" {
		t.Fatalf("TransitionLine() = %q", got)
	}
	if got := TransitionLine(status.Of(status.Error), status.Custom(20)); got != "error → custom:20" {
		t.Fatalf("TransitionLine() = %q", got)
	}
}

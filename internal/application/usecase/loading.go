// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tesso57/statusview/internal/domain/reading"
	"github.com/tesso57/statusview/internal/domain/status"
)

// ErrNoNetwork marks fetch failures caused by an unreachable network.
var ErrNoNetwork = errors.New("network unreachable")

// ErrEmptyURL is returned when no feed url is configured.
var ErrEmptyURL = errors.New("feed url is empty")

// FeedFetcher abstracts RSS fetching.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*reading.Feed, error)
}

// FeedCache abstracts the store of the last feed fetched successfully.
type FeedCache interface {
	Load(url string) (*reading.Feed, error)
	Save(feed *reading.Feed) error
}

// Outcome is the result of one load, classified into the status to show.
type Outcome struct {
	Status    status.ID
	Feed      *reading.Feed
	Err       error
	FromCache bool
	CacheErr  error
}

// LoadService fetches a feed and decides which status presents it.
type LoadService struct {
	Fetcher FeedFetcher
	Cache   FeedCache
	Timeout time.Duration
	Now     func() time.Time
}

// NewLoadService constructs a LoadService. cache may be nil.
func NewLoadService(fetcher FeedFetcher, cache FeedCache, timeout time.Duration) LoadService {
	return LoadService{
		Fetcher: fetcher,
		Cache:   cache,
		Timeout: timeout,
	}
}

// Load fetches url. Items show as content and an empty feed as empty. An
// unreachable network falls back to the cached feed when it has items,
// otherwise shows no-network. Anything else is an error.
func (s LoadService) Load(ctx context.Context, url string) Outcome {
	url = strings.TrimSpace(url)
	if url == "" {
		return Outcome{Status: status.Of(status.Error), Err: ErrEmptyURL}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	feed, err := s.Fetcher.Fetch(ctx, url)
	switch {
	case err == nil:
		return s.loaded(feed)
	case errors.Is(err, ErrNoNetwork):
		return s.offline(url, err)
	default:
		return Outcome{Status: status.Of(status.Error), Err: err}
	}
}

func (s LoadService) loaded(feed *reading.Feed) Outcome {
	if feed.IsEmpty() {
		return Outcome{Status: status.Of(status.Empty), Feed: feed}
	}
	feed.FetchedAt = s.now()
	out := Outcome{Status: status.Of(status.Content), Feed: feed}
	if s.Cache != nil {
		out.CacheErr = s.Cache.Save(feed)
	}
	return out
}

func (s LoadService) offline(url string, fetchErr error) Outcome {
	out := Outcome{Status: status.Of(status.NoNetwork), Err: fetchErr}
	if s.Cache == nil {
		return out
	}
	cached, err := s.Cache.Load(url)
	if err != nil {
		out.CacheErr = err
		return out
	}
	if cached.IsEmpty() {
		return out
	}
	out.Status = status.Of(status.Content)
	out.Feed = cached
	out.FromCache = true
	return out
}

func (s LoadService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Package feed provides functionality to fetch and parse RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/statusview/internal/application/usecase"
	"github.com/tesso57/statusview/internal/domain/reading"
)

const (
	feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	userAgent        = "statusview/1.0"
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc parses the feed at url.
type ParserFunc func(ctx context.Context, url string) (*gofeed.Feed, error)

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Fetcher implements usecase.FeedFetcher on top of gofeed.
type Fetcher struct {
	Parse ParserFunc
}

// NewFetcher returns a Fetcher using the HTTP parser.
func NewFetcher() Fetcher {
	return Fetcher{Parse: defaultParser}
}

// Fetch parses the feed at url. Items are sorted newest first. Failures
// caused by an unreachable network wrap usecase.ErrNoNetwork.
func (f Fetcher) Fetch(ctx context.Context, url string) (*reading.Feed, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, usecase.ErrEmptyURL
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parse := f.Parse
	if parse == nil {
		parse = defaultParser
	}

	parsed, err := parse(ctx, url)
	if err != nil {
		return nil, classify(url, err)
	}
	return convert(url, parsed), nil
}

func convert(url string, parsed *gofeed.Feed) *reading.Feed {
	out := &reading.Feed{
		Title: parsed.Title,
		URL:   url,
		Items: make([]reading.Item, len(parsed.Items)),
	}

	for i, item := range parsed.Items {
		pub := item.Published
		if pub == "" {
			pub = item.Updated
		}
		var date time.Time
		if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		}
		guid := item.GUID
		if guid == "" {
			guid = item.Link
		}

		out.Items[i] = reading.Item{
			GUID:        guid,
			Title:       item.Title,
			Link:        item.Link,
			Published:   pub,
			Description: item.Description,
			Date:        date,
			FeedTitle:   parsed.Title,
			FeedURL:     url,
		}
	}

	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].Date.After(out.Items[j].Date)
	})
	return out
}

func classify(url string, err error) error {
	if isOffline(err) {
		return fmt.Errorf("fetch %s: %w: %w", url, usecase.ErrNoNetwork, err)
	}
	return fmt.Errorf("fetch %s: %w", url, err)
}

// isOffline reports whether err means the host could not be reached at
// all, as opposed to a server or parse failure.
func isOffline(err error) bool {
	if errors.Is(err, usecase.ErrNoNetwork) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

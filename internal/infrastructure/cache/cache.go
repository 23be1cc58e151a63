// Package cache keeps the last feed fetched successfully so the demo can
// show content while the network is unreachable.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tesso57/statusview/internal/domain/reading"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS feeds (
	url        TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	feed_url    TEXT NOT NULL REFERENCES feeds(url) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	guid        TEXT NOT NULL,
	title       TEXT NOT NULL,
	link        TEXT NOT NULL,
	published   TEXT NOT NULL,
	description TEXT NOT NULL,
	date        INTEGER NOT NULL,
	PRIMARY KEY (feed_url, position)
);
`

// Store is a SQLite-backed feed cache.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the cached copy of feed.
func (s *Store) Save(feed *reading.Feed) (err error) {
	if feed == nil || feed.URL == "" {
		return errors.New("cache: feed without url")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	fetched := feed.FetchedAt
	if fetched.IsZero() {
		fetched = time.Now()
	}
	if _, err = tx.Exec(`DELETE FROM items WHERE feed_url = ?`, feed.URL); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err = tx.Exec(`
		INSERT INTO feeds (url, title, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET title = excluded.title, fetched_at = excluded.fetched_at
	`, feed.URL, feed.Title, fetched.UnixNano()); err != nil {
		return fmt.Errorf("upsert feed: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO items (feed_url, position, guid, title, link, published, description, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, item := range feed.Items {
		if _, err = stmt.Exec(feed.URL, i, item.GUID, item.Title, item.Link, item.Published, item.Description, unixNano(item.Date)); err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Load returns the cached feed for url, or nil when nothing is cached.
func (s *Store) Load(url string) (*reading.Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feed := &reading.Feed{URL: url}
	var fetched int64
	err := s.db.QueryRow(`SELECT title, fetched_at FROM feeds WHERE url = ?`, url).Scan(&feed.Title, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	feed.FetchedAt = time.Unix(0, fetched)

	rows, err := s.db.Query(`
		SELECT guid, title, link, published, description, date
		FROM items WHERE feed_url = ? ORDER BY position
	`, url)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var item reading.Item
		var date int64
		if err := rows.Scan(&item.GUID, &item.Title, &item.Link, &item.Published, &item.Description, &date); err != nil {
			return nil, err
		}
		if date != 0 {
			item.Date = time.Unix(0, date)
		}
		item.FeedTitle = feed.Title
		item.FeedURL = url
		feed.Items = append(feed.Items, item)
	}
	return feed, rows.Err()
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

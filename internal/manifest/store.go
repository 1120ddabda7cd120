package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
)

// Store memoizes manifest fetches per (collection, language). A given key
// is fetched at most once for the lifetime of the Store: concurrent
// callers coalesce onto the same in-flight fetch, and the outcome, success
// or failure, is cached without retry. Entries are only ever added, never
// invalidated, so reads race with nothing.
type Store struct {
	fetcher Fetcher

	mu      sync.Mutex
	entries map[cacheKey]*entry
}

type cacheKey struct {
	collection string
	lang       string
}

type entry struct {
	ready chan struct{}
	doc   *Manifest
	err   error
}

// NewStore builds a Store over the given fetcher. The cache lives with the
// Store; callers decide its scope by deciding where they construct it.
func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		entries: map[cacheKey]*entry{},
	}
}

// Load returns the manifest for a (collection, language) pair, fetching it
// on first use. Every waiter for the same key receives the same outcome.
func (s *Store) Load(ctx context.Context, collection, lang string) (*Manifest, error) {
	key := cacheKey{collection: collection, lang: normalizeLang(lang)}

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		e = &entry{ready: make(chan struct{})}
		s.entries[key] = e
		go s.fill(e, key)
	}
	s.mu.Unlock()

	select {
	case <-e.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return e.doc, e.err
}

func (s *Store) fill(e *entry, key cacheKey) {
	defer close(e.ready)

	// The result is shared by every waiter, so the fetch must not run
	// under the first caller's context: its cancellation would poison the
	// cache for everyone else.
	raw, err := s.fetcher.Fetch(context.Background(), manifestPath(key.collection, key.lang))
	if err != nil {
		e.err = fmt.Errorf("manifest %s/%s: %w", key.collection, key.lang, err)
		return
	}
	doc := &Manifest{}
	if err := json.Unmarshal(raw, doc); err != nil {
		e.err = fmt.Errorf("manifest %s/%s: decode: %w", key.collection, key.lang, err)
		return
	}
	e.doc = doc
}

// Posts loads a blog or news manifest and returns its published posts in
// the requested language, newest first.
func (s *Store) Posts(ctx context.Context, collection, lang string) ([]Post, error) {
	doc, err := s.Load(ctx, collection, lang)
	if err != nil {
		return nil, err
	}
	return SortByDateDesc(FilterPublished(doc.Posts, normalizeLang(lang))), nil
}

// Albums loads the gallery manifest and returns its published albums in
// the requested language, newest first.
func (s *Store) Albums(ctx context.Context, lang string) ([]Album, error) {
	doc, err := s.Load(ctx, CollectionGallery, lang)
	if err != nil {
		return nil, err
	}
	return SortByDateDesc(FilterPublished(doc.Albums, normalizeLang(lang))), nil
}

func manifestPath(collection, lang string) string {
	return path.Join("content", collection, lang, "index.json")
}

// Package translate resolves the cross-language equivalents of one
// content item, for building the language-switch links on detail pages.
package translate

import (
	"context"
	"net/url"
	"sync"

	"github.com/atelier-sol/web/internal/locale"
	"github.com/atelier-sol/web/internal/manifest"
)

// Link is the switch target for one language: either the equivalent item's
// detail URL or, when no equivalent exists, that language's collection
// landing page.
type Link struct {
	Lang   string
	Href   string
	Direct bool
}

// Resolver looks up translations through the shared manifest store.
type Resolver struct {
	store *manifest.Store
}

// NewResolver builds a Resolver over the given store.
func NewResolver(store *manifest.Store) *Resolver {
	return &Resolver{store: store}
}

// Links computes one Link per supported language for the item currently
// shown. Lookups for the other languages run concurrently; a failed
// manifest load degrades that language to its landing page without
// affecting the rest. Results come back in supported-language order.
func (r *Resolver) Links(ctx context.Context, collection, slug, lang, basePath string, supported []string, query url.Values) []Link {
	var current manifest.Record
	found := false
	if records, err := r.records(ctx, collection, lang); err == nil {
		for _, rec := range records {
			if rec.Slug == slug {
				current = rec
				found = true
				break
			}
		}
	}

	links := make([]Link, len(supported))
	var wg sync.WaitGroup
	for i, target := range supported {
		if target == lang {
			links[i] = r.link(collection, target, slug, basePath, query, found)
			continue
		}
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			links[i] = r.resolve(ctx, collection, current, found, slug, target, basePath, query)
		}(i, target)
	}
	wg.Wait()
	return links
}

func (r *Resolver) resolve(ctx context.Context, collection string, current manifest.Record, found bool, slug, target, basePath string, query url.Values) Link {
	fallback := Link{Lang: target, Href: locale.CollectionPath(basePath, target, collection)}

	records, err := r.records(ctx, collection, target)
	if err != nil {
		return fallback
	}
	for _, rec := range records {
		if found && current.ID != "" {
			if rec.ID == current.ID {
				return r.link(collection, target, rec.Slug, basePath, query, true)
			}
			continue
		}
		if rec.Slug == slug {
			return r.link(collection, target, rec.Slug, basePath, query, true)
		}
	}
	return fallback
}

// link builds a detail URL carrying the original query with slug
// overwritten, or the landing URL when the item was never found.
func (r *Resolver) link(collection, lang, slug, basePath string, query url.Values, direct bool) Link {
	if !direct {
		return Link{Lang: lang, Href: locale.CollectionPath(basePath, lang, collection)}
	}
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("slug", slug)
	return Link{
		Lang:   lang,
		Href:   locale.DetailPath(basePath, lang, collection) + "?" + q.Encode(),
		Direct: true,
	}
}

func (r *Resolver) records(ctx context.Context, collection, lang string) ([]manifest.Record, error) {
	if collection == manifest.CollectionGallery {
		albums, err := r.store.Albums(ctx, lang)
		if err != nil {
			return nil, err
		}
		records := make([]manifest.Record, len(albums))
		for i, a := range albums {
			records[i] = a.Meta()
		}
		return records, nil
	}
	posts, err := r.store.Posts(ctx, collection, lang)
	if err != nil {
		return nil, err
	}
	records := make([]manifest.Record, len(posts))
	for i, p := range posts {
		records[i] = p.Meta()
	}
	return records, nil
}

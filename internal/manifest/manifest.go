// Package manifest loads the static JSON manifests that describe all
// content of one collection in one language, and prepares them for
// display: publish/language filtering and newest-first ordering.
package manifest

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Collection names understood by the loader.
const (
	CollectionBlog    = "blog"
	CollectionNews    = "news"
	CollectionGallery = "gallery"
)

// StatusPublished marks a record visible to consumer-facing views.
const StatusPublished = "published"

// Record holds the fields shared by every content item. ID is stable
// across languages and links translations of the same logical item; Slug
// only needs to be unique within one (collection, language) pair.
type Record struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Lang   string `json:"lang"`
	Status string `json:"status"`
	Title  string `json:"title"`
	Date   string `json:"date"`
}

// Meta returns the shared fields; it also satisfies Entry for the types
// embedding Record.
func (r Record) Meta() Record { return r }

// Post is a blog or news entry. Exactly one of BodyHTML (pre-rendered) or
// BodyMarkdown/Body (raw Markdown) is expected for published posts.
type Post struct {
	Record
	CoverImage   string `json:"cover_image"`
	Excerpt      string `json:"excerpt"`
	BodyHTML     string `json:"body_html"`
	BodyMarkdown string `json:"body_markdown"`
	Body         string `json:"body"`
}

// RawBody returns the body source and whether it is pre-rendered HTML.
// Either way the result is untrusted and must be sanitized before display.
func (p Post) RawBody() (string, bool) {
	if p.BodyHTML != "" {
		return p.BodyHTML, true
	}
	if p.BodyMarkdown != "" {
		return p.BodyMarkdown, false
	}
	return p.Body, false
}

// Album is a photo-album entry.
type Album struct {
	Record
	CoverImage  string   `json:"cover_image"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Manifest is one fetched manifest document. Blog and news manifests carry
// posts, the gallery manifest carries albums.
type Manifest struct {
	Posts  []Post
	Albums []Album
}

// UnmarshalJSON normalizes a missing or non-array posts/albums payload to
// an empty list instead of erroring. A malformed document still fails.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Posts  json.RawMessage `json:"posts"`
		Albums json.RawMessage `json:"albums"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Posts = decodeList[Post](raw.Posts)
	m.Albums = decodeList[Album](raw.Albums)
	return nil
}

func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	return items
}

// Entry is any item carrying the shared record fields.
type Entry interface {
	Meta() Record
}

// FilterPublished keeps the published items of the requested language,
// preserving relative order.
func FilterPublished[T Entry](items []T, lang string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		m := item.Meta()
		if m.Status == StatusPublished && m.Lang == lang {
			out = append(out, item)
		}
	}
	return out
}

// SortByDateDesc orders items newest first. Items with an unparseable date
// sort after every validly dated item; ties among unparseable dates keep
// their input order.
func SortByDateDesc[T Entry](items []T) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := ParseDate(out[i].Meta().Date)
		b, bok := ParseDate(out[j].Meta().Date)
		switch {
		case aok && bok:
			return a.After(b)
		case aok:
			return true
		default:
			return false
		}
	})
	return out
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
}

// ParseDate parses a manifest date string. The second return reports
// whether the value was parseable; callers fall back to showing the raw
// string when it is not.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	return lang
}

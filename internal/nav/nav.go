package nav

import (
	"strings"

	"github.com/atelier-sol/web/internal/locale"
)

// Item represents a top-level navigation item.
type Item struct {
	Slug     string // e.g. "blog"
	LabelKey string // i18n key, e.g. "nav.blog"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Slug: "blog", LabelKey: "nav.blog"},
	{Slug: "news", LabelKey: "nav.news"},
	{Slug: "gallery", LabelKey: "nav.gallery"},
	{Slug: "offering", LabelKey: "nav.offering"},
}

// Build renders language-prefixed navigation items with active state for
// the current path.
func Build(basePath, lang, currentPath string) []RenderedItem {
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		href := locale.CollectionPath(basePath, lang, it.Slug)
		items = append(items, RenderedItem{
			Href:     href,
			LabelKey: it.LabelKey,
			Active:   isActive(href, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	// match exact or prefix boundary: "/en/blog/" covers "/en/blog/post/"
	if currentPath == itemPath || currentPath+"/" == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath)
}

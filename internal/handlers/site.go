// Package handlers assembles the pages. It is deliberately thin: all
// non-trivial behavior lives in the manifest, paginate, markdown,
// sanitize, locale and translate packages it calls into.
package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atelier-sol/web/internal/config"
	"github.com/atelier-sol/web/internal/i18n"
	"github.com/atelier-sol/web/internal/locale"
	"github.com/atelier-sol/web/internal/manifest"
	"github.com/atelier-sol/web/internal/nav"
	"github.com/atelier-sol/web/internal/paginate"
	"github.com/atelier-sol/web/internal/settings"
	"github.com/atelier-sol/web/internal/translate"
)

// Site bundles the collaborators every page handler needs.
type Site struct {
	Config   config.Config
	Store    *manifest.Store
	Fetcher  manifest.Fetcher
	Bundle   *i18n.Bundle
	Resolver *translate.Resolver
	Renderer *Renderer
}

// LangChoice is one entry of the header language menu.
type LangChoice struct {
	Lang   string
	Href   string
	Active bool
}

// PageData is the shared view model for the page templates. Per-page
// payloads are optional; templates only read what their page sets.
type PageData struct {
	Title    string
	Lang     string
	BasePath string
	Path     string
	Nav      []nav.RenderedItem
	LangMenu []LangChoice
	T        func(string) string

	// Error holds a localized "unable to load" message for the section;
	// Empty holds the localized no-content message for list views.
	Error string
	Empty string

	Posts      []PostCard
	Albums     []AlbumCard
	Post       *PostView
	Album      *AlbumView
	Pagination []paginate.Link
	Offerings  []settings.OfferingLink
	NotFound   *NotFoundView
}

// PostCard is the list-view model for one post.
type PostCard struct {
	Title   string
	Date    string
	Excerpt string
	Image   string
	Href    string
	Label   string
}

// PostView is the detail-view model for one post.
type PostView struct {
	Title     string
	Date      string
	Image     string
	Body      template.HTML
	LangLinks []translate.Link
}

// AlbumCard is the list-view model for one album.
type AlbumCard struct {
	Title       string
	Date        string
	Description string
	Image       string
	Href        string
	Label       string
}

// AlbumView is the detail-view model for one album.
type AlbumView struct {
	Title       string
	Date        string
	Description string
	Images      []string
	LangLinks   []translate.Link
}

// NotFoundView renders the defined empty-result state for a missing slug.
type NotFoundView struct {
	Message  string
	BackHref string
	BackText string
}

// lang validates the route language parameter against the supported set.
func (s *Site) lang(r *http.Request) (string, bool) {
	lang := chi.URLParam(r, "lang")
	for _, l := range s.Config.Languages {
		if lang == l {
			return lang, true
		}
	}
	return "", false
}

// page builds the layout fields shared by every page.
func (s *Site) page(r *http.Request, lang, titleKey string) PageData {
	t := func(key string) string { return s.Bundle.T(lang, key) }
	menu := make([]LangChoice, 0, len(s.Config.Languages))
	for _, l := range s.Config.Languages {
		menu = append(menu, LangChoice{
			Lang:   l,
			Href:   s.switchHref(r.URL.Path, lang, l),
			Active: l == lang,
		})
	}
	return PageData{
		Title:    t(titleKey),
		Lang:     lang,
		BasePath: s.Config.BasePath,
		Path:     r.URL.Path,
		Nav:      nav.Build(s.Config.BasePath, lang, r.URL.Path),
		LangMenu: menu,
		T:        t,
	}
}

// switchHref maps the current path onto another language by swapping the
// language segment. Detail pages override the menu with resolver output.
func (s *Site) switchHref(path, from, to string) string {
	base := s.Config.BasePath
	prefix := base + from + "/"
	if len(path) >= len(prefix) && path[:len(prefix)] == prefix {
		return base + to + "/" + path[len(prefix):]
	}
	return base + to + "/"
}

func (s *Site) asset(ref string) string {
	return locale.Asset(s.Config.BasePath, ref)
}

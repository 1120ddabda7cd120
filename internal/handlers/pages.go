package handlers

import (
	"net/http"

	"github.com/atelier-sol/web/internal/settings"
)

// Home serves the per-language landing page.
func (s *Site) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, "home.title")
		s.Renderer.Render(w, "home", data)
	}
}

// Offering serves the offering page with its configured external links.
func (s *Site) Offering() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, "offering.title")
		data.Offerings = settings.Load(r.Context(), s.Fetcher, lang)
		s.Renderer.Render(w, "offering", data)
	}
}

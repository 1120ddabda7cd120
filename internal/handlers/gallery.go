package handlers

import (
	"net/http"
	"net/url"

	"github.com/atelier-sol/web/internal/format"
	"github.com/atelier-sol/web/internal/locale"
	"github.com/atelier-sol/web/internal/manifest"
	"github.com/atelier-sol/web/internal/paginate"
)

// GalleryList serves the album list view.
func (s *Site) GalleryList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, "gallery.title")

		albums, err := s.Store.Albums(r.Context(), lang)
		if err != nil {
			data.Error = data.T("gallery.error")
			s.Renderer.Render(w, "gallery", data)
			return
		}

		detailPath := locale.DetailPath(s.Config.BasePath, lang, manifest.CollectionGallery)
		cards := make([]AlbumCard, 0, len(albums))
		for _, a := range albums {
			cards = append(cards, AlbumCard{
				Title:       a.Title,
				Date:        format.Date(a.Date, lang),
				Description: a.Description,
				Image:       s.asset(a.CoverImage),
				Href:        detailPath + "?slug=" + url.QueryEscape(a.Slug),
				Label:       data.T("actions.view_album"),
			})
		}
		data.Albums = cards
		s.Renderer.Render(w, "gallery", data)
	}
}

// AlbumDetail serves one album, selected by the slug query parameter, with
// its images paginated.
func (s *Site) AlbumDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, "gallery.title")
		landing := locale.CollectionPath(s.Config.BasePath, lang, manifest.CollectionGallery)

		albums, err := s.Store.Albums(r.Context(), lang)
		if err != nil {
			data.Error = data.T("gallery.load_error")
			s.Renderer.Render(w, "album", data)
			return
		}

		slug := r.URL.Query().Get("slug")
		idx := -1
		for i, a := range albums {
			if a.Slug == slug {
				idx = i
				break
			}
		}
		if idx < 0 {
			data.NotFound = &NotFoundView{
				Message:  data.T("gallery.not_found"),
				BackHref: landing,
				BackText: data.T("gallery.back"),
			}
			s.Renderer.Render(w, "album", data)
			return
		}
		album := albums[idx]

		page := paginate.Paginate(album.Images, s.Config.ImagesPerPage, paginate.PageParam(r.URL.Query()))
		images := make([]string, 0, len(page.Items))
		for _, src := range page.Items {
			images = append(images, s.asset(src))
		}

		links := s.Resolver.Links(
			r.Context(), manifest.CollectionGallery, slug, lang,
			s.Config.BasePath, s.Config.Languages, r.URL.Query(),
		)
		data.Title = album.Title
		data.Album = &AlbumView{
			Title:       album.Title,
			Date:        format.Date(album.Date, lang),
			Description: album.Description,
			Images:      images,
			LangLinks:   links,
		}
		data.Pagination = paginate.Links(
			page.Current, page.TotalPages,
			locale.DetailPath(s.Config.BasePath, lang, manifest.CollectionGallery),
			"slug="+url.QueryEscape(album.Slug),
			data.T("pagination.prev"), data.T("pagination.next"),
		)
		s.applyLangLinks(&data, links)
		s.Renderer.Render(w, "album", data)
	}
}

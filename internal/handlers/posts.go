package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/atelier-sol/web/internal/format"
	"github.com/atelier-sol/web/internal/locale"
	"github.com/atelier-sol/web/internal/markdown"
	"github.com/atelier-sol/web/internal/paginate"
	"github.com/atelier-sol/web/internal/sanitize"
	"github.com/atelier-sol/web/internal/translate"
)

// PostList serves the paginated list view of a posts collection (blog or
// news).
func (s *Site) PostList(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, collection+".title")

		posts, err := s.Store.Posts(r.Context(), collection, lang)
		if err != nil {
			data.Error = data.T(collection + ".error")
			s.Renderer.Render(w, "posts", data)
			return
		}

		page := paginate.Paginate(posts, s.Config.PostsPerPage, paginate.PageParam(r.URL.Query()))
		detailPath := locale.DetailPath(s.Config.BasePath, lang, collection)
		cards := make([]PostCard, 0, len(page.Items))
		for _, p := range page.Items {
			cards = append(cards, PostCard{
				Title:   p.Title,
				Date:    format.Date(p.Date, lang),
				Excerpt: p.Excerpt,
				Image:   s.asset(p.CoverImage),
				Href:    detailPath + "?slug=" + url.QueryEscape(p.Slug),
				Label:   data.T("actions.read"),
			})
		}
		data.Posts = cards
		if len(cards) == 0 {
			data.Empty = data.T(collection + ".empty")
		}
		data.Pagination = paginate.Links(
			page.Current, page.TotalPages,
			locale.CollectionPath(s.Config.BasePath, lang, collection), "",
			data.T("pagination.prev"), data.T("pagination.next"),
		)
		s.Renderer.Render(w, "posts", data)
	}
}

// PostDetail serves the detail view of one post, selected by the slug
// query parameter.
func (s *Site) PostDetail(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, ok := s.lang(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data := s.page(r, lang, collection+".title")
		landing := locale.CollectionPath(s.Config.BasePath, lang, collection)

		posts, err := s.Store.Posts(r.Context(), collection, lang)
		if err != nil {
			data.Error = data.T(collection + ".load_error")
			s.Renderer.Render(w, "post", data)
			return
		}

		slug := r.URL.Query().Get("slug")
		idx := -1
		for i, p := range posts {
			if p.Slug == slug {
				idx = i
				break
			}
		}
		if idx < 0 {
			data.NotFound = &NotFoundView{
				Message:  data.T(collection + ".not_found"),
				BackHref: landing,
				BackText: data.T(collection + ".back"),
			}
			s.Renderer.Render(w, "post", data)
			return
		}
		post := posts[idx]

		// Every body passes through the sanitizer, pre-rendered or not.
		raw, pre := post.RawBody()
		if !pre {
			raw = markdown.Render(raw)
		}

		data.Title = post.Title
		data.Post = &PostView{
			Title: post.Title,
			Date:  format.Date(post.Date, lang),
			Image: s.asset(post.CoverImage),
			Body:  template.HTML(sanitize.HTML(raw)),
			LangLinks: s.Resolver.Links(
				r.Context(), collection, slug, lang,
				s.Config.BasePath, s.Config.Languages, r.URL.Query(),
			),
		}
		s.applyLangLinks(&data, data.Post.LangLinks)
		s.Renderer.Render(w, "post", data)
	}
}

// applyLangLinks swaps the naive path-swap header menu for resolver output
// on detail pages, so switching languages lands on the equivalent item.
func (s *Site) applyLangLinks(data *PageData, links []translate.Link) {
	byLang := make(map[string]string, len(links))
	for _, l := range links {
		byLang[l.Lang] = l.Href
	}
	for i := range data.LangMenu {
		if href, ok := byLang[data.LangMenu[i].Lang]; ok && !data.LangMenu[i].Active {
			data.LangMenu[i].Href = href
		}
	}
}

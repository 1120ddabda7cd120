package main

import (
	"flag"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"

	"github.com/atelier-sol/web/internal/config"
	"github.com/atelier-sol/web/internal/handlers"
	"github.com/atelier-sol/web/internal/i18n"
	"github.com/atelier-sol/web/internal/locale"
	"github.com/atelier-sol/web/internal/manifest"
	"github.com/atelier-sol/web/internal/middleware"
	"github.com/atelier-sol/web/internal/translate"
)

func main() {
	var (
		cfgPath string
		addr    string
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "site configuration file")
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	site, err := buildSite(cfg)
	if err != nil {
		log.Fatalf("build site: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           buildRouter(cfg, site),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (dev=%v)", cfg.Addr, cfg.Dev)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func buildSite(cfg config.Config) (*handlers.Site, error) {
	var fetcher manifest.Fetcher
	if cfg.ContentURL != "" {
		fetcher = manifest.NewClient(cfg.ContentURL)
	} else {
		fetcher = manifest.NewDir(cfg.ContentDir)
	}
	store := manifest.NewStore(fetcher)

	bundle, err := i18n.Load(cfg.LocalesDir, cfg.DefaultLang, cfg.Languages)
	if err != nil {
		return nil, err
	}
	renderer, err := handlers.NewRenderer(cfg.TemplatesDir, cfg.Dev)
	if err != nil {
		return nil, err
	}

	return &handlers.Site{
		Config:   cfg,
		Store:    store,
		Fetcher:  fetcher,
		Bundle:   bundle,
		Resolver: translate.NewResolver(store),
		Renderer: renderer,
	}, nil
}

func buildRouter(cfg config.Config, site *handlers.Site) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	// RealIP trusts X-Forwarded-For; only run behind a proxy that sets it.
	r.Use(chiMid.RealIP)
	r.Use(middleware.Logger)
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.Compress(5))
	r.Use(chiMid.Timeout(30 * time.Second))

	// The redirect runs before routing reads the path: every content URL
	// is language-prefixed except the reserved bypass segments.
	r.Use(locale.RedirectMissingPrefix(cfg.BasePath, cfg.Languages, cfg.DefaultLang, locale.DefaultBypass))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(cfg.PublicDir, "assets"))))
	r.Handle("/assets/*", assets)

	if cfg.ContentURL == "" {
		// Local content tree doubles as the manifest origin for browsers.
		content := http.StripPrefix("/content/", http.FileServer(http.Dir(filepath.Join(cfg.ContentDir, "content"))))
		r.Handle("/content/*", content)
		settingsDir := http.StripPrefix("/settings/", http.FileServer(http.Dir(filepath.Join(cfg.ContentDir, "settings"))))
		r.Handle("/settings/*", settingsDir)
	}

	r.Route("/{lang}", func(r chi.Router) {
		r.Get("/", site.Home())
		for _, c := range []string{manifest.CollectionBlog, manifest.CollectionNews} {
			c := c
			r.Get("/"+c, site.PostList(c))
			r.Get("/"+c+"/", site.PostList(c))
			r.Get("/"+c+"/post", site.PostDetail(c))
			r.Get("/"+c+"/post/", site.PostDetail(c))
		}
		r.Get("/gallery", site.GalleryList())
		r.Get("/gallery/", site.GalleryList())
		r.Get("/gallery/album", site.AlbumDetail())
		r.Get("/gallery/album/", site.AlbumDetail())
		r.Get("/offering", site.Offering())
		r.Get("/offering/", site.Offering())
	})

	return r
}

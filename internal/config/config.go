// Package config resolves the site configuration from an optional YAML
// file plus environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atelier-sol/web/internal/locale"
)

// Config is the resolved site configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	BasePath    string `yaml:"base_path"`
	EntryScript string `yaml:"entry_script"`

	Languages   []string `yaml:"languages"`
	DefaultLang string   `yaml:"default_lang"`

	// ContentURL is the origin manifests and settings are fetched from.
	// Empty means serve them from ContentDir on local disk.
	ContentURL string `yaml:"content_url"`
	ContentDir string `yaml:"content_dir"`

	LocalesDir   string `yaml:"locales_dir"`
	TemplatesDir string `yaml:"templates_dir"`
	PublicDir    string `yaml:"public_dir"`

	PostsPerPage  int `yaml:"posts_per_page"`
	ImagesPerPage int `yaml:"images_per_page"`

	Dev bool `yaml:"dev"`
}

// Load reads path when it exists, then applies environment overrides and
// defaults. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("ATELIER_PORT"); v != "" {
		cfg.Addr = ":" + v
	} else if v := os.Getenv("PORT"); v != "" && cfg.Addr == "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ATELIER_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("ATELIER_CONTENT_URL"); v != "" {
		cfg.ContentURL = v
	}
	if os.Getenv("ATELIER_DEV") != "" || os.Getenv("DEV") != "" {
		cfg.Dev = true
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.BasePath == "" && c.EntryScript != "" {
		c.BasePath = locale.BasePathFromScript(c.EntryScript)
	}
	c.BasePath = normalizeBasePath(c.BasePath)
	if len(c.Languages) == 0 {
		c.Languages = []string{"en", "es", "ko", "ja"}
	}
	if c.DefaultLang == "" {
		c.DefaultLang = "en"
	}
	if c.ContentDir == "" {
		c.ContentDir = "."
	}
	if c.LocalesDir == "" {
		c.LocalesDir = "locales"
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = "templates"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.PostsPerPage <= 0 {
		c.PostsPerPage = 4
	}
	if c.ImagesPerPage <= 0 {
		c.ImagesPerPage = 4
	}
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

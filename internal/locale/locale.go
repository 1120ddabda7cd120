// Package locale derives the active language and URL base path from the
// request, keeps every content URL language-prefixed, and builds internal
// links. It runs before anything else reads the path, because it can
// change the effective URL.
package locale

import (
	"net/http"
	"net/url"
	"strings"
)

// EntryScript is the well-known path of the site entry script, used to
// recover the deployment subpath when the site is served under one.
const EntryScript = "assets/js/main.js"

// DefaultBypass lists the reserved first segments that never receive a
// language prefix.
var DefaultBypass = []string{
	"admin", "content", "assets", "settings",
	"healthz", "favicon.ico", "robots.txt",
}

// BasePathFromScript returns the subpath portion of a script URL up to and
// including the entry-script path, so the rest of the system stays
// independent of where the site is mounted. It returns "/" whenever
// resolution fails.
func BasePathFromScript(scriptURL string) string {
	u, err := url.Parse(strings.TrimSpace(scriptURL))
	if err != nil {
		return "/"
	}
	idx := strings.Index(u.Path, EntryScript)
	if idx < 0 {
		return "/"
	}
	base := u.Path[:idx]
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// DetectLanguage returns the first path segment when it is a supported
// language, otherwise the default.
func DetectLanguage(path string, supported []string, def string) string {
	seg := firstSegment(path)
	for _, l := range supported {
		if seg == l {
			return l
		}
	}
	return def
}

// RedirectTarget computes the language-prefixed URL for a path whose first
// segment is neither a supported language nor a bypass segment, preserving
// query and fragment. It returns "" when no redirect is needed.
func RedirectTarget(path, rawQuery, fragment string, supported []string, def string, bypass []string) string {
	seg := firstSegment(path)
	for _, l := range supported {
		if seg == l {
			return ""
		}
	}
	for _, b := range bypass {
		if seg == b {
			return ""
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := "/" + def + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	if fragment != "" {
		target += "#" + fragment
	}
	return target
}

// RedirectMissingPrefix redirects any request missing its language prefix
// to the default-language equivalent. basePath is prepended to redirect
// targets so links stay valid behind a subpath-stripping proxy.
func RedirectMissingPrefix(basePath string, supported []string, def string, bypass []string) func(http.Handler) http.Handler {
	prefix := strings.TrimSuffix(basePath, "/")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			target := RedirectTarget(r.URL.Path, r.URL.RawQuery, "", supported, def, bypass)
			if target == "" {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, prefix+target, http.StatusFound)
		})
	}
}

// CollectionPath builds the landing path of a collection for one language,
// e.g. /en/blog/.
func CollectionPath(basePath, lang, collection string) string {
	return withBase(basePath, lang+"/"+collection+"/")
}

// DetailPath builds the detail-page path of a collection for one language,
// e.g. /en/blog/post/ or /en/gallery/album/.
func DetailPath(basePath, lang, collection string) string {
	seg := "post/"
	if collection == "gallery" {
		seg = "album/"
	}
	return CollectionPath(basePath, lang, collection) + seg
}

// Asset rewrites a manifest asset reference onto the base path. External,
// data and mailto references pass through untouched.
func Asset(basePath, ref string) string {
	if ref == "" {
		return ""
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") || strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "mailto:") {
		return ref
	}
	return withBase(basePath, strings.TrimPrefix(ref, "/"))
}

func withBase(basePath, rest string) string {
	if basePath == "" {
		basePath = "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath + rest
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

package format

import (
	"github.com/atelier-sol/web/internal/manifest"
)

// Date formats a manifest date for display in a locale-friendly form.
// An unparseable value is shown verbatim.
func Date(raw, lang string) string {
	t, ok := manifest.ParseDate(raw)
	if !ok {
		return raw
	}
	switch lang {
	case "ja", "ko":
		return t.Format("2006-01-02")
	case "es":
		return t.Format("02/01/2006")
	default:
		return t.Format("January 2, 2006")
	}
}

// Package settings loads the per-language settings document. Settings are
// cosmetic: any failure degrades to empty defaults and never blocks a page.
package settings

import (
	"context"
	"encoding/json"
	"path"

	"github.com/atelier-sol/web/internal/manifest"
)

// OfferingLink is one external link shown on the offering page.
type OfferingLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Load fetches settings/<lang>.json. An absent or malformed document
// yields an empty list, silently.
func Load(ctx context.Context, fetcher manifest.Fetcher, lang string) []OfferingLink {
	raw, err := fetcher.Fetch(ctx, path.Join("settings", lang+".json"))
	if err != nil {
		return nil
	}
	var doc struct {
		OfferingLinks []OfferingLink `json:"offering_links"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc.OfferingLinks
}

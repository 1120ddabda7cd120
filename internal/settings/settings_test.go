package settings

import (
	"context"
	"os"
	"testing"
)

type docFetcher map[string]string

func (f docFetcher) Fetch(_ context.Context, p string) ([]byte, error) {
	doc, ok := f[p]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(doc), nil
}

func TestLoad(t *testing.T) {
	f := docFetcher{
		"settings/en.json": `{"offering_links": [
			{"url": "https://example.com/a", "label": "A"},
			{"url": "https://example.com/b", "label": "B"}
		]}`,
	}
	links := Load(context.Background(), f, "en")
	if len(links) != 2 || links[0].Label != "A" || links[1].URL != "https://example.com/b" {
		t.Fatalf("unexpected links %+v", links)
	}
}

func TestLoadDegradesSilently(t *testing.T) {
	if links := Load(context.Background(), docFetcher{}, "en"); links != nil {
		t.Fatalf("missing document should yield nil, got %+v", links)
	}

	f := docFetcher{"settings/en.json": `{{not json`}
	if links := Load(context.Background(), f, "en"); links != nil {
		t.Fatalf("malformed document should yield nil, got %+v", links)
	}

	f = docFetcher{"settings/en.json": `{"offering_links": "nope"}`}
	if links := Load(context.Background(), f, "en"); links != nil {
		t.Fatalf("non-array list should yield nil, got %+v", links)
	}
}

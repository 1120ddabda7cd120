package manifest

import (
	"encoding/json"
	"testing"
)

func post(id, slug, lang, status, date string) Post {
	return Post{Record: Record{ID: id, Slug: slug, Lang: lang, Status: status, Date: date}}
}

func TestFilterPublished(t *testing.T) {
	posts := []Post{
		post("1", "a", "en", StatusPublished, "2026-01-01"),
		post("2", "b", "en", "draft", "2026-01-02"),
		post("3", "c", "es", StatusPublished, "2026-01-03"),
		post("4", "d", "en", StatusPublished, "2026-01-04"),
	}
	got := FilterPublished(posts, "en")
	if len(got) != 2 || got[0].Slug != "a" || got[1].Slug != "d" {
		t.Fatalf("unexpected filter result %+v", got)
	}
}

func TestSortByDateDesc(t *testing.T) {
	posts := []Post{
		post("1", "old", "en", StatusPublished, "2024-01-01"),
		post("2", "bad", "en", StatusPublished, "not a date"),
		post("3", "new", "en", StatusPublished, "2024-03-01"),
	}
	got := SortByDateDesc(posts)
	want := []string{"new", "old", "bad"}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("position %d: got %q, want %q (full: %+v)", i, got[i].Slug, slug, got)
		}
	}
	// input untouched
	if posts[0].Slug != "old" {
		t.Fatalf("input slice was reordered: %+v", posts)
	}
}

func TestSortByDateDescStableAmongUnparseable(t *testing.T) {
	posts := []Post{
		post("1", "x", "en", StatusPublished, ""),
		post("2", "y", "en", StatusPublished, "???"),
		post("3", "z", "en", StatusPublished, ""),
	}
	got := SortByDateDesc(posts)
	if got[0].Slug != "x" || got[1].Slug != "y" || got[2].Slug != "z" {
		t.Fatalf("unparseable dates must keep input order: %+v", got)
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, value := range []string{"2026-05-12", "2026-05-12T10:30:00Z", "2026/05/12"} {
		if _, ok := ParseDate(value); !ok {
			t.Fatalf("expected %q to parse", value)
		}
	}
	for _, value := range []string{"", "  ", "yesterday", "12-05-2026"} {
		if _, ok := ParseDate(value); ok {
			t.Fatalf("expected %q not to parse", value)
		}
	}
}

func TestRawBodyPrecedence(t *testing.T) {
	p := Post{BodyHTML: "<p>h</p>", BodyMarkdown: "# m", Body: "b"}
	if raw, pre := p.RawBody(); raw != "<p>h</p>" || !pre {
		t.Fatalf("got %q pre=%v", raw, pre)
	}
	p = Post{BodyMarkdown: "# m", Body: "b"}
	if raw, pre := p.RawBody(); raw != "# m" || pre {
		t.Fatalf("got %q pre=%v", raw, pre)
	}
	p = Post{Body: "b"}
	if raw, pre := p.RawBody(); raw != "b" || pre {
		t.Fatalf("got %q pre=%v", raw, pre)
	}
}

func TestManifestUnmarshalNormalizes(t *testing.T) {
	var m Manifest
	if err := json.Unmarshal([]byte(`{}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Posts == nil || len(m.Posts) != 0 || m.Albums == nil || len(m.Albums) != 0 {
		t.Fatalf("missing lists should normalize to empty: %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"posts": "nope", "albums": 7}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Posts) != 0 || len(m.Albums) != 0 {
		t.Fatalf("non-array lists should normalize to empty: %+v", m)
	}

	if err := json.Unmarshal([]byte(`{"posts": [{"slug": "a"}]}`), &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Posts) != 1 || m.Posts[0].Slug != "a" {
		t.Fatalf("unexpected posts %+v", m.Posts)
	}

	if err := json.Unmarshal([]byte(`not json`), &m); err == nil {
		t.Fatalf("malformed document should error")
	}
}

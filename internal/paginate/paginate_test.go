package paginate

import (
	"net/url"
	"strings"
	"testing"
)

func TestPaginateSlices(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	p := Paginate(items, 4, 1)
	if p.TotalPages != 3 || p.Current != 1 {
		t.Fatalf("unexpected page shape %+v", p)
	}
	if len(p.Items) != 4 || p.Items[0] != 1 || p.Items[3] != 4 {
		t.Fatalf("unexpected first page %v", p.Items)
	}

	p = Paginate(items, 4, 3)
	if len(p.Items) != 1 || p.Items[0] != 9 {
		t.Fatalf("unexpected last page %v", p.Items)
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	p := Paginate(items, 2, 0)
	if p.Current != 1 {
		t.Fatalf("requested 0, got page %d", p.Current)
	}
	p = Paginate(items, 2, -5)
	if p.Current != 1 {
		t.Fatalf("requested -5, got page %d", p.Current)
	}
	p = Paginate(items, 2, 99)
	if p.Current != 2 || len(p.Items) != 1 || p.Items[0] != "c" {
		t.Fatalf("requested 99, got %+v", p)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]int(nil), 4, 3)
	if p.TotalPages != 1 || p.Current != 1 || len(p.Items) != 0 {
		t.Fatalf("unexpected empty result %+v", p)
	}
}

func TestPageParam(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=abc", 1},
		{"page=0", 1},
		{"page=-2", 1},
	}
	for _, c := range cases {
		q, _ := url.ParseQuery(c.raw)
		if got := PageParam(q); got != c.want {
			t.Fatalf("PageParam(%q) = %d, want %d", c.raw, got, c.want)
		}
	}
}

// labels flattens the control for comparison: page numbers as digits,
// ellipses as "…", prev/next by their given labels.
func labels(links []Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, l.Label)
	}
	return strings.Join(parts, " ")
}

func TestLinksSinglePage(t *testing.T) {
	if got := Links(1, 1, "/en/blog/", "", "prev", "next"); got != nil {
		t.Fatalf("expected no links for one page, got %v", got)
	}
	if got := Links(1, 0, "/en/blog/", "", "prev", "next"); got != nil {
		t.Fatalf("expected no links for zero pages, got %v", got)
	}
}

func TestLinksWindowing(t *testing.T) {
	cases := []struct {
		current, total int
		want           string
	}{
		{1, 5, "prev 1 2 3 4 5 next"},
		{2, 7, "prev 1 2 3 4 5 6 7 next"},
		{1, 10, "prev 1 2 … 10 next"},
		{4, 10, "prev 1 … 3 4 5 … 10 next"},
		{5, 10, "prev 1 … 4 5 6 … 10 next"},
		{8, 10, "prev 1 … 7 8 9 10 next"},
		{10, 10, "prev 1 … 9 10 next"},
		{3, 10, "prev 1 2 3 4 … 10 next"},
	}
	for _, c := range cases {
		got := labels(Links(c.current, c.total, "/en/blog/", "", "prev", "next"))
		if got != c.want {
			t.Fatalf("Links(%d, %d): got %q, want %q", c.current, c.total, got, c.want)
		}
	}
}

func TestLinksEndpoints(t *testing.T) {
	links := Links(1, 3, "/en/blog/", "", "prev", "next")
	if !links[0].Disabled || links[0].Href != "" {
		t.Fatalf("prev on page 1 should be disabled: %+v", links[0])
	}
	last := links[len(links)-1]
	if last.Disabled || last.Href != "/en/blog/?page=2" {
		t.Fatalf("unexpected next link %+v", last)
	}

	links = Links(3, 3, "/en/blog/", "", "prev", "next")
	if links[0].Disabled || links[0].Href != "/en/blog/?page=2" {
		t.Fatalf("unexpected prev link %+v", links[0])
	}
	if !links[len(links)-1].Disabled {
		t.Fatalf("next on last page should be disabled")
	}
}

func TestLinksCurrentHasNoHref(t *testing.T) {
	links := Links(2, 3, "/en/blog/", "", "prev", "next")
	for _, l := range links {
		if l.Current && l.Href != "" {
			t.Fatalf("current page should not link to itself: %+v", l)
		}
		if !l.Current && !l.Disabled && !l.Ellipsis && l.Href == "" {
			t.Fatalf("navigable link missing href: %+v", l)
		}
	}
}

func TestLinksCarryExtraQuery(t *testing.T) {
	links := Links(1, 2, "/en/gallery/album/", "slug=spring-2026", "prev", "next")
	last := links[len(links)-1]
	if last.Href != "/en/gallery/album/?slug=spring-2026&page=2" {
		t.Fatalf("unexpected href %q", last.Href)
	}
}

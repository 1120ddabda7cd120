package paginate

import (
	"fmt"
	"net/url"
	"strconv"
)

// Page is one slice of a larger sequence. Current is always within
// [1, TotalPages] no matter what page was requested.
type Page[T any] struct {
	Items      []T
	TotalPages int
	Current    int
}

// Paginate slices items for the requested page. Out-of-range requests
// (zero, negative, past the end) clamp instead of erroring.
func Paginate[T any](items []T, perPage, requested int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	total := (len(items) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	page := requested
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{Items: items[start:end], TotalPages: total, Current: page}
}

// PageParam reads the "page" query parameter as a positive integer,
// defaulting to 1 for anything missing, non-numeric or non-positive.
func PageParam(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Link is one entry of a pagination control.
type Link struct {
	Label    string
	Href     string
	Page     int
	Current  bool
	Disabled bool
	Ellipsis bool
}

// Links builds the navigation list for a paginated view: a previous link
// (disabled on page 1), a windowed page-number run, and a next link
// (disabled on the last page). Single-page views render no navigation.
//
// With more than seven pages the run always includes page 1 and the last
// page, up to three consecutive pages centered on the current one, and an
// ellipsis whenever the window skips page 2 or totalPages-1.
func Links(current, total int, basePath, extraQuery, prevLabel, nextLabel string) []Link {
	if total <= 1 {
		return nil
	}

	href := func(page int) string {
		if extraQuery != "" {
			return fmt.Sprintf("%s?%s&page=%d", basePath, extraQuery, page)
		}
		return fmt.Sprintf("%s?page=%d", basePath, page)
	}

	links := make([]Link, 0, total+4)

	prev := Link{Label: prevLabel, Disabled: current <= 1}
	if !prev.Disabled {
		prev.Page = current - 1
		prev.Href = href(current - 1)
	}
	links = append(links, prev)

	number := func(page int) Link {
		l := Link{Label: strconv.Itoa(page), Page: page, Current: page == current}
		if !l.Current {
			l.Href = href(page)
		}
		return l
	}

	if total <= 7 {
		for p := 1; p <= total; p++ {
			links = append(links, number(p))
		}
	} else {
		links = append(links, number(1))
		if current > 3 {
			links = append(links, Link{Label: "…", Ellipsis: true})
		}
		start := current - 1
		if start < 2 {
			start = 2
		}
		end := current + 1
		if end > total-1 {
			end = total - 1
		}
		for p := start; p <= end; p++ {
			links = append(links, number(p))
		}
		if current < total-2 {
			links = append(links, Link{Label: "…", Ellipsis: true})
		}
		links = append(links, number(total))
	}

	next := Link{Label: nextLabel, Disabled: current >= total}
	if !next.Disabled {
		next.Page = current + 1
		next.Href = href(current + 1)
	}
	links = append(links, next)

	return links
}

// Package sanitize is the single trust boundary between author-supplied
// markup and the page. Everything rendered from a manifest body, whether
// pre-rendered HTML or renderer output, goes through HTML before display.
package sanitize

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "strong", "em",
		"ul", "ol", "li",
		"a",
		"h2", "h3", "h4",
		"blockquote", "code", "pre",
	)
	p.AllowAttrs("href", "title", "rel", "target").OnElements("a")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	return p
}

// HTML reduces arbitrary markup to the allowed subset. Disallowed elements
// are unwrapped rather than deleted, keeping their text content; script and
// style content is discarded entirely. Every surviving anchor is forced to
// carry rel="noopener noreferrer" and a non-empty target, regardless of
// what the author supplied.
func HTML(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return hardenLinks(policy.Sanitize(input))
}

// hardenLinks rewrites every anchor in the sanitized fragment. bluemonday
// only adds target/noopener to fully qualified links; the contract here is
// unconditional, so the fragment gets one more pass.
func hardenLinks(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	body := findNode(doc, atom.Body)
	if body == nil {
		return fragment
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			target := "_blank"
			kept := n.Attr[:0]
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "rel":
					// replaced below
				case "target":
					if a.Val != "" {
						target = a.Val
					}
				default:
					kept = append(kept, a)
				}
			}
			n.Attr = append(kept,
				html.Attribute{Key: "rel", Val: "noopener noreferrer"},
				html.Attribute{Key: "target", Val: target},
			)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return fragment
		}
	}
	return buf.String()
}

func findNode(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, a); found != nil {
			return found
		}
	}
	return nil
}

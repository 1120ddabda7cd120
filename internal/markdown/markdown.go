// Package markdown converts the restricted Markdown subset used by
// authored bodies into HTML. The output is untrusted and must pass
// through the sanitizer before reaching a page.
package markdown

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
	linkRe   = regexp.MustCompile(`\[([^\]]+)]\(([^)]+)\)`)
)

// Render walks the input line by line in a single pass. Headings map one
// level down (# becomes h2), bullet lines collect into a flat list, blank
// lines close the open paragraph and list, and image syntax is dropped
// outright: images travel as structured manifest fields, not inline.
func Render(input string) string {
	if input == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(input, "\r", ""), "\n")

	var blocks []string
	var paragraph []string
	var listItems []string

	flushParagraph := func() {
		if len(paragraph) > 0 {
			blocks = append(blocks, "<p>"+renderInline(strings.Join(paragraph, " "))+"</p>")
			paragraph = nil
		}
	}
	flushList := func() {
		if len(listItems) > 0 {
			var b strings.Builder
			b.WriteString("<ul>")
			for _, item := range listItems {
				b.WriteString("<li>" + renderInline(item) + "</li>")
			}
			b.WriteString("</ul>")
			blocks = append(blocks, b.String())
			listItems = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flushParagraph()
			flushList()
		case strings.HasPrefix(trimmed, "!["):
			// dropped
		case strings.HasPrefix(trimmed, "### "):
			flushParagraph()
			flushList()
			blocks = append(blocks, "<h4>"+renderInline(trimmed[4:])+"</h4>")
		case strings.HasPrefix(trimmed, "## "):
			flushParagraph()
			flushList()
			blocks = append(blocks, "<h3>"+renderInline(trimmed[3:])+"</h3>")
		case strings.HasPrefix(trimmed, "# "):
			flushParagraph()
			flushList()
			blocks = append(blocks, "<h2>"+renderInline(trimmed[2:])+"</h2>")
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			flushParagraph()
			listItems = append(listItems, trimmed[2:])
		default:
			paragraph = append(paragraph, trimmed)
		}
	}
	flushParagraph()
	flushList()

	return strings.Join(blocks, "")
}

// renderInline applies the inline substitutions in fixed order. Escaping
// runs first so later substitutions never re-escape produced markup, and
// bold resolves before italic so ** is never parsed as two italics.
func renderInline(text string) string {
	out := escape(text)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = codeRe.ReplaceAllString(out, "<code>$1</code>")
	out = linkRe.ReplaceAllString(out, `<a href="$2">$1</a>`)
	return out
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

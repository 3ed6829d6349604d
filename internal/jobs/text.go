package jobs

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var markup = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// CleanText collapses runs of whitespace (including NBSP) to single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// PlainText converts summary text to plain lines. Markup is parsed and only
// its text kept; model reasoning wrapped in <think> is dropped. Line breaks
// between paragraphs survive, whitespace inside a line is collapsed.
func PlainText(s string) string {
	if markup.MatchString(s) {
		s = stripMarkup(s)
	}

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = CleanText(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return markup.ReplaceAllString(s, " ")
	}
	doc.Find("think, script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})
	return doc.Text()
}

// Package htmlutil cleans feed-provided HTML before it is translated,
// classified, or summarized.
package htmlutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"ainews/utils/textutil"
)

var (
	sanitizePolicy = newSanitizePolicy()
	spaceRe        = regexp.MustCompile(`[ \t\r\f]+`)
	newlineRe      = regexp.MustCompile(`\n{3,}`)
)

func newSanitizePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "figure", "figcaption")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	return p
}

// SanitizeHTML strips scripts and unsafe markup but keeps structural HTML.
func SanitizeHTML(raw string) string {
	return sanitizePolicy.Sanitize(raw)
}

// ExtractText converts feed HTML into plain text. Payloads without markup are
// passed through with whitespace normalized.
func ExtractText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		// Fall back to the sanitizer's text-only policy.
		return normalizeWhitespace(bluemonday.StrictPolicy().Sanitize(trimmed))
	}
	doc.Find("script, style, noscript, iframe").Remove()
	return normalizeWhitespace(doc.Text())
}

// Summarize derives a bounded-length plain-text summary from feed HTML.
func Summarize(raw string, maxRunes int) string {
	text := ExtractText(raw)
	return textutil.TruncateAtBreak(text, maxRunes)
}

// FirstParagraph returns the first non-empty paragraph of plain text.
func FirstParagraph(text string) string {
	for _, p := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(p); t != "" {
			return t
		}
	}
	return ""
}

func normalizeWhitespace(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = newlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

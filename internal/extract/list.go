package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"copenhagen-vendor-scraper/internal/document"
)

// CollectList gathers entries from a set of candidate locations, trims and
// dedupes them, then widens the result with vocabulary keywords found in the
// full page text. Widening only adds keywords not already present; it is a
// recall-boosting heuristic, not authoritative. Insertion order is preserved.
func CollectList(d *document.Document, selectors []string, vocabulary []string) []string {
	seen := make(map[string]bool)
	var items []string

	add := func(value string) {
		value = strings.TrimSpace(value)
		key := strings.ToLower(value)
		if value == "" || seen[key] {
			return
		}
		seen[key] = true
		items = append(items, value)
	}

	for _, selector := range selectors {
		d.Find(selector).Each(func(_ int, s *goquery.Selection) {
			add(s.Text())
		})
	}

	text := d.BodyText()
	for _, keyword := range vocabulary {
		if strings.Contains(text, strings.ToLower(keyword)) {
			add(keyword)
		}
	}

	return items
}

// VocabularyMatches returns the vocabulary keywords present in the page text,
// in vocabulary order. Used for fields whose only source is keyword presence.
func VocabularyMatches(d *document.Document, vocabulary []string) []string {
	text := d.BodyText()
	var matches []string
	for _, keyword := range vocabulary {
		if strings.Contains(text, strings.ToLower(keyword)) {
			matches = append(matches, keyword)
		}
	}
	return matches
}

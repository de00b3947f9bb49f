package extract

import (
	"regexp"
	"strings"

	"copenhagen-vendor-scraper/internal/document"
)

// contextualPrice requires a currency-indicative token next to the number so
// a bare digit run (a year, a postcode) is not mistaken for a price.
var contextualPrice = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:DKK|EUR|kr)`)

// Price tries the selector chain first and falls back to a contextual scan of
// the page text. Absent if neither matches.
func Price(d *document.Document, selectors []string) string {
	for _, selector := range selectors {
		if value := strings.TrimSpace(d.Find(selector).First().Text()); value != "" {
			return value
		}
	}
	if m := contextualPrice.FindStringSubmatch(d.BodyText()); m != nil {
		return m[1] + " DKK"
	}
	return ""
}

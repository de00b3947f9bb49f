// Package extract holds the field extractors: pure functions that map a
// parsed document to one raw field value, trying strategies in priority
// order. An empty result always means "not found", never a valid empty value.
package extract

import (
	"strings"

	"copenhagen-vendor-scraper/internal/document"
)

// Strategy produces one candidate value from a document. An empty string
// means the strategy found nothing and the next one should be tried.
type Strategy func(d *document.Document) string

// FirstMatch evaluates strategies in order and returns the first non-empty
// trimmed result. Strategies after the first hit are never evaluated.
func FirstMatch(d *document.Document, strategies []Strategy) string {
	for _, strategy := range strategies {
		if value := strings.TrimSpace(strategy(d)); value != "" {
			return value
		}
	}
	return ""
}

// Selector returns a strategy reading the text of the first node matching a
// CSS selector.
func Selector(selector string) Strategy {
	return func(d *document.Document) string {
		return d.Find(selector).First().Text()
	}
}

// Attr returns a strategy reading an attribute of the first node matching a
// CSS selector.
func Attr(selector, attribute string) Strategy {
	return func(d *document.Document) string {
		value, _ := d.Find(selector).First().Attr(attribute)
		return value
	}
}

// Title returns a strategy reading the page title.
func Title() Strategy {
	return func(d *document.Document) string {
		return d.Title()
	}
}

// SelectorChain converts a list of CSS selectors into selector strategies,
// preserving order.
func SelectorChain(selectors ...string) []Strategy {
	strategies := make([]Strategy, 0, len(selectors))
	for _, selector := range selectors {
		strategies = append(strategies, Selector(selector))
	}
	return strategies
}

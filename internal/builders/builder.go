// Package builders assembles one raw vendor record per document. Each
// category has its own builder invoking the relevant subset of field
// extractors against the same document. A builder yields nothing when the
// document lacks the minimal required fields; such drops happen here, at the
// source, and never reach the normalization stage.
package builders

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

// Build runs the builder matching the classified category. It returns nil
// when the document did not yield a minimally complete record.
func Build(category types.VendorCategory, d *document.Document, logger types.Logger) types.Record {
	switch category {
	case types.CategoryVenue:
		if r := BuildVenue(d, logger); r != nil {
			return r
		}
	case types.CategoryCatering:
		if r := BuildCatering(d, logger); r != nil {
			return r
		}
	case types.CategoryTransport:
		if r := BuildTransport(d, logger); r != nil {
			return r
		}
	case types.CategoryActivities:
		if r := BuildActivities(d, logger); r != nil {
			return r
		}
	case types.CategoryAVEquipment:
		if r := BuildAVEquipment(d, logger); r != nil {
			return r
		}
	}
	return nil
}

// basicNameStrategies is the fallback chain shared by the non-venue builders.
var basicNameStrategies = []extract.Strategy{
	extract.Selector("h1"),
	extract.Title(),
}

var ratingValue = regexp.MustCompile(`(\d+\.?\d*)`)

// extractRating parses the first decimal out of the rating selector chain.
// Zero means no rating was found.
func extractRating(d *document.Document) float64 {
	text := extract.FirstMatch(d, extract.SelectorChain(`[itemprop="ratingValue"]`, ".rating"))
	if text == "" {
		return 0
	}
	m := ratingValue.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	rating, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return rating
}

// extractImages collects up to limit image sources, resolved to absolute URLs.
func extractImages(d *document.Document, limit int) []string {
	var images []string
	d.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if ok && strings.TrimSpace(src) != "" {
			images = append(images, d.AbsoluteURL(src))
		}
		return len(images) < limit
	})
	return images
}

// Package classifier decides which vendor schema a fetched page belongs to.
//
// Classification is deterministic and pure: the URL is checked against the
// category keyword sets first, then the visible body text, both in the same
// fixed priority order (catering, transport, activities, av-equipment,
// venue). The first matching category wins; there is no scoring. A page
// matching nothing defaults to Venue.
package classifier

import (
	"strings"

	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/types"
)

type keywordSet struct {
	category types.VendorCategory
	words    []string
}

// urlKeywords are checked against the lowercased URL, in priority order.
var urlKeywords = []keywordSet{
	{types.CategoryCatering, []string{"catering", "cater", "food", "restaurant"}},
	{types.CategoryTransport, []string{"transport", "taxi", "bus", "limousine", "chauffeur"}},
	{types.CategoryActivities, []string{"activity", "team-building", "entertainment", "eventyr", "teambuilding"}},
	{types.CategoryAVEquipment, []string{"av", "sound", "light", "equipment", "rental", "projector"}},
	{types.CategoryVenue, []string{"venue", "meeting", "conference", "hall", "room"}},
}

// bodyKeywords are checked against the visible page text when no URL keyword
// matched. Venue has no body set: it is the default.
var bodyKeywords = []keywordSet{
	{types.CategoryCatering, []string{"catering", "menu", "cuisine", "buffet"}},
	{types.CategoryTransport, []string{"transport", "vehicle", "chauffeur", "pickup"}},
	{types.CategoryActivities, []string{"team building", "activity", "workshop", "experience"}},
	{types.CategoryAVEquipment, []string{"sound system", "projector", "microphone", "av equipment"}},
}

// Classify resolves the vendor category for a page. The URL check always has
// priority over the body-text check, and an empty document with an ambiguous
// URL resolves to Venue.
func Classify(pageURL string, doc *document.Document) types.VendorCategory {
	lowerURL := strings.ToLower(pageURL)
	for _, set := range urlKeywords {
		for _, word := range set.words {
			if strings.Contains(lowerURL, word) {
				return set.category
			}
		}
	}

	if doc != nil {
		text := doc.BodyText()
		for _, set := range bodyKeywords {
			for _, word := range set.words {
				if strings.Contains(text, word) {
					return set.category
				}
			}
		}
	}

	return types.CategoryVenue
}

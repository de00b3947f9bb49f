package builders

import (
	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

var activityVocabulary = []string{"team-building", "cooking", "escape-room", "workshop", "networking", "sports"}

// BuildActivities extracts an activities/entertainment record. Only the name
// is required.
func BuildActivities(d *document.Document, logger types.Logger) *types.Activities {
	a := &types.Activities{}
	a.VendorType = types.CategoryActivities.String()
	a.URLSource = d.URL

	a.Name = extract.FirstMatch(d, basicNameStrategies)
	if a.Name == "" {
		logger.Warnf("Activities candidate dropped, missing name: %s", d.URL)
		return nil
	}

	a.AddressFull = extract.FirstMatch(d, extract.SelectorChain("address"))

	a.ActivityTypes = extract.VocabularyMatches(d, activityVocabulary)
	a.PricePerPerson = extract.Price(d, nil)
	a.Phone = extract.Phone(d)

	return a
}

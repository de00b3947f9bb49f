package builders

import (
	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

var vehicleVocabulary = []string{"bus", "limousine", "minivan", "car", "van", "coach"}

// BuildTransport extracts a transportation record. Only the name is required.
func BuildTransport(d *document.Document, logger types.Logger) *types.Transport {
	t := &types.Transport{}
	t.VendorType = types.CategoryTransport.String()
	t.URLSource = d.URL

	t.Name = extract.FirstMatch(d, basicNameStrategies)
	if t.Name == "" {
		logger.Warnf("Transport candidate dropped, missing name: %s", d.URL)
		return nil
	}

	t.AddressFull = extract.FirstMatch(d, extract.SelectorChain("address", ".address"))

	t.VehicleTypes = extract.VocabularyMatches(d, vehicleVocabulary)
	t.PricePerHour = extract.Price(d, nil)
	t.Phone = extract.Phone(d)

	return t
}

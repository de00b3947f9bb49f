package builders

import (
	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

var cateringAddressStrategies = append(extract.SelectorChain(
	`[itemprop="address"]`,
	"address",
	".address",
), extract.JSONLDAddress)

var (
	cuisineVocabulary = []string{"italian", "french", "asian", "danish", "vegetarian", "vegan", "mediterranean"}
	serviceVocabulary = []string{"buffet", "plated", "cocktail", "canapes", "breakfast", "lunch", "dinner"}
)

// BuildCatering extracts a catering record. Only the name is required; the
// cuisine and service lists come from keyword presence over the page text.
func BuildCatering(d *document.Document, logger types.Logger) *types.Catering {
	c := &types.Catering{}
	c.VendorType = types.CategoryCatering.String()
	c.URLSource = d.URL

	c.Name = extract.FirstMatch(d, basicNameStrategies)
	if c.Name == "" {
		logger.Warnf("Catering candidate dropped, missing name: %s", d.URL)
		return nil
	}

	c.AddressFull = extract.FirstMatch(d, cateringAddressStrategies)
	c.Description = extract.FirstMatch(d, []extract.Strategy{extract.Attr(`meta[name="description"]`, "content")})

	c.CuisineTypes = extract.VocabularyMatches(d, cuisineVocabulary)
	c.ServiceTypes = extract.VocabularyMatches(d, serviceVocabulary)

	c.PricePerPerson = extract.Price(d, nil)

	c.Phone = extract.Phone(d)
	c.Email = extract.Email(d)
	c.Images = extractImages(d, 5)

	return c
}

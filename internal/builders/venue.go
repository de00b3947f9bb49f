package builders

import (
	"sort"

	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

// Venue extraction strategy chains, in descending specificity. The chains are
// data: tests enumerate them independently of the control flow.
var (
	venueNameStrategies = []extract.Strategy{
		extract.Selector("h1.venue-name"),
		extract.Selector("h1"),
		extract.Title(),
	}

	venueAddressStrategies = append(extract.SelectorChain(
		"div.address",
		"span.address",
		`[itemprop="address"]`,
		".venue-address",
		"address",
		`[itemprop="streetAddress"]`,
	), extract.JSONLDAddress)

	venueDescriptionStrategies = []extract.Strategy{
		extract.Attr(`meta[name="description"]`, "content"),
		extract.Selector(".description"),
		extract.Selector(".venue-description"),
	}

	venueCapacitySelectors = []string{".capacity", `[class*="capacity"]`}

	venuePriceSelectors = []string{".price", ".package-price", `[itemprop="price"]`, ".starting-price"}

	venueEventTypeSelectors = []string{".event-types li", ".event-types span", "[data-event-type]", ".tags"}

	venueAmenitySelectors = []string{".amenities li", ".amenities span", ".features li"}
)

// eventTypeVocabulary widens the extracted event-type list with event kinds
// mentioned anywhere on the page.
var eventTypeVocabulary = []string{
	"Conference", "Gala", "Dinner", "Product Launch",
	"Seminar", "Workshop", "Networking", "Exhibition",
}

// Bilingual keyword sets for the venue boolean signals.
var (
	avPositive      = []string{"in-house av", "av equipment", "yes", "available", "included", "in-house", "ja", "medfølger"}
	avNegative      = []string{"no av", "not available", "not included", "nej"}
	parkingPositive = []string{"parking", "parkeringsplads"}
	parkingNegative = []string{"no parking", "ingen parkering"}
	wifiPositive    = []string{"wifi", "wi-fi"}
	wifiNegative    = []string{"no wifi", "ingen wifi"}
	accessPositive  = []string{"accessible", "tilgængelig", "wheelchair"}
	accessNegative  = []string{"not accessible", "ikke tilgængelig"}
)

var roomMarkers = []string{"meeting rooms", "meeting room", "rooms", "room", "lokaler", "lokale"}

// BuildVenue extracts a venue record. Both name and address_full are required
// at the builder: a candidate missing either is logged and dropped here so
// malformed documents never reach normalization. The in-house A/V signal is
// kept tri-state; the normalization stage collapses it.
func BuildVenue(d *document.Document, logger types.Logger) *types.Venue {
	v := &types.Venue{}
	v.VendorType = types.CategoryVenue.String()
	v.URLSource = d.URL

	v.Name = extract.FirstMatch(d, venueNameStrategies)
	v.AddressFull = extract.FirstMatch(d, venueAddressStrategies)
	if v.Name == "" || v.AddressFull == "" {
		logger.Warnf("Venue candidate dropped, missing name or address: %s", d.URL)
		return nil
	}

	v.Description = extract.FirstMatch(d, venueDescriptionStrategies)

	if capacityText := extract.FirstMatch(d, extract.SelectorChain(venueCapacitySelectors...)); capacityText != "" {
		v.CapacityMinMax = extract.NumericRange(capacityText)
	}
	v.NumberOfRooms = extract.FirstNumberNear(d.BodyText(), roomMarkers)

	// The widened event-type set is sorted for stable output; the other list
	// fields keep extraction order.
	v.EventTypes = sortedUnique(extract.CollectList(d, venueEventTypeSelectors, eventTypeVocabulary))
	v.Amenities = extract.CollectList(d, venueAmenitySelectors, nil)

	v.BasePackagePrice = extract.Price(d, venuePriceSelectors)

	text := d.BodyText()
	v.AVSignal = extract.BoolSignal(text, avPositive, avNegative)
	v.ParkingAvailable = extract.BoolSignal(text, parkingPositive, parkingNegative).Bool()
	v.WifiAvailable = extract.BoolSignal(text, wifiPositive, wifiNegative).Bool()
	v.Accessibility = extract.BoolSignal(text, accessPositive, accessNegative).Bool()

	v.Phone = extract.FirstMatch(d, []extract.Strategy{
		extract.Selector(`[itemprop="telephone"]`),
		extract.Phone,
	})
	v.Email = extract.FirstMatch(d, []extract.Strategy{
		extract.Selector(`[itemprop="email"]`),
		extract.Email,
	})
	if v.Website = extract.FirstMatch(d, []extract.Strategy{extract.Attr(`[itemprop="url"]`, "content")}); v.Website == "" {
		v.Website = d.URL
	}

	v.Images = extractImages(d, 10)
	v.Rating = extractRating(d)

	return v
}

// sortedUnique sorts a list in place and returns it. Duplicates were already
// removed at collection.
func sortedUnique(items []string) []string {
	sort.Strings(items)
	return items
}

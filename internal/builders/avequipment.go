package builders

import (
	"copenhagen-vendor-scraper/internal/document"
	"copenhagen-vendor-scraper/internal/extract"
	"copenhagen-vendor-scraper/internal/types"
)

var equipmentVocabulary = []string{"projector", "sound system", "microphone", "screen", "speaker", "lighting"}

// Bilingual keyword sets for the A/V rental service signals.
var (
	deliveryPositive = []string{"delivery", "levering"}
	deliveryNegative = []string{"no delivery", "ingen levering"}
	setupPositive    = []string{"setup", "opsætning"}
	setupNegative    = []string{"no setup"}
	supportPositive  = []string{"support", "teknisk"}
	supportNegative  = []string{"no support"}
)

// BuildAVEquipment extracts an A/V equipment rental record. Only the name is
// required. Unlike the venue builder this one collapses unknown boolean
// signals to false immediately.
func BuildAVEquipment(d *document.Document, logger types.Logger) *types.AVEquipment {
	a := &types.AVEquipment{}
	a.VendorType = types.CategoryAVEquipment.String()
	a.URLSource = d.URL

	a.Name = extract.FirstMatch(d, basicNameStrategies)
	if a.Name == "" {
		logger.Warnf("AV equipment candidate dropped, missing name: %s", d.URL)
		return nil
	}

	a.AddressFull = extract.FirstMatch(d, extract.SelectorChain("address"))

	a.EquipmentTypes = extract.VocabularyMatches(d, equipmentVocabulary)

	text := d.BodyText()
	a.DeliveryAvailable = extract.BoolSignal(text, deliveryPositive, deliveryNegative).Bool()
	a.SetupService = extract.BoolSignal(text, setupPositive, setupNegative).Bool()
	a.TechnicalSupport = extract.BoolSignal(text, supportPositive, supportNegative).Bool()

	a.PricePerDay = extract.Price(d, nil)
	a.Phone = extract.Phone(d)

	return a
}

// Package pipeline holds the normalization and validation stages. Both are
// pure over their record and safe to run concurrently across documents:
// neither touches process-wide state.
package pipeline

import (
	"regexp"
	"strings"

	"copenhagen-vendor-scraper/internal/types"
)

var (
	priceValue = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(DKK|EUR|USD|kr|€|\$)?`)
	digitRuns  = regexp.MustCompile(`\d+`)
	listSplit  = regexp.MustCompile(`[,;|]`)
)

// Normalize cleans a raw record's free-text fields in place and returns it.
// It is total: whenever a sub-pattern does not match, the original value is
// kept rather than erroring.
func Normalize(rec types.Record) types.Record {
	switch r := rec.(type) {
	case *types.Venue:
		r.BasePackagePrice = CleanPrice(r.BasePackagePrice)
		r.CapacityMinMax = CleanCapacity(r.CapacityMinMax)
		r.EventTypes = CoerceList(r.EventTypes)
		r.Amenities = CoerceList(r.Amenities)
		// Legacy builder policy: the tri-state A/V signal collapses to a
		// plain boolean here, with unknown mapping to false.
		r.InHouseAV = r.AVSignal.Bool()
	case *types.Catering:
		r.PricePerPerson = CleanPrice(r.PricePerPerson)
		r.CuisineTypes = CoerceList(r.CuisineTypes)
		r.ServiceTypes = CoerceList(r.ServiceTypes)
	case *types.Transport:
		r.PricePerHour = CleanPrice(r.PricePerHour)
		r.VehicleTypes = CoerceList(r.VehicleTypes)
	case *types.Activities:
		r.PricePerPerson = CleanPrice(r.PricePerPerson)
		r.ActivityTypes = CoerceList(r.ActivityTypes)
	case *types.AVEquipment:
		r.PricePerDay = CleanPrice(r.PricePerDay)
		r.EquipmentTypes = CoerceList(r.EquipmentTypes)
	}

	base := rec.Common()
	base.Name = strings.TrimSpace(base.Name)
	base.AddressFull = strings.TrimSpace(base.AddressFull)
	return rec
}

// CleanPrice standardizes a price string to "From NUMBER CURRENCY" or
// "From NUMBER CURRENCY/person". A bare number defaults to DKK, KR is
// normalized to DKK, and the currency code is uppercased. Text without a
// numeric pattern is returned trimmed, unchanged.
func CleanPrice(price string) string {
	if price == "" {
		return price
	}
	price = strings.Join(strings.Fields(price), " ")

	m := priceValue.FindStringSubmatch(price)
	if m == nil {
		return strings.TrimSpace(price)
	}

	number := strings.ReplaceAll(m[1], ",", ".")
	currency := strings.ToUpper(m[2])
	if currency == "" || currency == "KR" {
		currency = "DKK"
	}

	if perPerson(price) {
		return "From " + number + " " + currency + "/person"
	}
	return "From " + number + " " + currency
}

// perPerson reports whether a per-person marker appears anywhere in the
// original price string.
func perPerson(price string) bool {
	lower := strings.ToLower(price)
	for _, marker := range []string{"per", "/", "pax", "guest"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Boolean vocabularies recognized by ParseBool, bilingual.
var (
	trueValues  = []string{"true", "yes", "1", "available", "included", "ja"}
	falseValues = []string{"false", "no", "0", "not available", "not included", "nej"}
)

// ParseBool maps boolean-ish strings onto true/false. Unrecognized input is
// false: a deliberate, lossy simplification of ambiguity.
func ParseBool(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, v := range trueValues {
		if lower == v {
			return true
		}
	}
	for _, v := range falseValues {
		if lower == v {
			return false
		}
	}
	return false
}

// CleanCapacity standardizes capacity strings to "MIN - MAX" or a single
// number. Text without digits is returned trimmed, unchanged.
func CleanCapacity(capacity string) string {
	if capacity == "" {
		return capacity
	}
	capacity = strings.Join(strings.Fields(capacity), " ")

	numbers := digitRuns.FindAllString(capacity, -1)
	switch {
	case len(numbers) >= 2:
		return numbers[0] + " - " + numbers[len(numbers)-1]
	case len(numbers) == 1:
		return numbers[0]
	}
	return strings.TrimSpace(capacity)
}

// CoerceList splits entries still carrying delimiters, trims each piece and
// drops empties. Order is preserved as extracted.
func CoerceList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, piece := range listSplit.Split(item, -1) {
			if piece = strings.TrimSpace(piece); piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

// SplitList coerces a single delimited string into a clean list.
func SplitList(value string) []string {
	return CoerceList([]string{value})
}

package extract

import (
	"encoding/json"
	"strings"

	"copenhagen-vendor-scraper/internal/document"
)

// addressKeys is the order the JSON-LD address parts are joined in.
var addressKeys = []string{"streetAddress", "addressLocality", "postalCode", "addressCountry"}

// JSONLDAddress flattens the address object of an embedded JSON-LD block into
// a single comma-joined line. Most pages carry no such block, so malformed or
// missing metadata falls through silently; this strategy never fails loudly.
func JSONLDAddress(d *document.Document) string {
	for _, block := range d.JSONLD() {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(block), &data); err != nil {
			continue
		}

		addr, ok := data["address"].(map[string]interface{})
		if !ok {
			continue
		}

		var parts []string
		for _, key := range addressKeys {
			if value, ok := addr[key].(string); ok {
				if value = strings.TrimSpace(value); value != "" {
					parts = append(parts, value)
				}
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return ""
}

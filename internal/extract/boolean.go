package extract

import (
	"strings"

	"copenhagen-vendor-scraper/internal/types"
)

// BoolSignal probes scoped text for positive and negative keyword sets. A
// negative keyword anywhere wins over any positive one. When neither set
// matches the result is SignalUnknown, so callers can tell "explicitly no"
// from "not mentioned". Keyword sets are bilingual (English + Danish).
func BoolSignal(text string, positive, negative []string) types.TriState {
	for _, keyword := range negative {
		if strings.Contains(text, keyword) {
			return types.SignalNo
		}
	}
	for _, keyword := range positive {
		if strings.Contains(text, keyword) {
			return types.SignalYes
		}
	}
	return types.SignalUnknown
}

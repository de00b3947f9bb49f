package extract

import (
	"regexp"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// NumericRange condenses the digit runs in candidate text to a range string.
// Two or more runs yield "first - last", a single run yields that number, and
// text without digits yields "" (field absent). Thousand separators are
// stripped first so "1.000" reads as one number.
func NumericRange(text string) string {
	cleaned := strings.NewReplacer(",", "", ".", "").Replace(text)
	numbers := digitRuns.FindAllString(cleaned, -1)
	switch {
	case len(numbers) >= 2:
		return numbers[0] + " - " + numbers[len(numbers)-1]
	case len(numbers) == 1:
		return numbers[0]
	}
	return ""
}

// FirstNumberNear returns the first digit run immediately preceding one of
// the marker words in text, e.g. "12 meeting rooms" with marker "rooms".
func FirstNumberNear(text string, markers []string) string {
	for _, marker := range markers {
		pattern := regexp.MustCompile(`(\d+)\s*(?:` + regexp.QuoteMeta(marker) + `)`)
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

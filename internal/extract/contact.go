package extract

import (
	"regexp"

	"copenhagen-vendor-scraper/internal/document"
)

// Contact patterns run against the raw page body, not the rendered text, so
// numbers and addresses inside attributes or JSON blobs are picked up too.
// Matches are best effort: nothing validates that a phone number is dialable
// or that a mailbox exists.
var (
	phonePattern = regexp.MustCompile(`\+?\d{2,3}[\s-]?\d{2,3}[\s-]?\d{2,4}[\s-]?\d{2,4}`)
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// Phone returns the first international-style digit-group match in the raw
// document, or "" when none is found.
func Phone(d *document.Document) string {
	return phonePattern.FindString(d.HTML())
}

// Email returns the first local@domain match in the raw document, or ""
// when none is found.
func Email(d *document.Document) string {
	return emailPattern.FindString(d.HTML())
}

package pipeline

import (
	"errors"
	"strings"

	"copenhagen-vendor-scraper/internal/types"
)

// Rejection reasons. A rejected record is terminal: it is logged and dropped,
// never retried, and does not affect other records or the run's success.
var (
	ErrMissingName    = errors.New("missing required field: name")
	ErrMissingAddress = errors.New("missing required field: address_full")
	ErrOutOfRegion    = errors.New("address does not appear to be in the Copenhagen area")
)

// regionTokens gate venue addresses to the target region.
var regionTokens = []string{"copenhagen", "denmark", "københavn"}

// Validate applies the acceptance rules in order, short-circuiting on the
// first failure. Venue records must carry an in-region address; for other
// categories a missing address is allowed and only noted.
func Validate(rec types.Record, logger types.Logger) error {
	base := rec.Common()

	if strings.TrimSpace(base.Name) == "" {
		return ErrMissingName
	}

	address := strings.TrimSpace(base.AddressFull)
	if rec.Category() == types.CategoryVenue {
		if address == "" {
			return ErrMissingAddress
		}
		if !inRegion(address) {
			return ErrOutOfRegion
		}
		return nil
	}

	if address == "" {
		logger.Infof("Vendor %s has no address (optional): %s", base.VendorType, base.Name)
	}
	return nil
}

func inRegion(address string) bool {
	lower := strings.ToLower(address)
	for _, token := range regionTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

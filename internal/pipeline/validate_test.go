package pipeline

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"copenhagen-vendor-scraper/internal/types"
)

func venueRecord(name, address string) *types.Venue {
	v := &types.Venue{}
	v.Name = name
	v.AddressFull = address
	v.VendorType = types.CategoryVenue.String()
	return v
}

func TestValidate_MissingName(t *testing.T) {
	logger := logrus.New()

	assert.ErrorIs(t, Validate(venueRecord("   ", "Copenhagen"), logger), ErrMissingName)
}

func TestValidate_VenueMissingAddress(t *testing.T) {
	logger := logrus.New()

	assert.ErrorIs(t, Validate(venueRecord("Grand Hall", "  "), logger), ErrMissingAddress)
}

func TestValidate_VenueOutOfRegion(t *testing.T) {
	logger := logrus.New()

	err := Validate(venueRecord("Grand Hall", "123 Main St, Aarhus"), logger)
	assert.ErrorIs(t, err, ErrOutOfRegion)
}

func TestValidate_VenueInRegion(t *testing.T) {
	logger := logrus.New()

	assert.NoError(t, Validate(venueRecord("Grand Hall", "123 Main St, Copenhagen"), logger))
	assert.NoError(t, Validate(venueRecord("Grand Hall", "Amagertorv 1, 1160 København K"), logger))
	assert.NoError(t, Validate(venueRecord("Grand Hall", "Somewhere in DENMARK"), logger))
}

func TestValidate_NonVenueAddressOptional(t *testing.T) {
	logger := logrus.New()

	c := &types.Catering{}
	c.Name = "Fine Foods"
	c.VendorType = types.CategoryCatering.String()

	// Missing address on a non-venue record is informational, not a rejection.
	assert.NoError(t, Validate(c, logger))
}

func TestValidate_NonVenueOutOfRegionAllowed(t *testing.T) {
	logger := logrus.New()

	tr := &types.Transport{}
	tr.Name = "City Buses"
	tr.AddressFull = "Malmö, Sweden"
	tr.VendorType = types.CategoryTransport.String()

	// The region gate applies to venue addresses only.
	assert.NoError(t, Validate(tr, logger))
}

func TestValidate_ShortCircuitOrder(t *testing.T) {
	logger := logrus.New()

	// Name failure reported before the address is even looked at.
	err := Validate(venueRecord("", ""), logger)
	assert.ErrorIs(t, err, ErrMissingName)
}

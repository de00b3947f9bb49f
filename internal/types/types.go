package types

import "time"

// VendorCategory identifies which of the five vendor schemas a page belongs to.
// The set is closed: every document resolves to exactly one category.
type VendorCategory int

const (
	CategoryVenue VendorCategory = iota
	CategoryCatering
	CategoryTransport
	CategoryActivities
	CategoryAVEquipment
)

// String returns the lowercased tag stored in the vendor_type field.
func (c VendorCategory) String() string {
	switch c {
	case CategoryVenue:
		return "venue"
	case CategoryCatering:
		return "catering"
	case CategoryTransport:
		return "transport"
	case CategoryActivities:
		return "activities"
	case CategoryAVEquipment:
		return "av-equipment"
	}
	return "unknown"
}

// TriState is a boolean signal that keeps "explicitly no" apart from
// "not mentioned". Callers that don't care call Bool.
type TriState int

const (
	SignalUnknown TriState = iota
	SignalYes
	SignalNo
)

// Bool collapses the signal to a plain boolean; SignalUnknown maps to false.
func (t TriState) Bool() bool {
	return t == SignalYes
}

// Base holds the fields shared by every vendor record.
type Base struct {
	Name        string   `json:"name"`
	AddressFull string   `json:"address_full,omitempty"`
	Description string   `json:"description,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	VendorType  string   `json:"vendor_type"`
	URLSource   string   `json:"url_source"`
}

// Record is implemented by the five vendor record variants.
type Record interface {
	// Common returns the shared base fields.
	Common() *Base

	// Category returns the schema tag of the record.
	Category() VendorCategory
}

// Venue is the record schema for event venues.
type Venue struct {
	Base
	CapacityMinMax   string   `json:"capacity_min_max,omitempty"`
	NumberOfRooms    string   `json:"number_of_rooms,omitempty"`
	EventTypes       []string `json:"event_types"`
	InHouseAV        bool     `json:"in_house_av"`
	Amenities        []string `json:"amenities,omitempty"`
	ParkingAvailable bool     `json:"parking_available"`
	WifiAvailable    bool     `json:"wifi_available"`
	Accessibility    bool     `json:"accessibility"`
	BasePackagePrice string   `json:"base_package_price,omitempty"`

	// AVSignal carries the raw in-house A/V probe result from the builder to
	// the normalization stage, where it is collapsed into InHouseAV.
	AVSignal TriState `json:"-"`
}

func (v *Venue) Common() *Base { return &v.Base }
func (v *Venue) Category() VendorCategory { return CategoryVenue }

// Catering is the record schema for catering services.
type Catering struct {
	Base
	CuisineTypes   []string `json:"cuisine_types,omitempty"`
	ServiceTypes   []string `json:"service_types,omitempty"`
	PricePerPerson string   `json:"price_per_person,omitempty"`
}

func (c *Catering) Common() *Base { return &c.Base }
func (c *Catering) Category() VendorCategory { return CategoryCatering }

// Transport is the record schema for transportation services.
type Transport struct {
	Base
	VehicleTypes []string `json:"vehicle_types,omitempty"`
	PricePerHour string   `json:"price_per_hour,omitempty"`
}

func (t *Transport) Common() *Base { return &t.Base }
func (t *Transport) Category() VendorCategory { return CategoryTransport }

// Activities is the record schema for activity and entertainment providers.
type Activities struct {
	Base
	ActivityTypes  []string `json:"activity_types,omitempty"`
	PricePerPerson string   `json:"price_per_person,omitempty"`
}

func (a *Activities) Common() *Base { return &a.Base }
func (a *Activities) Category() VendorCategory { return CategoryActivities }

// AVEquipment is the record schema for A/V equipment rental companies.
type AVEquipment struct {
	Base
	EquipmentTypes    []string `json:"equipment_types,omitempty"`
	DeliveryAvailable bool     `json:"delivery_available"`
	SetupService      bool     `json:"setup_service"`
	TechnicalSupport  bool     `json:"technical_support"`
	PricePerDay       string   `json:"price_per_day,omitempty"`
}

func (a *AVEquipment) Common() *Base { return &a.Base }
func (a *AVEquipment) Category() VendorCategory { return CategoryAVEquipment }

// Config holds the runtime configuration for the scraper.
type Config struct {
	RequestDelay          time.Duration
	MaxRetries            int
	Timeout               time.Duration
	MaxConcurrentRequests int
	UserAgent             string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RequestDelay:          2 * time.Second,
		MaxRetries:            3,
		Timeout:               30 * time.Second,
		MaxConcurrentRequests: 5,
		UserAgent:             "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// Logger defines the logging interface.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

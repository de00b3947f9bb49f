package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"copenhagen-vendor-scraper/internal/types"
)

// Schema for the venues table. url_source is the uniqueness key for upserts.
const venuesSchema = `
CREATE TABLE IF NOT EXISTS venues (
	name TEXT NOT NULL,
	address_full TEXT,
	capacity_min_max TEXT,
	event_types TEXT,
	in_house_av INTEGER NOT NULL DEFAULT 0,
	base_package_price TEXT,
	url_source TEXT NOT NULL UNIQUE
);`

const upsertVenue = `
INSERT INTO venues (name, address_full, capacity_min_max, event_types, in_house_av, base_package_price, url_source)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(url_source) DO UPDATE SET
	name = excluded.name,
	address_full = excluded.address_full,
	capacity_min_max = excluded.capacity_min_max,
	event_types = excluded.event_types,
	in_house_av = excluded.in_house_av,
	base_package_price = excluded.base_package_price;`

// SQLiteSink is the optional relational secondary sink: insert-or-replace
// keyed on url_source. Non-venue records are stored with their common fields
// and NULL venue columns.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the sink database and ensures the schema.
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite sink: %w", err)
	}
	if _, err := db.Exec(venuesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize sqlite schema: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

// Upsert writes one record, replacing any prior row with the same url_source.
func (s *SQLiteSink) Upsert(rec types.Record) error {
	base := rec.Common()

	var capacity, price, eventTypes sql.NullString
	av := false
	if v, ok := rec.(*types.Venue); ok {
		capacity = nullable(v.CapacityMinMax)
		price = nullable(v.BasePackagePrice)
		eventTypes = nullable(strings.Join(v.EventTypes, ", "))
		av = v.InHouseAV
	}

	_, err := s.db.Exec(upsertVenue,
		base.Name,
		nullable(base.AddressFull),
		capacity,
		eventTypes,
		av,
		price,
		base.URLSource,
	)
	return err
}

// Close releases the database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

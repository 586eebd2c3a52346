package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"jaipur-auction-scraper/models"
)

// PostgresWriter persists the consolidated catalogue to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS auction_listings (
			id            TEXT PRIMARY KEY,
			title         TEXT         NOT NULL,
			property_type VARCHAR(20)  NOT NULL,
			address       TEXT         NOT NULL DEFAULT '',
			locality      TEXT         NOT NULL DEFAULT '',
			lat           NUMERIC(9,6),
			lng           NUMERIC(9,6),
			reserve_price BIGINT,
			emd           BIGINT,
			auction_date  TIMESTAMPTZ,
			bank          TEXT         NOT NULL DEFAULT '',
			source_url    TEXT         NOT NULL,
			source_portal VARCHAR(50)  NOT NULL,
			status        VARCHAR(20)  NOT NULL,
			created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_auction_listings_locality ON auction_listings(locality);
		CREATE INDEX IF NOT EXISTS idx_auction_listings_portal   ON auction_listings(source_portal);
		CREATE INDEX IF NOT EXISTS idx_auction_listings_date     ON auction_listings(auction_date);
	`)
	return err
}

// Write batch-upserts the catalogue. Identity keys are stable across
// runs, so re-running on unchanged input leaves the table unchanged.
func (pw *PostgresWriter) Write(listings []*models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := pw.insertBatch(listings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.Listing) error {
	const cols = 14
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, l := range batch {
		base := idx * cols
		ph := make([]string, cols)
		for j := range ph {
			ph[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(ph, ",")+")")

		var lat, lng *float64
		if l.Coordinates != nil {
			lat, lng = &l.Coordinates.Lat, &l.Coordinates.Lng
		}
		valueArgs = append(valueArgs,
			l.ID, l.Title, string(l.PropertyType), l.Address, l.Locality,
			lat, lng, l.ReservePrice, l.EMD, l.AuctionDate,
			l.Bank, l.SourceURL, l.SourcePortal, l.Status)
	}

	query := fmt.Sprintf(`
		INSERT INTO auction_listings (
			id, title, property_type, address, locality, lat, lng,
			reserve_price, emd, auction_date, bank, source_url,
			source_portal, status
		)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves the stored catalogue — used by the insight service.
func (pw *PostgresWriter) FetchAll() ([]*models.Listing, error) {
	rows, err := pw.db.Query(`
		SELECT id, title, property_type, address, locality, lat, lng,
		       reserve_price, emd, auction_date, bank, source_url,
		       source_portal, status
		FROM auction_listings
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		l := &models.Listing{}
		var propertyType string
		var lat, lng sql.NullFloat64
		if err := rows.Scan(
			&l.ID, &l.Title, &propertyType, &l.Address, &l.Locality,
			&lat, &lng, &l.ReservePrice, &l.EMD, &l.AuctionDate,
			&l.Bank, &l.SourceURL, &l.SourcePortal, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		l.PropertyType = models.PropertyType(propertyType)
		if lat.Valid && lng.Valid {
			l.Coordinates = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

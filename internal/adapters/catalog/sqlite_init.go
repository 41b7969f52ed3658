package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the catalog database schema.
// The statements use portable SQL ($N placeholders, standard ON CONFLICT)
// so the same code serves the SQLite server database and the Postgres
// database maintained by cmd/dbtool.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		key TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createAttractionsQuery := `
	CREATE TABLE IF NOT EXISTS attractions (
		location TEXT NOT NULL,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		duration_minutes INTEGER NOT NULL,
		tags TEXT NOT NULL,
		PRIMARY KEY (location, position)
	);
	`

	createRestaurantsQuery := `
	CREATE TABLE IF NOT EXISTS restaurants (
		location TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		tags TEXT NOT NULL,
		PRIMARY KEY (location, position)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km INTEGER NOT NULL,
		duration_minutes INTEGER NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	statements := []string{
		createLocationsQuery,
		createAttractionsQuery,
		createRestaurantsQuery,
		createDistancesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type AttractionSeed struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Price           int      `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Tags            []string `json:"tags"`
}

type RestaurantSeed struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Tags  []string `json:"tags"`
}

type DistanceSeed struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Km      int    `json:"km"`
	Minutes int    `json:"minutes"`
}

type CatalogSeed struct {
	Locations   []LocationSeed              `json:"locations"`
	Attractions map[string][]AttractionSeed `json:"attractions"`
	Restaurants map[string][]RestaurantSeed `json:"restaurants"`
	Distances   []DistanceSeed              `json:"distances"`
}

// Populate the database with catalog data from a JSON seed file.
// Seeding is idempotent: re-running it updates rows in place.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	if len(seed.Locations) == 0 {
		return errors.New("seed catalog: no locations in seed file")
	}

	known := make(map[string]struct{}, len(seed.Locations))
	for i, loc := range seed.Locations {
		if strings.TrimSpace(loc.Key) == "" {
			return fmt.Errorf("seed catalog: location at index %d has empty key", i)
		}
		if strings.TrimSpace(loc.Label) == "" {
			return fmt.Errorf("seed catalog: location %q has empty label", loc.Key)
		}
		known[loc.Key] = struct{}{}
	}

	// Attraction and restaurant lists must reference seeded locations;
	// a typo in the seed file should fail loudly here, not read as an
	// empty catalog at plan time.
	for loc := range seed.Attractions {
		if _, ok := known[loc]; !ok {
			return fmt.Errorf("seed catalog: attractions reference unknown location %q", loc)
		}
	}
	for loc := range seed.Restaurants {
		if _, ok := known[loc]; !ok {
			return fmt.Errorf("seed catalog: restaurants reference unknown location %q", loc)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seedLocations(tx, seed.Locations); err != nil {
		return err
	}
	if err := seedAttractions(tx, seed.Attractions); err != nil {
		return err
	}
	if err := seedRestaurants(tx, seed.Restaurants); err != nil {
		return err
	}
	if err := seedDistances(tx, seed.Distances, known); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

func seedLocations(tx *sql.Tx, locations []LocationSeed) error {
	query := `
	INSERT INTO locations (key, label, position)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE
	SET label = EXCLUDED.label,
		position = EXCLUDED.position;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare locations insert: %w", err)
	}
	defer stmt.Close()

	for i, loc := range locations {
		if _, err := stmt.Exec(loc.Key, loc.Label, i); err != nil {
			return fmt.Errorf("seed catalog: insert location %q: %w", loc.Key, err)
		}
	}

	return nil
}

func seedAttractions(tx *sql.Tx, attractions map[string][]AttractionSeed) error {
	query := `
	INSERT INTO attractions (location, position, id, name, price, duration_minutes, tags)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (location, position) DO UPDATE
	SET id = EXCLUDED.id,
		name = EXCLUDED.name,
		price = EXCLUDED.price,
		duration_minutes = EXCLUDED.duration_minutes,
		tags = EXCLUDED.tags;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare attractions insert: %w", err)
	}
	defer stmt.Close()

	for loc, list := range attractions {
		for i, a := range list {
			if strings.TrimSpace(a.Name) == "" {
				return fmt.Errorf("seed catalog: attraction at %s[%d] has empty name", loc, i)
			}
			if a.Price < 0 {
				return fmt.Errorf("seed catalog: attraction %q has negative price", a.Name)
			}
			if a.DurationMinutes <= 0 {
				return fmt.Errorf("seed catalog: attraction %q has non-positive duration", a.Name)
			}

			if _, err := stmt.Exec(loc, i, a.ID, a.Name, a.Price, a.DurationMinutes, joinTags(a.Tags)); err != nil {
				return fmt.Errorf("seed catalog: insert attraction %q: %w", a.Name, err)
			}
		}
	}

	return nil
}

func seedRestaurants(tx *sql.Tx, restaurants map[string][]RestaurantSeed) error {
	query := `
	INSERT INTO restaurants (location, position, name, price, tags)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (location, position) DO UPDATE
	SET name = EXCLUDED.name,
		price = EXCLUDED.price,
		tags = EXCLUDED.tags;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare restaurants insert: %w", err)
	}
	defer stmt.Close()

	for loc, list := range restaurants {
		for i, r := range list {
			if strings.TrimSpace(r.Name) == "" {
				return fmt.Errorf("seed catalog: restaurant at %s[%d] has empty name", loc, i)
			}
			if r.Price < 0 {
				return fmt.Errorf("seed catalog: restaurant %q has negative price", r.Name)
			}

			if _, err := stmt.Exec(loc, i, r.Name, r.Price, joinTags(r.Tags)); err != nil {
				return fmt.Errorf("seed catalog: insert restaurant %q: %w", r.Name, err)
			}
		}
	}

	return nil
}

func seedDistances(tx *sql.Tx, distances []DistanceSeed, known map[string]struct{}) error {
	query := `
	INSERT INTO distances (origin, destination, distance_km, duration_minutes)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_minutes = EXCLUDED.duration_minutes;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare distances insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range distances {
		if _, ok := known[d.From]; !ok {
			return fmt.Errorf("seed catalog: distance at index %d references unknown origin %q", i, d.From)
		}
		if _, ok := known[d.To]; !ok {
			return fmt.Errorf("seed catalog: distance at index %d references unknown destination %q", i, d.To)
		}
		if d.Km <= 0 || d.Minutes <= 0 {
			return fmt.Errorf("seed catalog: distance %s -> %s has non-positive leg", d.From, d.To)
		}

		if _, err := stmt.Exec(d.From, d.To, d.Km, d.Minutes); err != nil {
			return fmt.Errorf("seed catalog: insert distance %s -> %s: %w", d.From, d.To, err)
		}
	}

	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

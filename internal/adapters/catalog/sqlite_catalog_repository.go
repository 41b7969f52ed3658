package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"trip-itinerary-service/internal/domain"
)

// SQL-backed implementation of the CatalogRepository port.
type SqliteCatalogRepository struct{ DB *sql.DB }

func NewSqliteCatalogRepository(db *sql.DB) *SqliteCatalogRepository {
	return &SqliteCatalogRepository{DB: db}
}

// LoadCatalog reads the full reference data set and builds the immutable
// in-memory snapshot used by plan interpretation. Declaration order is the
// seeded position column, so attraction selection stays deterministic.
func (s *SqliteCatalogRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if s.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	locations, err := s.loadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	attractions, err := s.loadAttractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	restaurants, err := s.loadRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return domain.NewCatalog(locations, attractions, restaurants), nil
}

func (s *SqliteCatalogRepository) loadLocations(ctx context.Context) ([]domain.Location, error) {
	query := `
	SELECT key, label
	FROM locations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 8)
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.Key, &loc.Label); err != nil {
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("location row iteration: %w", err)
	}

	return locations, nil
}

func (s *SqliteCatalogRepository) loadAttractions(ctx context.Context) (map[string][]domain.Attraction, error) {
	query := `
	SELECT location, id, name, price, duration_minutes, tags
	FROM attractions
	ORDER BY location, position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query attractions table: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Attraction)
	for rows.Next() {
		var loc, tags string
		var a domain.Attraction
		if err := rows.Scan(&loc, &a.ID, &a.Name, &a.Price, &a.DurationMinutes, &tags); err != nil {
			return nil, fmt.Errorf("scan attraction row: %w", err)
		}
		a.Tags = splitTags(tags)
		out[loc] = append(out[loc], a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("attraction row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteCatalogRepository) loadRestaurants(ctx context.Context) (map[string][]domain.Restaurant, error) {
	query := `
	SELECT location, name, price, tags
	FROM restaurants
	ORDER BY location, position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query restaurants table: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Restaurant)
	for rows.Next() {
		var loc, tags string
		var r domain.Restaurant
		if err := rows.Scan(&loc, &r.Name, &r.Price, &tags); err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		r.Tags = splitTags(tags)
		out[loc] = append(out[loc], r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurant row iteration: %w", err)
	}

	return out, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

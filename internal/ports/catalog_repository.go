package ports

import (
	"context"
	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for loading the static reference data from a data source.
type CatalogRepository interface {
	// Load the full catalog snapshot (locations, attractions, restaurants).
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
}

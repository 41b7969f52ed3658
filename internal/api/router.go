package api

import (
	"net/http"
	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	catalog *domain.Catalog,
	distances ports.DistanceProvider,
	solver ports.Solver,
	sched services.Schedule,
	home string,
) http.Handler {
	mux := http.NewServeMux()

	destHandler := &handlers.DestinationHandler{Catalog: catalog}
	tripHandler := &handlers.TripHandler{
		Catalog:   catalog,
		Distances: distances,
		Solver:    solver,
		Schedule:  sched,
		Home:      home,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/destinations", destHandler.List)
	mux.HandleFunc("/trips", tripHandler.Plan)

	return loggingMiddleware(mux)
}

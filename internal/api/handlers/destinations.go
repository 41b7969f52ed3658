package handlers

import (
	"net/http"
	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
)

// DestinationHandler exposes the read-only catalog so clients can build
// destination pickers and interest filters.
type DestinationHandler struct {
	Catalog *domain.Catalog
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations := h.Catalog.Destinations()
	res := dto.ListDestinationsResponse{
		Destinations: make([]dto.DestinationResponse, 0, len(locations)),
	}

	for _, loc := range locations {
		attractions := h.Catalog.Attractions(loc.Key)
		restaurants := h.Catalog.Restaurants(loc.Key)

		d := dto.DestinationResponse{
			Key:         loc.Key,
			Label:       loc.Label,
			Attractions: make([]dto.AttractionResponse, 0, len(attractions)),
			Restaurants: make([]dto.RestaurantResponse, 0, len(restaurants)),
		}

		for _, a := range attractions {
			d.Attractions = append(d.Attractions, dto.AttractionResponse{
				ID:              a.ID,
				Name:            a.Name,
				Price:           a.Price,
				DurationMinutes: a.DurationMinutes,
				Tags:            a.Tags,
			})
		}
		for _, rest := range restaurants {
			d.Restaurants = append(d.Restaurants, dto.RestaurantResponse{
				Name:  rest.Name,
				Price: rest.Price,
				Tags:  rest.Tags,
			})
		}

		res.Destinations = append(res.Destinations, d)
	}

	writeJSON(w, r, http.StatusOK, res)
}

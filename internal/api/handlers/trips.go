package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

type TripHandler struct {
	Catalog   *domain.Catalog
	Distances ports.DistanceProvider
	Solver    ports.Solver
	Schedule  services.Schedule
	Home      string
}

// Plan validates the trip request and runs the planning pipeline.
// Request-shape problems come back as 400s with a user-facing message;
// solver failures never surface here (the service falls back internally).
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	destinations := make([]string, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		destinations = append(destinations, d)
	}

	if len(destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "no destinations selected")
		return
	}
	for _, d := range destinations {
		if !h.Catalog.HasLocation(d) {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown destination %q", d))
			return
		}
	}
	if req.Budget < 1 {
		writeError(w, r, http.StatusBadRequest, "budget must be positive")
		return
	}
	if req.Days < 1 {
		writeError(w, r, http.StatusBadRequest, "days must be positive")
		return
	}

	svcReq := services.PlanTripRequest{
		Destinations: destinations,
		Budget:       req.Budget,
		Days:         req.Days,
		Interests:    req.Interests,
		Home:         h.Home,
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, h.Catalog, h.Distances, h.Solver, h.Schedule)
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(plan))
}

func toTripResponse(plan *services.TripPlan) dto.TripResponse {
	itinerary := make([]dto.ActivityResponse, 0, len(plan.Activities))
	for _, a := range plan.Activities {
		itinerary = append(itinerary, dto.ActivityResponse{
			Category:        string(a.Category),
			Description:     a.Description,
			Cost:            a.Cost,
			DurationMinutes: a.DurationMinutes,
			Day:             a.Day,
			Time:            a.StartClock(),
		})
	}

	buckets := make([]dto.CategoryCostResponse, 0, len(plan.Summary.CostByCategory))
	for _, b := range plan.Summary.CostByCategory {
		buckets = append(buckets, dto.CategoryCostResponse{
			Category: string(b.Category),
			Cost:     b.Cost,
		})
	}

	planner := "solver"
	if plan.UsedFallback {
		planner = "fallback"
	}

	return dto.TripResponse{
		Planner:   planner,
		Plan:      plan.Steps,
		Domain:    plan.Domain,
		Problem:   plan.Problem,
		Itinerary: itinerary,
		Summary: dto.SummaryResponse{
			TotalCost:      plan.Summary.TotalCost,
			Budget:         plan.Summary.Budget,
			Remaining:      plan.Summary.Remaining,
			TotalHours:     plan.Summary.TotalHours,
			CostByCategory: buckets,
		},
	}
}

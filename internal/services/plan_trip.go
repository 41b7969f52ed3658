package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/pddl"
	"trip-itinerary-service/internal/ports"
)

type PlanTripRequest struct {
	// Destination keys to visit, in preference order.
	Destinations []string
	// Advisory spending limit; reported against, never enforced.
	Budget int
	// Advisory trip length; reported against, never enforced.
	Days int
	// Attraction tags the traveler cares about. Empty means no filter.
	Interests []string
	// Location key the trip starts from.
	Home string
}

// TripPlan is the full planning result: the encoding shipped to the solver,
// the raw plan it (or the fallback) produced, and the interpreted itinerary
// with its summary.
type TripPlan struct {
	Domain       string
	Problem      string
	Steps        []string
	UsedFallback bool
	Activities   []domain.Activity
	Summary      domain.Summary
}

// PlanTrip runs the whole pipeline: validate the request, build the
// domain/problem encoding, obtain a plan from the solver (substituting the
// local fallback on any solver failure), interpret the plan into an
// itinerary, and summarize it.
//
// Solver failures are absorbed here and never surface to the caller; a
// returned error always means the request itself was unusable.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	catalog *domain.Catalog,
	distances ports.DistanceProvider,
	solver ports.Solver,
	sched Schedule,
) (*TripPlan, error) {
	if len(req.Destinations) == 0 {
		return nil, errors.New("plan trip: no destinations selected")
	}
	if req.Budget <= 0 {
		return nil, fmt.Errorf("plan trip: budget must be positive, got %d", req.Budget)
	}
	if req.Days <= 0 {
		return nil, fmt.Errorf("plan trip: days must be positive, got %d", req.Days)
	}
	for _, d := range req.Destinations {
		if !catalog.HasLocation(d) {
			return nil, fmt.Errorf("plan trip: unknown destination %q", d)
		}
	}

	home := req.Home
	if home == "" {
		home = "home"
	}

	locations := append([]string{home}, req.Destinations...)
	domainText := pddl.BuildDomain()
	problemText := pddl.BuildProblem(locations, home, req.Destinations)

	usedFallback := false
	steps, err := solver.Solve(ctx, domainText, problemText)
	if err != nil {
		// Degraded mode: one failed attempt, then straight to the local
		// fallback. No retry loop against the remote solver.
		log.Printf("solver failed, using fallback plan: %v", err)
		steps = FallbackPlan(home, req.Destinations)
		usedFallback = true
	}

	activities := InterpretPlan(steps, req.Interests, catalog, distances, sched)
	summary := Summarize(activities, req.Budget)

	return &TripPlan{
		Domain:       domainText,
		Problem:      problemText,
		Steps:        steps,
		UsedFallback: usedFallback,
		Activities:   activities,
		Summary:      summary,
	}, nil
}

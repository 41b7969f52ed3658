package services

import (
	"math"
	"trip-itinerary-service/internal/domain"
)

// Summarize reduces a finished itinerary to its cost and time aggregates.
//
// It is a pure total reduction: an empty itinerary yields an all-zero
// summary, and Remaining is simply budget minus total cost, negative when
// the plan overruns the budget. Category buckets appear in first-seen order.
func Summarize(activities []domain.Activity, budget int) domain.Summary {
	totalCost := 0
	totalMinutes := 0

	byCategory := make(map[domain.ActivityCategory]int)
	order := make([]domain.ActivityCategory, 0, 3)

	for _, a := range activities {
		totalCost += a.Cost
		totalMinutes += a.DurationMinutes

		if _, seen := byCategory[a.Category]; !seen {
			order = append(order, a.Category)
		}
		byCategory[a.Category] += a.Cost
	}

	buckets := make([]domain.CategoryCost, 0, len(order))
	for _, c := range order {
		buckets = append(buckets, domain.CategoryCost{Category: c, Cost: byCategory[c]})
	}

	return domain.Summary{
		TotalCost:      totalCost,
		Budget:         budget,
		Remaining:      budget - totalCost,
		TotalHours:     math.Round(float64(totalMinutes)/60*10) / 10,
		CostByCategory: buckets,
	}
}

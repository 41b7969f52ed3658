package domain

import "fmt"

type ActivityCategory string

const (
	ActivityTravel ActivityCategory = "travel"
	ActivityVisit  ActivityCategory = "visit"
	ActivityMeal   ActivityCategory = "meal"
)

// A single scheduled itinerary entry: one travel leg, attraction visit, or
// meal. Produced by plan interpretation and never modified afterwards.
//
// Day numbering starts at 1. StartMinute is minutes since midnight on that
// day; within a day, activities are emitted with non-decreasing StartMinute.
type Activity struct {
	Category        ActivityCategory
	Description     string
	Cost            int
	DurationMinutes int
	Day             int
	StartMinute     int
}

// StartClock formats the start time as "HH:MM".
func (a Activity) StartClock() string {
	return fmt.Sprintf("%02d:%02d", a.StartMinute/60, a.StartMinute%60)
}

// Per-category cost bucket. Kept as a slice (not a map) so the first-seen
// category order of the itinerary is preserved.
type CategoryCost struct {
	Category ActivityCategory
	Cost     int
}

// Summary is the derived aggregate over a finished itinerary.
// Remaining may be negative: the budget is advisory and never caps
// interpretation, overruns are reported here instead.
type Summary struct {
	TotalCost      int
	Budget         int
	Remaining      int
	TotalHours     float64
	CostByCategory []CategoryCost
}

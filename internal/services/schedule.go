package services

import "math"

// Schedule holds the day-window and pricing knobs for plan interpretation.
//
// The cutoffs are parameters rather than constants: the working day is
// 09:00-19:00 by default, but callers may widen it.
type Schedule struct {
	// Minute-of-day each day opens at (default 540 = 09:00).
	DayStartMinute int
	// Minute-of-day the day closes at (default 1140 = 19:00). Reaching or
	// passing it rolls the cursor to the next day.
	DayEndMinute int
	// Fixed meal duration; a restaurant's own duration data is ignored.
	MealMinutes int
	// Travel pricing rate applied to the distance of each leg.
	CostPerKm float64
}

func DefaultSchedule() Schedule {
	return Schedule{
		DayStartMinute: 9 * 60,
		DayEndMinute:   19 * 60,
		MealMinutes:    75,
		CostPerKm:      0.12,
	}
}

// TravelCost prices a leg: round(km * rate), half away from zero.
func (s Schedule) TravelCost(distanceKm int) int {
	return int(math.Round(float64(distanceKm) * s.CostPerKm))
}

// cursor is the (day, minute-of-day) pointer advanced as activities are
// emitted. One interpretation run owns exactly one cursor; it is never
// shared and never outlives the run.
type cursor struct {
	day    int
	minute int
}

func newCursor(s Schedule) cursor {
	return cursor{day: 1, minute: s.DayStartMinute}
}

// advance moves the cursor forward by an activity's duration.
func (c *cursor) advance(minutes int) {
	c.minute += minutes
}

// rollover moves the cursor to the start of the next day if the closing
// cutoff has been reached. The day advances at most once per check, even
// when an activity overshoots the cutoff by more than a full day.
func (c *cursor) rollover(s Schedule) {
	if c.minute >= s.DayEndMinute {
		c.day++
		c.minute = s.DayStartMinute
	}
}

package services

import (
	"fmt"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// InterpretPlan expands an ordered sequence of raw plan tokens into concrete,
// time-stamped itinerary activities.
//
// For each travel action it emits one travel leg priced from the distance
// matrix. For each visit action it emits at most one attraction visit (the
// first catalog entry matching the interest filter; no match means the
// action is skipped outright) and, if the location has a restaurant and the
// day has not yet closed, a fixed-length meal. The cursor advances by each
// activity's duration and rolls to the next day whenever the closing cutoff
// is reached.
//
// The function is total and deterministic: malformed tokens and unknown
// locations degrade to no output for that step, never an error. Budget and
// day-count limits are deliberately not enforced here; overruns surface in
// the summary instead.
func InterpretPlan(
	steps []string,
	interests []string,
	catalog *domain.Catalog,
	distances ports.DistanceProvider,
	sched Schedule,
) []domain.Activity {
	activities := []domain.Activity{}
	cur := newCursor(sched)

	emit := func(category domain.ActivityCategory, description string, cost int, duration int) {
		activities = append(activities, domain.Activity{
			Category:        category,
			Description:     description,
			Cost:            cost,
			DurationMinutes: duration,
			Day:             cur.day,
			StartMinute:     cur.minute,
		})
		cur.advance(duration)
		cur.rollover(sched)
	}

	for _, action := range ParsePlan(steps) {
		switch action.Kind {
		case ActionTravel:
			est := distances.Estimate(action.From, action.To)
			emit(
				domain.ActivityTravel,
				fmt.Sprintf("Travel from %s to %s", catalog.Label(action.From), catalog.Label(action.To)),
				sched.TravelCost(est.DistanceKm),
				est.DurationMinutes,
			)

		case ActionVisit:
			attraction, ok := catalog.SelectAttraction(action.Location, interests)
			if !ok {
				// Nothing matches the interest filter here: skip the visit
				// entirely rather than falling back to an arbitrary pick.
				continue
			}

			// The meal decision looks at the raw end-of-visit minute, taken
			// before the visit's rollover can reset the cursor: a visit that
			// runs past the cutoff gets no meal, not a next-morning one.
			visitEnd := cur.minute + attraction.DurationMinutes

			emit(
				domain.ActivityVisit,
				fmt.Sprintf("Visit %s", attraction.Name),
				attraction.Price,
				attraction.DurationMinutes,
			)

			if restaurant, ok := catalog.SelectRestaurant(action.Location); ok && visitEnd < sched.DayEndMinute {
				emit(
					domain.ActivityMeal,
					fmt.Sprintf("Dine at %s", restaurant.Name),
					restaurant.Price,
					sched.MealMinutes,
				)
			}
		}
	}

	return activities
}

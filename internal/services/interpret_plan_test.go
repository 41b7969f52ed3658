package services

import (
	"testing"
	"trip-itinerary-service/internal/adapters/distance"
	"trip-itinerary-service/internal/domain"
)

func testCatalog() *domain.Catalog {
	locations := []domain.Location{
		{Key: "home", Label: "Home"},
		{Key: "new_york", Label: "New York City"},
		{Key: "las_vegas", Label: "Las Vegas"},
		{Key: "chicago", Label: "Chicago"},
	}

	attractions := map[string][]domain.Attraction{
		"new_york": {
			{ID: "statue_liberty", Name: "Statue of Liberty", Price: 25, DurationMinutes: 180, Tags: []string{"historical", "monument", "cultural"}},
			{ID: "central_park", Name: "Central Park Walk", Price: 0, DurationMinutes: 120, Tags: []string{"nature", "relaxation"}},
		},
		"las_vegas": {
			{ID: "bellagio_fountains", Name: "Bellagio Fountains", Price: 0, DurationMinutes: 30, Tags: []string{"entertainment"}},
		},
		"chicago": {
			{ID: "art_institute", Name: "Art Institute of Chicago", Price: 25, DurationMinutes: 180, Tags: []string{"museum", "cultural"}},
		},
	}

	restaurants := map[string][]domain.Restaurant{
		"new_york": {
			{Name: "Joe's Pizza", Price: 8, Tags: []string{"food", "pizza"}},
		},
		"chicago": {
			{Name: "Lou Malnati's Pizza", Price: 20, Tags: []string{"food", "pizza"}},
		},
		// las_vegas deliberately has no restaurants.
	}

	return domain.NewCatalog(locations, attractions, restaurants)
}

func testMatrix() *distance.MatrixProvider {
	return distance.NewMatrixProvider([]distance.MatrixRow{
		{From: "home", To: "chicago", Km: 1000, Minutes: 500},
		{From: "home", To: "las_vegas", Km: 435, Minutes: 600},
		// home -> new_york intentionally absent: exercises the fallback leg.
	})
}

func TestInterpretPlanTravelVisitMeal(t *testing.T) {
	activities := InterpretPlan(
		[]string{"(travel home new_york)", "(visit new_york)"},
		nil,
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	if len(activities) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(activities))
	}

	travel := activities[0]
	if travel.Category != domain.ActivityTravel {
		t.Fatalf("expected travel first, got %q", travel.Category)
	}
	if travel.Description != "Travel from Home to New York City" {
		t.Fatalf("unexpected description %q", travel.Description)
	}
	// Unlisted pair: fallback leg of 500 km / 300 min, cost 60.
	if travel.Cost != 60 || travel.DurationMinutes != 300 {
		t.Fatalf("fallback leg = (%d, %d), want (60, 300)", travel.Cost, travel.DurationMinutes)
	}
	if travel.Day != 1 || travel.StartClock() != "09:00" {
		t.Fatalf("travel at day %d %s, want day 1 09:00", travel.Day, travel.StartClock())
	}

	visit := activities[1]
	if visit.Category != domain.ActivityVisit || visit.Description != "Visit Statue of Liberty" {
		t.Fatalf("unexpected visit: %+v", visit)
	}
	if visit.Cost != 25 || visit.DurationMinutes != 180 {
		t.Fatalf("visit = (%d, %d), want (25, 180)", visit.Cost, visit.DurationMinutes)
	}
	if visit.Day != 1 || visit.StartClock() != "14:00" {
		t.Fatalf("visit at day %d %s, want day 1 14:00", visit.Day, visit.StartClock())
	}

	meal := activities[2]
	if meal.Category != domain.ActivityMeal || meal.Description != "Dine at Joe's Pizza" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if meal.Cost != 8 || meal.DurationMinutes != 75 {
		t.Fatalf("meal = (%d, %d), want (8, 75)", meal.Cost, meal.DurationMinutes)
	}
	if meal.Day != 1 || meal.StartClock() != "17:00" {
		t.Fatalf("meal at day %d %s, want day 1 17:00", meal.Day, meal.StartClock())
	}
}

func TestInterpretPlanSkipsVisitWithoutInterestMatch(t *testing.T) {
	activities := InterpretPlan(
		[]string{"(visit las_vegas)", "(visit new_york)"},
		[]string{"historical"},
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	// The Vegas visit matches nothing and must consume no time: the New
	// York visit still starts at the day's opening minute.
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities (visit + meal), got %d", len(activities))
	}
	if activities[0].Description != "Visit Statue of Liberty" {
		t.Fatalf("unexpected first activity: %+v", activities[0])
	}
	if activities[0].Day != 1 || activities[0].StartMinute != 540 {
		t.Fatalf("skipped visit consumed time: day %d minute %d", activities[0].Day, activities[0].StartMinute)
	}
}

func TestInterpretPlanRollsOverAtCutoff(t *testing.T) {
	// home -> las_vegas is 600 min: the leg ends exactly at 19:00, so the
	// visit lands on the next day's opening minute.
	activities := InterpretPlan(
		[]string{"(travel home las_vegas)", "(visit las_vegas)"},
		nil,
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Day != 1 || activities[0].StartMinute != 540 {
		t.Fatalf("travel at day %d minute %d", activities[0].Day, activities[0].StartMinute)
	}
	if activities[1].Day != 2 || activities[1].StartMinute != 540 {
		t.Fatalf("visit at day %d minute %d, want day 2 minute 540", activities[1].Day, activities[1].StartMinute)
	}

	// Vegas has no restaurants, so no meal either day.
	for _, a := range activities {
		if a.Category == domain.ActivityMeal {
			t.Fatalf("unexpected meal: %+v", a)
		}
	}
}

func TestInterpretPlanNoMealWhenVisitEndsPastCutoff(t *testing.T) {
	// Travel ends at 17:20 and the visit runs to 20:20, past the 19:00
	// cutoff. The meal decision uses the raw end-of-visit minute, so no
	// meal is emitted at all, even though the visit's rollover has already
	// opened the next day.
	activities := InterpretPlan(
		[]string{"(travel home chicago)", "(visit chicago)"},
		nil,
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}

	visit := activities[1]
	if visit.Day != 1 || visit.StartMinute != 1040 {
		t.Fatalf("visit at day %d minute %d, want day 1 minute 1040", visit.Day, visit.StartMinute)
	}

	for _, a := range activities {
		if a.Category == domain.ActivityMeal {
			t.Fatalf("meal emitted despite visit ending past cutoff: %+v", a)
		}
	}
}

func TestInterpretPlanMealAtVisitEnd(t *testing.T) {
	// A visit ending before the cutoff gets its meal immediately at the
	// visit's end minute, on the same day.
	activities := InterpretPlan(
		[]string{"(visit chicago)"},
		nil,
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}

	meal := activities[1]
	if meal.Category != domain.ActivityMeal || meal.Description != "Dine at Lou Malnati's Pizza" {
		t.Fatalf("unexpected meal: %+v", meal)
	}
	if meal.Day != 1 || meal.StartMinute != 720 {
		t.Fatalf("meal at day %d minute %d, want day 1 minute 720", meal.Day, meal.StartMinute)
	}
}

func TestInterpretPlanOrderingInvariants(t *testing.T) {
	activities := InterpretPlan(
		[]string{
			"(travel home las_vegas)",
			"(visit las_vegas)",
			"(travel las_vegas chicago)",
			"(visit chicago)",
			"(travel chicago new_york)",
			"(visit new_york)",
		},
		nil,
		testCatalog(),
		testMatrix(),
		DefaultSchedule(),
	)

	if len(activities) == 0 {
		t.Fatal("expected activities")
	}
	if activities[0].Day != 1 {
		t.Fatalf("first activity on day %d, want 1", activities[0].Day)
	}

	for i := 1; i < len(activities); i++ {
		prev, cur := activities[i-1], activities[i]
		if cur.Day < prev.Day {
			t.Fatalf("day decreased at index %d: %d -> %d", i, prev.Day, cur.Day)
		}
		if cur.Day == prev.Day && cur.StartMinute < prev.StartMinute {
			t.Fatalf("start time decreased within day at index %d: %d -> %d", i, prev.StartMinute, cur.StartMinute)
		}
	}
}

func TestInterpretPlanEmptyAndJunkPlans(t *testing.T) {
	if got := InterpretPlan(nil, nil, testCatalog(), testMatrix(), DefaultSchedule()); len(got) != 0 {
		t.Fatalf("empty plan produced %d activities", len(got))
	}

	junk := []string{"", "(fly home moon)", "(travel home)"}
	if got := InterpretPlan(junk, nil, testCatalog(), testMatrix(), DefaultSchedule()); len(got) != 0 {
		t.Fatalf("junk plan produced %d activities", len(got))
	}
}

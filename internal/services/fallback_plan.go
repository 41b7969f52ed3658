package services

import "fmt"

// FallbackPlan produces a degraded-mode plan when the external solver is
// unavailable: from start, travel to each goal in listed order and visit it.
// The tokens use the same wire form the solver emits, so the rest of the
// pipeline cannot tell the two apart.
func FallbackPlan(start string, goals []string) []string {
	plan := make([]string, 0, 2*len(goals))
	current := start

	for _, goal := range goals {
		if goal != current {
			plan = append(plan, fmt.Sprintf("(travel %s %s)", current, goal))
			current = goal
		}
		plan = append(plan, fmt.Sprintf("(visit %s)", goal))
	}

	return plan
}

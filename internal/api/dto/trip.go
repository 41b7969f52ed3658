package dto

type TripRequest struct {
	Destinations []string `json:"destinations"`
	Budget       int      `json:"budget"`
	Days         int      `json:"days"`
	Interests    []string `json:"interests"`
}

type ActivityResponse struct {
	Category        string `json:"category"`
	Description     string `json:"description"`
	Cost            int    `json:"cost"`
	DurationMinutes int    `json:"duration_minutes"`
	Day             int    `json:"day"`
	Time            string `json:"time"`
}

type CategoryCostResponse struct {
	Category string `json:"category"`
	Cost     int    `json:"cost"`
}

type SummaryResponse struct {
	TotalCost      int                    `json:"total_cost"`
	Budget         int                    `json:"budget"`
	Remaining      int                    `json:"remaining"`
	TotalHours     float64                `json:"total_hours"`
	CostByCategory []CategoryCostResponse `json:"cost_by_category"`
}

type TripResponse struct {
	// "solver" when the external planner produced the plan, "fallback"
	// when the local degraded-mode planner did.
	Planner   string             `json:"planner"`
	Plan      []string           `json:"plan"`
	Domain    string             `json:"domain"`
	Problem   string             `json:"problem"`
	Itinerary []ActivityResponse `json:"itinerary"`
	Summary   SummaryResponse    `json:"summary"`
}

package ports

// Distance and travel duration between two locations.
type TravelEstimate struct {
	DistanceKm      int
	DurationMinutes int
}

// Contract for estimating the travel leg between two locations.
//
// Estimate is total: implementations must return a well-defined default leg
// for pairs they have no data for, never an error. This keeps plan
// interpretation a pure computation.
type DistanceProvider interface {
	// Return travel distance and estimated duration between two locations.
	Estimate(origin string, destination string) TravelEstimate
}

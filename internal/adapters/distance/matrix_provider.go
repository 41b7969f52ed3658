package distance

import "trip-itinerary-service/internal/ports"

// One directed leg of the distance matrix. The seeded matrix is symmetric in
// practice (both directions present), but lookups stay strictly ordered.
type MatrixRow struct {
	From    string
	To      string
	Km      int
	Minutes int
}

// Default leg used for location pairs absent from the matrix.
const (
	fallbackKm      = 500
	fallbackMinutes = 300
)

// MatrixProvider answers distance estimates from a fixed in-memory table.
//
// Estimate is total: unknown pairs get the fallback leg instead of an error,
// which keeps plan interpretation free of failure paths. The table is built
// once and never mutated, so the provider is safe for concurrent use.
type MatrixProvider struct {
	m map[string]ports.TravelEstimate
}

func NewMatrixProvider(rows []MatrixRow) *MatrixProvider {
	m := make(map[string]ports.TravelEstimate, len(rows))
	for _, r := range rows {
		m[r.From+"|"+r.To] = ports.TravelEstimate{DistanceKm: r.Km, DurationMinutes: r.Minutes}
	}
	return &MatrixProvider{m: m}
}

func (p *MatrixProvider) Estimate(origin string, destination string) ports.TravelEstimate {
	if est, ok := p.m[origin+"|"+destination]; ok {
		return est
	}
	return ports.TravelEstimate{DistanceKm: fallbackKm, DurationMinutes: fallbackMinutes}
}

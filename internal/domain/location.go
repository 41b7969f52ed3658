package domain

// A travel destination known to the catalog.
// The Key is the canonical identifier used in plan tokens and the distance
// matrix (e.g. "los_angeles"); the Label is what users see.
type Location struct {
	Key   string
	Label string
}

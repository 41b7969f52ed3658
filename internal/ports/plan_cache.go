package ports

import "context"

// Port: a cache for solved plans, keyed by a digest of the encoding pair.
type PlanCache interface {
	// Return the cached plan for key. The bool reports a hit; a miss is not
	// an error.
	GetPlan(ctx context.Context, key string) ([]string, bool, error)
	// Store the plan for key.
	PutPlan(ctx context.Context, key string, steps []string) error
}

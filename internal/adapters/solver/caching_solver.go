package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"trip-itinerary-service/internal/ports"
)

// CachingSolver decorates a Solver with a plan cache.
//
// Plans are keyed by a digest of the encoding pair, so identical requests
// (same destinations, same home) skip the remote solver entirely. Cache
// failures are logged and bypassed rather than failing the solve: the cache
// is an optimization, never a dependency.
type CachingSolver struct {
	inner ports.Solver
	cache ports.PlanCache
}

func NewCachingSolver(inner ports.Solver, cache ports.PlanCache) *CachingSolver {
	return &CachingSolver{inner: inner, cache: cache}
}

func (s *CachingSolver) Solve(ctx context.Context, domainText string, problemText string) ([]string, error) {
	key := planKey(domainText, problemText)

	steps, hit, err := s.cache.GetPlan(ctx, key)
	if err != nil {
		log.Printf("plan cache read failed: %v", err)
	} else if hit {
		return steps, nil
	}

	steps, err = s.inner.Solve(ctx, domainText, problemText)
	if err != nil {
		return nil, err
	}

	if err := s.cache.PutPlan(ctx, key, steps); err != nil {
		log.Printf("plan cache write failed: %v", err)
	}

	return steps, nil
}

// planKey digests the encoding pair into a stable cache key.
func planKey(domainText, problemText string) string {
	h := sha256.New()
	h.Write([]byte(domainText))
	h.Write([]byte{0})
	h.Write([]byte(problemText))
	return hex.EncodeToString(h.Sum(nil))
}

package ports

import "context"

// Contract for the external planning solver.
//
// Solve submits a domain/problem encoding pair and returns the plan as an
// ordered sequence of raw action tokens (e.g. "(travel home new_york)").
// The solver is untrusted: callers must treat any error as "no plan" and
// substitute a fallback, and must tolerate malformed tokens in the result.
type Solver interface {
	Solve(ctx context.Context, domainText string, problemText string) ([]string, error)
}

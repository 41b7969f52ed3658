package solver

import "context"

// MockSolver returns canned plans (or a canned error) for tests.
type MockSolver struct {
	Steps []string
	Err   error
	// Number of Solve calls observed; lets tests assert cache hits.
	Calls int
}

func (m *MockSolver) Solve(ctx context.Context, domainText string, problemText string) ([]string, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Steps, nil
}

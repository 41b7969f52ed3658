package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"trip-itinerary-service/internal/platform/obs"
)

const DefaultBaseURL = "https://solver.planning.domains"

// HTTPSolver submits encodings to the planning.domains solve endpoint.
//
// It makes a single blocking request per Solve call with a fixed timeout.
// There is deliberately no retry/backoff here: on any failure the caller
// switches to the local fallback planner immediately.
//
// The solver is safe for concurrent use.
type HTTPSolver struct {
	session *http.Client
	baseURL string
}

func NewHTTPSolver(baseURL string) *HTTPSolver {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPSolver{
		// Cold solves on the public service routinely take tens of seconds.
		session: &http.Client{Timeout: 40 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type solveRequest struct {
	Domain  string `json:"domain"`
	Problem string `json:"problem"`
}

type solveResponse struct {
	Status string `json:"status"`
	Result struct {
		Plan []struct {
			Name string `json:"name"`
		} `json:"plan"`
	} `json:"result"`
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Solve posts the encoding pair and extracts the plan's action tokens.
func (s *HTTPSolver) Solve(ctx context.Context, domainText string, problemText string) (_ []string, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)

	payload, err := json.Marshal(solveRequest{Domain: domainText, Problem: problemText})
	if err != nil {
		return nil, fmt.Errorf("solve: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/solve", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("solve: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solve: post encoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("solve: %w", &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	var body solveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("solve: decode response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("solve: solver returned status %q", body.Status)
	}

	if body.Result.Plan == nil {
		return nil, errors.New("solve: response has no plan")
	}

	steps := make([]string, 0, len(body.Result.Plan))
	for _, step := range body.Result.Plan {
		steps = append(steps, step.Name)
	}

	return steps, nil
}

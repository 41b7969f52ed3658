package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestHTTPSolverSolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/solve" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Domain == "" || req.Problem == "" {
			t.Error("empty encoding in request")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"result": {
				"plan": [
					{"name": "(travel home miami)"},
					{"name": "(visit miami)"}
				]
			}
		}`))
	}))
	defer srv.Close()

	s := NewHTTPSolver(srv.URL)
	steps, err := s.Solve(context.Background(), "(define (domain trip))", "(define (problem trip-problem))")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"(travel home miami)", "(visit miami)"}
	if !reflect.DeepEqual(steps, want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
}

func TestHTTPSolverErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "planner exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewHTTPSolver(srv.URL)
	if _, err := s.Solve(context.Background(), "d", "p"); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestHTTPSolverRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "result": {}}`))
	}))
	defer srv.Close()

	s := NewHTTPSolver(srv.URL)
	if _, err := s.Solve(context.Background(), "d", "p"); err == nil {
		t.Fatal("expected error for solver status != ok")
	}
}

func TestHTTPSolverMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	s := NewHTTPSolver(srv.URL)
	if _, err := s.Solve(context.Background(), "d", "p"); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

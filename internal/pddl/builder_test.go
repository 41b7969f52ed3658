package pddl

import (
	"strings"
	"testing"
)

func TestBuildDomain(t *testing.T) {
	d := BuildDomain()

	for _, want := range []string{
		"(define (domain trip)",
		"(:action travel",
		"(:action visit",
		"(connected ?a - location ?b - location)",
	} {
		if !strings.Contains(d, want) {
			t.Errorf("domain missing %q", want)
		}
	}

	if strings.HasPrefix(d, " ") || strings.HasPrefix(d, "\n") {
		t.Error("domain text must be flush-left")
	}
}

func TestBuildProblem(t *testing.T) {
	p := BuildProblem([]string{"home", "new_york", "miami"}, "home", []string{"new_york", "miami"})

	for _, want := range []string{
		"(define (problem trip-problem)",
		"home new_york miami - location",
		"(at home)",
		"(connected home new_york)",
		"(connected miami new_york)",
		"(visited new_york)",
		"(visited miami)",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("problem missing %q:\n%s", want, p)
		}
	}

	// No location is connected to itself.
	if strings.Contains(p, "(connected home home)") {
		t.Error("problem contains a self-connection")
	}
}

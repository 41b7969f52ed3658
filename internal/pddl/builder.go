// Package pddl emits the STRIPS-style domain and problem encodings consumed
// by the external solver. The text is opaque to the rest of the service: it
// is built here, shipped to the solver, and echoed back to API clients for
// inspection, never parsed locally.
package pddl

import (
	"fmt"
	"strings"
)

// BuildDomain returns the fixed trip planning domain: typed locations with
// travel (move between connected locations) and visit (mark a location
// visited) actions.
func BuildDomain() string {
	return `(define (domain trip)
  (:requirements :strips :typing)
  (:types location)

  (:predicates
    (at ?l - location)
    (connected ?a - location ?b - location)
    (visited ?l - location)
  )

  (:action travel
    :parameters (?from - location ?to - location)
    :precondition (and (at ?from) (connected ?from ?to))
    :effect (and
      (not (at ?from))
      (at ?to)
    )
  )

  (:action visit
    :parameters (?place - location)
    :precondition (at ?place)
    :effect (visited ?place)
  )
)
`
}

// BuildProblem renders a concrete trip problem: the traveler starts at
// start, every location pair is connected, and each goal must end up
// visited. The emitted text is flush-left; some solvers reject leading
// whitespace before (define).
func BuildProblem(locations []string, start string, goals []string) string {
	initLines := []string{fmt.Sprintf("(at %s)", start)}
	for _, a := range locations {
		for _, b := range locations {
			if a != b {
				initLines = append(initLines, fmt.Sprintf("(connected %s %s)", a, b))
			}
		}
	}

	goalParts := make([]string, 0, len(goals))
	for _, g := range goals {
		goalParts = append(goalParts, fmt.Sprintf("(visited %s)", g))
	}

	return fmt.Sprintf(`(define (problem trip-problem)
  (:domain trip)

  (:objects
    %s - location
  )

  (:init
    %s
  )

  (:goal
    (and
      %s
    )
  )
)
`,
		strings.Join(locations, " "),
		strings.Join(initLines, "\n    "),
		strings.Join(goalParts, "\n      "),
	)
}

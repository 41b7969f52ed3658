package services

import (
	"fmt"
	"strings"
)

type ActionKind string

const (
	ActionTravel ActionKind = "travel"
	ActionVisit  ActionKind = "visit"
)

// One parsed step of a solver plan: either a move between two locations or a
// visit at one.
type Action struct {
	Kind     ActionKind
	From     string
	To       string
	Location string
}

// String re-serializes the action in solver token form.
func (a Action) String() string {
	switch a.Kind {
	case ActionTravel:
		return fmt.Sprintf("(%s %s %s)", a.Kind, a.From, a.To)
	case ActionVisit:
		return fmt.Sprintf("(%s %s)", a.Kind, a.Location)
	default:
		return string(a.Kind)
	}
}

// ParseAction classifies one raw plan line.
//
// Lines are lower-cased, stripped of parentheses, and split on whitespace.
// The bool reports whether the line produced an action; empty, unrecognized,
// or truncated lines are dropped silently. The solver is an untrusted
// external component, so the parser must accept any input without failing.
func ParseAction(line string) (Action, bool) {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(strings.ToLower(line))
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return Action{}, false
	}

	switch tokens[0] {
	case "travel":
		if len(tokens) < 3 {
			return Action{}, false
		}
		return Action{Kind: ActionTravel, From: tokens[1], To: tokens[2]}, true
	case "visit":
		if len(tokens) < 2 {
			return Action{}, false
		}
		return Action{Kind: ActionVisit, Location: tokens[1]}, true
	default:
		return Action{}, false
	}
}

// ParsePlan parses a full plan, keeping only well-formed actions in order.
func ParsePlan(steps []string) []Action {
	actions := make([]Action, 0, len(steps))
	for _, step := range steps {
		if a, ok := ParseAction(step); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

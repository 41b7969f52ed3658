package services

import "testing"

func TestParseActionTravel(t *testing.T) {
	a, ok := ParseAction("(travel home new_york)")
	if !ok {
		t.Fatal("expected a parsed action")
	}
	if a.Kind != ActionTravel || a.From != "home" || a.To != "new_york" {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestParseActionVisit(t *testing.T) {
	a, ok := ParseAction("(visit new_york)")
	if !ok {
		t.Fatal("expected a parsed action")
	}
	if a.Kind != ActionVisit || a.Location != "new_york" {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestParseActionTolerance(t *testing.T) {
	// Case-insensitive, parentheses optional, extra whitespace ignored.
	a, ok := ParseAction("  TRAVEL   home   miami  ")
	if !ok {
		t.Fatal("expected a parsed action")
	}
	if a.Kind != ActionTravel || a.From != "home" || a.To != "miami" {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestParseActionDropsMalformedLines(t *testing.T) {
	dropped := []string{
		"",
		"   ",
		"()",
		"(travel home)",
		"(travel)",
		"(visit)",
		"(teleport home miami)",
		"; cost = 2 (unit cost)",
	}

	for _, line := range dropped {
		if _, ok := ParseAction(line); ok {
			t.Errorf("ParseAction(%q) should drop the line", line)
		}
	}
}

func TestParsePlanKeepsOrderAndSkipsJunk(t *testing.T) {
	actions := ParsePlan([]string{
		"(travel home new_york)",
		"garbage",
		"(visit new_york)",
	})

	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].Kind != ActionTravel || actions[1].Kind != ActionVisit {
		t.Fatalf("unexpected order: %+v", actions)
	}
}

func TestActionRoundTrip(t *testing.T) {
	for _, raw := range []string{"(travel home new_york)", "(visit miami)"} {
		a, ok := ParseAction(raw)
		if !ok {
			t.Fatalf("ParseAction(%q) failed", raw)
		}

		b, ok := ParseAction(a.String())
		if !ok {
			t.Fatalf("re-parse of %q failed", a.String())
		}
		if a != b {
			t.Fatalf("round trip changed action: %+v != %+v", a, b)
		}
	}
}

package render

import (
	"math/big"
	"strings"
	"testing"

	"factorionlib/locale"
	"factorionlib/numeric"
	"factorionlib/parser"
	"factorionlib/planner"
)

func testLocale(t *testing.T) locale.Locale {
	t.Helper()
	store, err := locale.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	loc, ok := store.Get("en")
	if !ok {
		t.Fatal("expected builtin 'en' locale")
	}
	return loc
}

func TestRenderExactFactorial(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:  numeric.NewExactInt64(5),
		Steps:  []planner.Step{{Level: 1}},
		Result: numeric.NewExactInt64(120),
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	if !result.Fit {
		t.Fatalf("expected fit, got %+v", result)
	}
	if !strings.Contains(result.Reply, "120") {
		t.Fatalf("expected reply to contain 120, got %q", result.Reply)
	}
}

func TestRenderApproximateAddsApproxNote(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:  numeric.NewExactInt64(1000),
		Steps:  []planner.Step{{Level: 1}},
		Result: numeric.NewApproximate(4.023872, big.NewInt(2567)),
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	if !result.Fit {
		t.Fatalf("expected fit, got %+v", result)
	}
	if !strings.Contains(result.Reply, "10^") {
		t.Fatalf("expected scientific-notation result, got %q", result.Reply)
	}
	if loc.Notes["approx"] != "" && !strings.Contains(result.Reply, loc.Notes["approx"]) {
		t.Fatalf("expected approx note, got %q", result.Reply)
	}
}

func TestRenderFactorionNote(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:  numeric.NewExactInt64(1),
		Steps:  []planner.Step{{IsSubfactorial: true}},
		Result: numeric.NewExactInt64(145),
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	if !strings.Contains(result.Reply, "145 is a factorion") {
		t.Fatalf("expected factorion note mentioning 145, got %q", result.Reply)
	}
}

func TestRenderNoNoteSuppressesFactorionNote(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:  numeric.NewExactInt64(1),
		Steps:  []planner.Step{{IsSubfactorial: true}},
		Result: numeric.NewExactInt64(145),
	}
	withNote := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	withoutNote := Render([]planner.Calculation{calc}, loc, parser.NoNote, 2000, "", consts)
	if len(withoutNote.Reply) >= len(withNote.Reply) {
		t.Fatalf("expected NoNote reply shorter, got %q vs %q", withoutNote.Reply, withNote.Reply)
	}
}

func TestRenderBudgetDropsEntries(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	var calcs []planner.Calculation
	for i := int64(1); i <= 20; i++ {
		calcs = append(calcs, planner.Calculation{
			Value:  numeric.NewExactInt64(i),
			Steps:  []planner.Step{{Level: 1}},
			Result: numeric.NewExactInt64(i * i),
		})
	}
	result := Render(calcs, loc, 0, 120, "", consts)
	if result.Fit && len(result.Reply) > 120 {
		t.Fatalf("reply exceeds budget: %d bytes", len(result.Reply))
	}
}

func TestRenderNoPostFallback(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:  numeric.NewExactInt64(999),
		Steps:  []planner.Step{{Level: 1}},
		Result: numeric.NewExactInt64(999),
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 1, "", consts)
	if result.Fit {
		t.Fatal("expected Fit=false for an impossible budget")
	}
	if result.Reply == "" {
		t.Fatal("expected a non-empty no_post reply")
	}
}

func TestRenderUnevaluatedEntry(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	calc := planner.Calculation{
		Value:             numeric.NewExactInt64(999999999),
		Steps:             []planner.Step{{Level: 1}},
		Result:            numeric.NewExactInt64(999999999),
		Unevaluated:       true,
		UnevaluatedReason: "too large to construct",
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	if !strings.Contains(result.Reply, "too big") {
		t.Fatalf("expected too-big sentence, got %q", result.Reply)
	}
}

func TestRenderUnevaluatedLiteralTooBigToConstruct(t *testing.T) {
	loc := testLocale(t)
	consts := planner.DefaultConsts(nil)
	literal := strings.Repeat("9", 30)
	calc := planner.Calculation{
		Steps:             []planner.Step{{Level: 1}},
		Unevaluated:       true,
		UnevaluatedReason: "literal too large to construct",
		Literal:           literal,
	}
	result := Render([]planner.Calculation{calc}, loc, 0, 2000, "", consts)
	if !strings.Contains(result.Reply, literal) {
		t.Fatalf("expected the raw literal text in the reply, got %q", result.Reply)
	}
	if !strings.Contains(result.Reply, "too big") {
		t.Fatalf("expected too-big sentence, got %q", result.Reply)
	}
}

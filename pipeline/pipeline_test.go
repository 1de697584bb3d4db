package pipeline

import (
	"context"
	"strings"
	"testing"

	"factorionlib/locale"
	"factorionlib/parser"
	"factorionlib/planner"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	store, err := locale.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	consts := planner.DefaultConsts(store)
	return Options{TermialEnabled: true, Consts: consts}
}

func TestProcessPlainFactorial(t *testing.T) {
	opts := testOptions(t)
	status, reply, meta, _ := Process(context.Background(), "what is 5!", "meta-1", 0, 2000, "en", "", opts)
	if status != FactorialsFound {
		t.Fatalf("expected FactorialsFound, got %v (reply=%q)", status, reply)
	}
	if !strings.Contains(reply, "120") {
		t.Fatalf("expected reply to contain 120, got %q", reply)
	}
	if meta != "meta-1" {
		t.Fatalf("expected metadata to ride through untouched, got %q", meta)
	}
}

func TestProcessNotAFactorial(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, _ := Process(context.Background(), "hello there, no punctuation of interest", "m", 0, 2000, "en", "", opts)
	if status != NotAFactorial {
		t.Fatalf("expected NotAFactorial, got %v (reply=%q)", status, reply)
	}
	if reply != "" {
		t.Fatalf("expected empty reply, got %q", reply)
	}
}

func TestProcessNoFactorial(t *testing.T) {
	opts := testOptions(t)
	status, _, _, _ := Process(context.Background(), "wow!! that's surprising", "m", 0, 2000, "en", "", opts)
	if status != NoFactorial {
		t.Fatalf("expected NoFactorial for punctuation with no valid literal, got %v", status)
	}
}

func TestProcessNestedTermialOfFactorial(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, _ := Process(context.Background(), "What is 5!?", "m", 0, 2000, "en", "", opts)
	if status != FactorialsFound {
		t.Fatalf("expected FactorialsFound, got %v", status)
	}
	if !strings.Contains(reply, "7260") {
		t.Fatalf("expected reply to contain 7260, got %q", reply)
	}
}

func TestProcessReplyWouldBeTooLong(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, _ := Process(context.Background(), "1000!", "m", 0, 1, "en", "", opts)
	if status != ReplyWouldBeTooLong {
		t.Fatalf("expected ReplyWouldBeTooLong for an impossible budget, got %v (reply=%q)", status, reply)
	}
}

func TestProcessUnregisteredLocaleReturnsError(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, kind := Process(context.Background(), "5!", "m", 0, 2000, "xx", "", opts)
	if status != Error {
		t.Fatalf("expected Error for an unregistered locale_key, got %v", status)
	}
	if kind != "locale" {
		t.Fatalf("expected errorKind %q, got %q", "locale", kind)
	}
	if reply != "" {
		t.Fatalf("expected no partial reply, got %q", reply)
	}
}

func TestProcessDontCheckCommandSkipsProcessing(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, _ := Process(context.Background(), "5! [dont calculate]", "m", 0, 2000, "en", "", opts)
	if status != NotAFactorial {
		t.Fatalf("expected NotAFactorial when dont_check is set, got %v (reply=%q)", status, reply)
	}
	if reply != "" {
		t.Fatalf("expected no reply, got %q", reply)
	}
}

func TestProcessDontCheckChannelDefaultShortCircuitsAtConstruct(t *testing.T) {
	opts := testOptions(t)
	status, reply, _, _ := Process(context.Background(), "5!", "m", parser.DontCheck, 2000, "en", "", opts)
	if status != NotAFactorial {
		t.Fatalf("expected NotAFactorial when the channel default carries dont_check, got %v (reply=%q)", status, reply)
	}
	if reply != "" {
		t.Fatalf("expected no reply, got %q", reply)
	}
}

func TestStepwisePhases(t *testing.T) {
	opts := testOptions(t)
	constructed := Construct("3!", "m", 0, 2000, "en", "")
	if constructed.Status != FactorialsFound {
		t.Fatalf("expected Construct to pass the early-reject, got %v", constructed.Status)
	}
	extracted := Extract(constructed, opts)
	if len(extracted.Jobs) != 1 {
		t.Fatalf("expected one job, got %d", len(extracted.Jobs))
	}
	calculated := Calculate(context.Background(), extracted, opts)
	if len(calculated.Calculations) != 1 {
		t.Fatalf("expected one calculation, got %d", len(calculated.Calculations))
	}
	rendered := Render(calculated, opts)
	if !strings.Contains(rendered.Reply, "6") {
		t.Fatalf("expected reply to contain 6, got %q", rendered.Reply)
	}
}

package repair

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/argmend/argmend/providers/oracle"
)

func TestSelfTestAllCasesPass(t *testing.T) {
	o := &fakeOracle{outcome: oracle.Success(map[string]any{"fixed": true})}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	results := SelfTest(context.Background(), o, log)
	if len(results) != 3 {
		t.Fatalf("expected 3 canned cases, got %d", len(results))
	}
	for i, r := range results {
		if !r.Passed {
			t.Errorf("case %d: expected pass, got failure %q", i+1, r.Failure)
		}
	}
	if o.callCount() != 3 {
		t.Errorf("expected one oracle call per case, got %d", o.callCount())
	}
	if got := strings.Count(buf.String(), "self-test case passed"); got != 3 {
		t.Errorf("expected 3 pass log lines, got %d:\n%s", got, buf.String())
	}
}

func TestSelfTestReportsFailures(t *testing.T) {
	o := &fakeOracle{outcome: oracle.Fail(oracle.FailureNoCredential)}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	results := SelfTest(context.Background(), o, log)
	for i, r := range results {
		if r.Passed {
			t.Errorf("case %d: expected failure", i+1)
		}
		if r.Failure != oracle.FailureNoCredential {
			t.Errorf("case %d: expected %q, got %q", i+1, oracle.FailureNoCredential, r.Failure)
		}
	}
	if got := strings.Count(buf.String(), "self-test case failed"); got != 3 {
		t.Errorf("expected 3 fail log lines, got %d:\n%s", got, buf.String())
	}
}

func TestSelfTestNilLoggerUsesDefault(t *testing.T) {
	o := &fakeOracle{outcome: oracle.Success(map[string]any{})}
	results := SelfTest(context.Background(), o, nil)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

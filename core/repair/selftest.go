package repair

import (
	"context"
	"log/slog"
)

// selfTestCases are canned malformed payloads covering the damage the
// pipeline is expected to handle: a missing colon, single quotes with
// unquoted keys, and an unterminated document.
var selfTestCases = []string{
	`{"command": "ls -la", "timeout" 30000}`,
	`{name: 'John', age: 30,}`,
	`{"items": ["a", "b"], "count": 2`,
}

// SelfTestResult records the outcome of one diagnostic case.
type SelfTestResult struct {
	Input   string
	Passed  bool
	Failure string
	Value   any
}

// SelfTest runs the canned cases through the oracle and logs pass/fail per
// case. It is an operator diagnostic, not part of the production hot path.
func SelfTest(ctx context.Context, o Oracle, log *slog.Logger) []SelfTestResult {
	if log == nil {
		log = slog.Default()
	}

	results := make([]SelfTestResult, 0, len(selfTestCases))
	for i, input := range selfTestCases {
		outcome := o.Repair(ctx, input)
		result := SelfTestResult{
			Input:   input,
			Passed:  outcome.Ok(),
			Failure: outcome.Failure,
			Value:   outcome.Value,
		}
		results = append(results, result)

		if result.Passed {
			log.Info("self-test case passed", "case", i+1, "input", input)
		} else {
			log.Warn("self-test case failed", "case", i+1, "input", input, "reason", result.Failure)
		}
	}
	return results
}

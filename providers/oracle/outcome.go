package oracle

import "fmt"

// Fixed failure reasons. Transport and HTTP failures carry detail and are
// built with [TransportFailure] and [HTTPFailure].
const (
	FailureNoCredential  = "no credential"
	FailureEmptyResponse = "empty response"
	FailureNoJSONFound   = "no JSON found in response"
	FailureUnparsable    = "unparsable repaired JSON"
)

// TransportFailure formats the reason for a network-level failure
// (connection error, timeout, cancellation).
func TransportFailure(detail string) string {
	return fmt.Sprintf("transport error: %s", detail)
}

// HTTPFailure formats the reason for a non-2xx HTTP status.
func HTTPFailure(status int) string {
	return fmt.Sprintf("http error: %d", status)
}

// Outcome is the tagged result of a single repair attempt. Exactly one of
// the two states holds: a parsed JSON document in Value, or a non-empty
// Failure reason. Outcomes are produced fresh per call and never mutated.
type Outcome struct {
	// Value is the fully parsed JSON document (object, array, or scalar)
	// when the repair succeeded.
	Value any

	// Failure is empty on success, otherwise one of the Failure* reasons or
	// a TransportFailure/HTTPFailure string.
	Failure string
}

// Ok reports whether the repair succeeded.
func (o Outcome) Ok() bool {
	return o.Failure == ""
}

// Success wraps a parsed JSON document in a successful Outcome.
func Success(value any) Outcome {
	return Outcome{Value: value}
}

// Fail wraps a failure reason in an unsuccessful Outcome.
func Fail(reason string) Outcome {
	return Outcome{Failure: reason}
}

// Package repair implements the parse-recovery hook the host calls whenever
// raw tool-call argument text must become a JSON value.
//
// [Hook.Handle] is the single integration point. It tries a strict local
// parse first; on failure it asks the remote repair oracle, reporting
// progress and outcome through the [ui.Notifier], and guarantees the host
// always receives a JSON value — at worst an empty object. A malformed tool
// call can therefore never crash or stall the host's tool-invocation
// pipeline: downstream validation rejects the empty object as a normal
// domain error rather than an exceptional one.
//
// [SelfTest] runs canned malformed payloads through an oracle so operators
// can verify the repair service end to end without a live tool call.
package repair

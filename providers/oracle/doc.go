// Package oracle implements the remote JSON-repair client. It sends broken
// tool-call argument text to a chat-completions endpoint with a fixed repair
// instruction and interprets the model's reply as a JSON document.
//
// Every failure mode is encoded as a value: [Client.Repair] never returns a
// Go error. The [Outcome] it produces is either a successfully parsed
// document or one of a closed set of failure reasons (missing credential,
// transport error, HTTP error, empty response, no JSON found, unparsable
// repaired JSON). Callers decide how to surface failures; the client itself
// performs no UI interaction.
//
// When the model wraps its answer in prose, a salvage pass extracts the
// first-'{'-to-last-'}' span and parses that instead. The span is greedy and
// not nested-balance aware, which is a documented limitation: on adversarial
// text containing multiple objects the extracted span may not parse.
package oracle

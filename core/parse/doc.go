// Package parse provides local JSON parsing for raw tool-call argument text.
//
// [Strict] is the fast path: a plain [encoding/json] parse that either yields
// a document or fails. [Repaired] is the offline fallback: it runs the input
// through jsonrepair to fix common LLM malformations (single quotes, missing
// commas, trailing garbage) before parsing again. Neither function touches
// the network; remote repair lives in the oracle provider.
package parse

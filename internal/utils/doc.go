// Package utils provides shared low-level helpers used throughout the
// argmend internals: an HTTP POST helper for synchronous JSON round-trips
// with bearer authentication, string truncation for log and error previews,
// and a generic pointer constructor.
//
// Key entry points: [DoPostSync], [TruncateString], [Ptr].
package utils

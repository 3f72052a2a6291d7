// Package sampling implements the weighted position sampler behind pattern
// generation.
//
// # Design
//
// Every selectable character position starts with an eligibility weight of
// 100. Each time a position is drawn its weight is reduced by the configured
// drop rate; positions at or below zero leave the candidate pool. Successive
// patterns within one generation session are therefore biased away from
// already-revealed positions, spreading exposure across the whole password.
//
// All mutable state of one generation run lives in a [Session] value owned by
// the caller. Sessions are not safe for concurrent use; distinct sessions
// share nothing.
//
// # What this package must NOT do
//
//   - Hash characters or touch storage.
//   - Keep state between sessions.
//   - Read global randomness directly; the random source is injected.
package sampling

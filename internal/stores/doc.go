// Package stores provides the Redis-backed persistence layer for per-user
// partial-hash sets.
//
// # Design
//
// Each user owns one Redis hash keyed by prefix:userID. Fields are patterns
// rendered as decimal strings; values are PHC-encoded argon2id hashes of the
// selected characters. Enrollment replaces the whole set inside a MULTI/EXEC
// transaction; challenge selection uses HRANDFIELD so the hot path stays a
// single round-trip.
//
// # Architecture boundaries
//
// This package owns persistence only. It does NOT generate patterns, hash
// characters, or make authentication decisions — those responsibilities
// belong to the Engine.
//
// # What this package must NOT do
//
//   - Import partialpass or any sibling internal package.
//   - Store raw passwords or selected characters.
//   - Interpret hash values beyond opaque strings.
package stores

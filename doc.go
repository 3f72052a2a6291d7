// Package partialpass provides a partial-password authentication engine:
// users enroll a full password once and each login challenge reveals only a
// pseudo-random subset of its character positions, identified by a bitmask
// pattern. Only argon2id hashes of the selected characters are ever stored.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build]. Each enrollment run owns a private generation session
// (weight table, seen-pattern set), so concurrent enrollments share no state.
//
// # Architecture boundaries
//
// partialpass is the public surface. It exposes [Engine], [Builder], [Config],
// and value types (Challenge, EnrollResult, HashSet, etc.). All internal
// coordination — weighted sampling, Redis persistence, audit dispatch — lives
// under internal/ and is never exported directly.
//
// # What this package must NOT do
//
//   - Persist or log raw passwords or selected characters.
//   - Expose Redis clients, internal stores, or sampling internals in its
//     public API.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//
// # Performance contract
//
// Verify is the hot path: one Redis round-trip plus one argon2id derivation.
// Enroll is deliberately expensive — it performs one argon2id derivation per
// generated pattern — and callers should wrap it with their own deadline when
// PasswordsMax or BitsRange is large.
package partialpass

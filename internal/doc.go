// Package internal contains helper packages that are intentionally private to
// partialpass.
//
// # Sub-packages
//
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - sampling — weight table, position sampler, and generation sessions
//   - stores — Redis-backed pattern/hash persistence
//
// # What this package must NOT do
//
//   - Export types that appear in the public partialpass API other than via
//     root-level aliases.
//   - Be imported by any package outside the partialpass module.
package internal

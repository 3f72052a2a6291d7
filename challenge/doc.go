// Package challenge issues and validates signed challenge tokens.
//
// A challenge token binds (user, pattern, expiry) into a stateless JWT so the
// verification endpoint does not need to remember which pattern it rendered.
// Tokens are signed with hs256 or ed25519 and carry a uuid jti as the
// challenge ID.
//
// # What this package must NOT do
//
//   - Carry password characters or hashes in claims.
//   - Accept unsigned or differently-signed tokens.
//   - Talk to storage; pattern existence is re-checked by the Engine.
package challenge

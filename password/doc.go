// Package password wraps argon2id hashing for partial-password substrings.
//
// Hashes are emitted in PHC string format with a fresh random salt per call,
// so the stored hash set never reveals which substrings collide. Verification
// re-derives the key from the parameters embedded in the PHC string and
// compares in constant time.
//
// # What this package must NOT do
//
//   - Persist plaintext or derived material anywhere.
//   - Log inputs, salts, or derived keys.
//   - Enforce password-strength policy; substrings of length 1 are valid
//     inputs by design.
package password

// Package pattern implements the bitmask encoding shared by the generator,
// the storage layer, and rendering collaborators.
//
// A Pattern is a uint64 whose bit i is set iff character position i of the
// enrolled password belongs to the revealed subset. Bit 0 is the least
// significant bit. The codec therefore has a hard ceiling of 64 positions
// ([MaxBits]); configurations above it must be rejected before any pattern
// is produced.
//
// # What this package must NOT do
//
//   - Perform I/O or touch storage.
//   - Import any other package of this module.
//   - Hash or otherwise transform selected characters beyond concatenation.
package pattern

// Package sha2 implements the SHA-2 hash family defined in NIST FIPS 180-4.
//
// A single Merkle-Damgard engine is instantiated for two word widths:
//
//   - 32-bit words, 512-bit blocks, 64 rounds: SHA-256
//   - 64-bit words, 1024-bit blocks, 80 rounds: SHA-384 and SHA-512
//
// Hashing a message runs five stages in order:
//
//  1. pad: append 0x80, zero fill and the big-endian message bit length
//     so the buffer is a whole number of blocks.
//  2. parseBlocks: split the buffer into blocks of 16 big-endian words.
//  3. schedule: expand each block into one word per round.
//  4. compress: run the round function over the schedule and add the
//     result back into the hash state (chaining).
//  5. assemble: serialize the state big-endian and truncate it to the
//     digest size.
//
// SHA-384 and SHA-512 share everything except the initial hash value and
// the digest size; SHA-384 keeps the first 48 bytes of the 64-byte state.
//
// The whole message is hashed in one call. Every function is pure and may
// be called from multiple goroutines at once.
//
// Usage:
//
//	digest := sha2.Sum(sha2.SHA512, []byte("abc"))
//	fmt.Printf("%x\n", digest)
package sha2

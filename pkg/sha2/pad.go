package sha2

import "golang.org/x/crypto/cryptobyte"

// paddedBlocks returns the number of blocks pad produces for a message of
// n bytes. One block is added past the full ones, or two when the tail
// leaves no room for both the 0x80 terminator and the length field.
func (fam *family[W]) paddedBlocks(n int) int {
	blockBits := uint64(fam.blockSize()) * 8
	reserveBits := uint64(fam.lengthSize()) * 8
	m := uint64(n) * 8

	blocks := m/blockBits + 1
	if m%blockBits >= blockBits-reserveBits {
		blocks++
	}
	return int(blocks)
}

// pad returns message followed by the 0x80 terminator, zero fill and the
// message bit length as a big-endian integer of lengthSize bytes. The
// result is always a whole number of blocks.
//
// A bit length too large for the length field is not checked; such a
// message cannot be held in memory.
func (fam *family[W]) pad(message []byte) []byte {
	size := fam.paddedBlocks(len(message)) * fam.blockSize()
	fill := size - len(message) - 1 - fam.lengthSize()

	b := cryptobyte.NewFixedBuilder(make([]byte, 0, size))
	b.AddBytes(message)
	b.AddUint8(0x80)
	b.AddBytes(make([]byte, fill))
	b.AddBytes(bitLength(uint64(len(message)), fam.lengthSize()))
	return b.BytesOrPanic()
}

// bitLength encodes 8*n as a big-endian integer of size bytes (at most 16).
func bitLength(n uint64, size int) []byte {
	b := cryptobyte.NewFixedBuilder(make([]byte, 0, 16))
	b.AddUint64(n >> 61)
	b.AddUint64(n << 3)
	field := b.BytesOrPanic()
	return field[len(field)-size:]
}

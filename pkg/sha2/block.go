package sha2

import "golang.org/x/crypto/cryptobyte"

// block is one 16-word chunk of a padded message.
type block[W Word] [16]W

// parseBlocks splits a padded message into blocks, reading each word
// most significant byte first. padded must be a whole number of blocks.
func (fam *family[W]) parseBlocks(padded []byte) []block[W] {
	if len(padded)%fam.blockSize() != 0 {
		panic("sha2: padded message is not block aligned")
	}

	blocks := make([]block[W], 0, len(padded)/fam.blockSize())
	s := cryptobyte.String(padded)
	for !s.Empty() {
		var blk block[W]
		for i := range blk {
			fam.readWord(&s, &blk[i])
		}
		blocks = append(blocks, blk)
	}
	return blocks
}

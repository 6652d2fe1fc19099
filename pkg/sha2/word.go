package sha2

import "golang.org/x/crypto/cryptobyte"

// Word is the unsigned integer a SHA-2 family computes on. All arithmetic
// wraps modulo 2^n.
type Word interface {
	uint32 | uint64
}

// family holds everything a word width fixes: round constants, the sigma
// rotate/shift amounts and the big-endian word codec. The round count is
// len(k).
type family[W Word] struct {
	wordBits uint
	k        []W

	// Rotate amounts for Σ0 and Σ1.
	upper0, upper1 [3]uint
	// Two rotate amounts and one shift amount for σ0 and σ1.
	lower0, lower1 [3]uint

	readWord func(*cryptobyte.String, *W) bool
	addWord  func(*cryptobyte.Builder, W)
}

// wordSize is the word width in bytes.
func (fam *family[W]) wordSize() int { return int(fam.wordBits / 8) }

// blockSize is the block size in bytes: 16 words.
func (fam *family[W]) blockSize() int { return 16 * fam.wordSize() }

// lengthSize is the size in bytes of the trailing bit-length field: 2 words.
func (fam *family[W]) lengthSize() int { return 2 * fam.wordSize() }

func (fam *family[W]) rounds() int { return len(fam.k) }

func (fam *family[W]) rotr(x W, n uint) W {
	return x>>n | x<<(fam.wordBits-n)
}

func (fam *family[W]) upperSigma0(x W) W {
	return fam.rotr(x, fam.upper0[0]) ^ fam.rotr(x, fam.upper0[1]) ^ fam.rotr(x, fam.upper0[2])
}

func (fam *family[W]) upperSigma1(x W) W {
	return fam.rotr(x, fam.upper1[0]) ^ fam.rotr(x, fam.upper1[1]) ^ fam.rotr(x, fam.upper1[2])
}

func (fam *family[W]) lowerSigma0(x W) W {
	return fam.rotr(x, fam.lower0[0]) ^ fam.rotr(x, fam.lower0[1]) ^ x>>fam.lower0[2]
}

func (fam *family[W]) lowerSigma1(x W) W {
	return fam.rotr(x, fam.lower1[0]) ^ fam.rotr(x, fam.lower1[1]) ^ x>>fam.lower1[2]
}

// ch chooses, bit by bit, y where x is set and z where it is not.
func ch[W Word](x, y, z W) W {
	return (x & y) ^ (^x & z)
}

// maj is the bitwise majority of x, y and z.
func maj[W Word](x, y, z W) W {
	return (x & y) ^ (x & z) ^ (y & z)
}

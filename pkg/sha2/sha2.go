package sha2

import "fmt"

// Algorithm selects a SHA-2 variant.
type Algorithm uint8

// Supported algorithms.
const (
	SHA256 Algorithm = iota + 1
	SHA384
	SHA512
)

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= SHA256 && a <= SHA512
}

// Size returns the digest length in bytes, or 0 for an invalid algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256:
		return Size256
	case SHA384:
		return Size384
	case SHA512:
		return Size512
	}
	return 0
}

// BlockSize returns the block size in bytes, or 0 for an invalid algorithm.
func (a Algorithm) BlockSize() int {
	switch a {
	case SHA256:
		return BlockSize256
	case SHA384, SHA512:
		return BlockSize512
	}
	return 0
}

func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA384:
		return "sha384"
	case SHA512:
		return "sha512"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// variant pairs a word family with its initial hash value and digest size.
type variant[W Word] struct {
	fam  *family[W]
	iv   state[W]
	size int
}

var (
	sha256Variant = variant[uint32]{fam: family32, iv: iv256, size: Size256}
	sha384Variant = variant[uint64]{fam: family64, iv: iv384, size: Size384}
	sha512Variant = variant[uint64]{fam: family64, iv: iv512, size: Size512}
)

// sum hashes message in a single pass. The state is the only value
// carried from one block to the next.
func (v *variant[W]) sum(message []byte) []byte {
	s := v.iv
	w := make([]W, v.fam.rounds())
	for _, blk := range v.fam.parseBlocks(v.fam.pad(message)) {
		v.fam.schedule(&blk, w)
		v.fam.compress(&s, w)
	}
	return v.fam.assemble(&s, v.size)
}

// Sum returns the digest of message under alg. The result is
// alg.Size() bytes long.
//
// Sum panics if alg is not valid; callers choosing an algorithm from user
// input should check Valid first.
func Sum(alg Algorithm, message []byte) []byte {
	switch alg {
	case SHA256:
		return sha256Variant.sum(message)
	case SHA384:
		return sha384Variant.sum(message)
	case SHA512:
		return sha512Variant.sum(message)
	}
	panic(fmt.Sprintf("sha2: invalid algorithm %v", alg))
}

// Sum256 returns the SHA-256 digest of message.
func Sum256(message []byte) [Size256]byte {
	var d [Size256]byte
	copy(d[:], sha256Variant.sum(message))
	return d
}

// Sum384 returns the SHA-384 digest of message.
func Sum384(message []byte) [Size384]byte {
	var d [Size384]byte
	copy(d[:], sha384Variant.sum(message))
	return d
}

// Sum512 returns the SHA-512 digest of message.
func Sum512(message []byte) [Size512]byte {
	var d [Size512]byte
	copy(d[:], sha512Variant.sum(message))
	return d
}

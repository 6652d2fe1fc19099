package sha2

import "golang.org/x/crypto/cryptobyte"

// assemble serializes s big-endian and keeps the leading size bytes.
func (fam *family[W]) assemble(s *state[W], size int) []byte {
	full := len(s) * fam.wordSize()
	if size > full {
		panic("sha2: digest size exceeds hash state")
	}

	b := cryptobyte.NewFixedBuilder(make([]byte, 0, full))
	for _, v := range s {
		fam.addWord(b, v)
	}
	return b.BytesOrPanic()[:size:size]
}

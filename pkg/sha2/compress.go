package sha2

// state is the eight-word hash value carried from one block to the next.
type state[W Word] [8]W

// compress runs every round over the schedule w and adds the working
// variables back into s.
func (fam *family[W]) compress(s *state[W], w []W) {
	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]

	for t, k := range fam.k {
		t1 := h + fam.upperSigma1(e) + ch(e, f, g) + k + w[t]
		t2 := fam.upperSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
}

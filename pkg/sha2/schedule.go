package sha2

// schedule expands blk into w, which must hold one word per round.
// The first 16 entries are the block itself; the rest follow
//
//	w[t] = σ1(w[t-2]) + w[t-7] + σ0(w[t-15]) + w[t-16]
func (fam *family[W]) schedule(blk *block[W], w []W) {
	copy(w, blk[:])
	for t := len(blk); t < len(w); t++ {
		w[t] = fam.lowerSigma1(w[t-2]) + w[t-7] + fam.lowerSigma0(w[t-15]) + w[t-16]
	}
}

package domain

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// javaRandom reproduces the java.util.Random linear congruential generator
// bit for bit. Only the operations the forecast needs are implemented.
type javaRandom struct {
	seed int64
}

// newJavaRandom seeds the generator the way new Random(long) does. An int32
// seed is sign-extended first, matching Java's int to long promotion.
func newJavaRandom(seed int64) *javaRandom {
	return &javaRandom{seed: (seed ^ lcgMultiplier) & lcgMask}
}

func (r *javaRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(uint64(r.seed) >> (48 - bits))
}

// nextInt returns a value in [0, bound). bound must be positive.
func (r *javaRandom) nextInt(bound int32) int32 {
	if bound <= 0 {
		panic("domain: nextInt bound must be positive")
	}

	// Power of two: take the high bits directly.
	if bound&(-bound) == bound {
		return int32((int64(bound) * int64(r.next(31))) >> 31)
	}

	// Reject values from the final partial bucket. The loop condition relies
	// on int32 overflow, exactly like the Java source.
	bits := r.next(31)
	val := bits % bound
	for bits-val+(bound-1) < 0 {
		bits = r.next(31)
		val = bits % bound
	}
	return val
}

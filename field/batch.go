package field

import "github.com/bits-and-blooms/bitset"

// BatchInvert computes the inverses of the input elements using Montgomery's
// trick: one field inversion plus 3(n-1) multiplications instead of n
// inversions. Zero entries are treated as fixed points and map to zero, so
// the function is total; callers batch-inverting Lagrange denominators and
// similar domains rely on this.
func BatchInvert[E any, PE Element[E]](a []E) []E {
	res := make([]E, len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := bitset.New(uint(len(a)))
	var accumulator E
	PE(&accumulator).SetOne()

	for i := 0; i < len(a); i++ {
		if PE(&a[i]).IsZero() {
			zeroes.Set(uint(i))
			continue
		}
		PE(&res[i]).Set(&accumulator)
		PE(&accumulator).Mul(&accumulator, &a[i])
	}

	PE(&accumulator).Inverse(&accumulator)

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes.Test(uint(i)) {
			continue
		}
		PE(&res[i]).Mul(&res[i], &accumulator)
		PE(&accumulator).Mul(&accumulator, &a[i])
	}

	return res
}

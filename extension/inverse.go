package extension

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/extfield/field"
)

// Inverse returns a⁻¹ and true, or the zero element and false when a is zero.
//
// The extension has no cheap direct inversion formula; instead the
// Frobenius-norm (Itoh–Tsujii) algorithm multiplies a by its Frobenius
// conjugates until the product, the norm, lands in the base field, inverts
// it there, and scales back. One base-field inversion plus a handful of
// extension multiplications.
func (f *Extension[E, PE]) Inverse(a Element[E]) (Element[E], bool) {
	f.checkLen(a)
	if f.IsZero(a) {
		return f.Zero(), false
	}
	return f.inverseFn(f, a), true
}

// BatchInvert inverts a batch of extension elements with Montgomery's trick:
// one extension inversion plus 3(n-1) multiplications. Zero entries map to
// zero; callers inverting Lagrange-basis denominators rely on this.
func (f *Extension[E, PE]) BatchInvert(a []Element[E]) []Element[E] {
	res := make([]Element[E], len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := bitset.New(uint(len(a)))
	accumulator := f.One()

	for i := 0; i < len(a); i++ {
		if f.IsZero(a[i]) {
			zeroes.Set(uint(i))
			res[i] = f.Zero()
			continue
		}
		res[i] = accumulator
		accumulator = f.Mul(accumulator, a[i])
	}

	// the accumulated product of non-zero entries is itself non-zero
	accumulator, _ = f.Inverse(accumulator)

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes.Test(uint(i)) {
			continue
		}
		res[i] = f.Mul(res[i], accumulator)
		accumulator = f.Mul(accumulator, a[i])
	}

	return res
}

// inverse2: the norm is a^(p+1), so a⁻¹ = a^p · norm⁻¹.
func inverse2[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	aP := f.Frobenius(a)
	norm := f.mulFn(f, aP, a)
	return scaleByNormInverse(f, aP, norm)
}

// inverse4 follows Algorithm 11.3.4 in Handbook of Elliptic and Hyperelliptic
// Curve Cryptography: build a^(p³+p²+p) from Frobenius conjugates, then one
// more multiplication by a reaches the norm a^(p³+p²+p+1).
func inverse4[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	aPowP := f.Frobenius(a)                           // a^p
	aPowP1 := f.mulFn(f, aPowP, a)                    // a^(p+1)
	aPowP3P2 := f.repeatedFrobenius(aPowP1, 2)        // a^(p³+p²)
	rMinus1 := f.mulFn(f, aPowP3P2, aPowP)            // a^(p³+p²+p)
	norm := f.mulFn(f, rMinus1, a)                    // a^(p³+p²+p+1)
	return scaleByNormInverse(f, rMinus1, norm)
}

// inverse5: two multiplications suffice, doubling the Frobenius span each
// step: a^(p+p²), then a^(p+p²+p³+p⁴).
func inverse5[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	aPowP := f.Frobenius(a)                                       // a^p
	aPowP2P := f.mulFn(f, aPowP, f.repeatedFrobenius(aPowP, 1))   // a^(p²+p)
	rMinus1 := f.mulFn(f, aPowP2P, f.repeatedFrobenius(aPowP2P, 2)) // a^(p⁴+p³+p²+p)
	norm := f.mulFn(f, rMinus1, a)
	return scaleByNormInverse(f, rMinus1, norm)
}

// scaleByNormInverse checks the norm landed in the base field, inverts it
// there and scales a^(r-1) by the result. The check is kept in all builds:
// a norm outside the base field is the signature of a misconfigured
// non-residue/dth-root pair that slipped past construction, and silently
// continuing would produce wrong but plausible field elements.
func scaleByNormInverse[E any, PE field.Element[E]](f *Extension[E, PE], rMinus1, norm Element[E]) Element[E] {
	if !f.IsInBase(norm) {
		panic("extension: Frobenius norm escaped the base field, misconfigured descriptor")
	}
	var s E
	PE(&s).Inverse(&norm[0])
	return f.MulByElement(rMinus1, &s)
}

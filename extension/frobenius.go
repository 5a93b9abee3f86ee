package extension

// Frobenius returns a^p.
//
// With x^N = w and r = w^((p-1)/N), every basis monomial satisfies
// (x^i)^p = r^i·x^i, so the endomorphism is the linear map scaling
// coefficient i by r^i: N-1 base-field multiplications instead of a p-bit
// exponentiation. Elements of the base field are fixed points.
func (f *Extension[E, PE]) Frobenius(a Element[E]) Element[E] {
	return f.repeatedFrobenius(a, 1)
}

// RepeatedFrobenius returns a^(p^k), k applications of Frobenius. Since r has
// order dividing N, only k mod N matters.
func (f *Extension[E, PE]) RepeatedFrobenius(a Element[E], k int) Element[E] {
	return f.repeatedFrobenius(a, k)
}

func (f *Extension[E, PE]) repeatedFrobenius(a Element[E], k int) Element[E] {
	f.checkLen(a)
	k %= f.degree
	if k < 0 {
		k += f.degree
	}
	if k == 0 {
		return f.copyOf(a)
	}
	// k applications scale coefficient i by r^(k·i)
	res := make(Element[E], f.degree)
	PE(&res[0]).Set(&a[0])
	for i := 1; i < f.degree; i++ {
		PE(&res[i]).Mul(&a[i], &f.rPow[k*i%f.degree])
	}
	return res
}

package extension

import (
	"math/big"

	"github.com/consensys/extfield/field"
)

// Add returns a + b.
func (f *Extension[E, PE]) Add(a, b Element[E]) Element[E] {
	f.checkLen(a)
	f.checkLen(b)
	c := make(Element[E], f.degree)
	for i := range c {
		PE(&c[i]).Add(&a[i], &b[i])
	}
	return c
}

// Sub returns a - b.
func (f *Extension[E, PE]) Sub(a, b Element[E]) Element[E] {
	f.checkLen(a)
	f.checkLen(b)
	c := make(Element[E], f.degree)
	for i := range c {
		PE(&c[i]).Sub(&a[i], &b[i])
	}
	return c
}

// Neg returns -a.
func (f *Extension[E, PE]) Neg(a Element[E]) Element[E] {
	f.checkLen(a)
	c := make(Element[E], f.degree)
	for i := range c {
		PE(&c[i]).Neg(&a[i])
	}
	return c
}

// Double returns 2a.
func (f *Extension[E, PE]) Double(a Element[E]) Element[E] {
	f.checkLen(a)
	c := make(Element[E], f.degree)
	for i := range c {
		PE(&c[i]).Double(&a[i])
	}
	return c
}

// MulByElement scales every coefficient of a by the base-field element x.
func (f *Extension[E, PE]) MulByElement(a Element[E], x *E) Element[E] {
	f.checkLen(a)
	c := make(Element[E], f.degree)
	for i := range c {
		PE(&c[i]).Mul(&a[i], x)
	}
	return c
}

// Mul returns a·b mod (x^N - w), using the formula specialized for the
// extension degree at construction.
func (f *Extension[E, PE]) Mul(a, b Element[E]) Element[E] {
	f.checkLen(a)
	f.checkLen(b)
	return f.mulFn(f, a, b)
}

// Square returns a², cheaper than Mul(a, a): cross terms are computed once
// and doubled.
func (f *Extension[E, PE]) Square(a Element[E]) Element[E] {
	f.checkLen(a)
	return f.squareFn(f, a)
}

// Exp returns a^k by square-and-multiply. For negative k the base is
// inverted first; zero to a negative power returns zero, matching the
// base-field inversion convention.
func (f *Extension[E, PE]) Exp(a Element[E], k *big.Int) Element[E] {
	f.checkLen(a)
	if k.Sign() == 0 {
		return f.One()
	}
	base := a
	e := k
	if k.Sign() == -1 {
		inv, ok := f.Inverse(a)
		if !ok {
			return f.Zero()
		}
		base = inv
		e = new(big.Int).Neg(k)
	}
	res := f.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		res = f.squareFn(f, res)
		if e.Bit(i) == 1 {
			res = f.mulFn(f, res, base)
		}
	}
	return res
}

// mul2 is the 3-multiplication Karatsuba product in F_p[x]/(x² - w):
//
//	c0 = a0·b0 + w·a1·b1
//	c1 = (a0+a1)·(b0+b1) - a0·b0 - a1·b1
func mul2[E any, PE field.Element[E]](f *Extension[E, PE], a, b Element[E]) Element[E] {
	var v0, v1, t E
	PE(&v0).Mul(&a[0], &b[0])
	PE(&v1).Mul(&a[1], &b[1])

	c := make(Element[E], 2)
	PE(&t).Mul(&v1, &f.w)
	PE(&c[0]).Add(&v0, &t)

	var sa, sb E
	PE(&sa).Add(&a[0], &a[1])
	PE(&sb).Add(&b[0], &b[1])
	PE(&c[1]).Mul(&sa, &sb)
	PE(&c[1]).Sub(&c[1], &v0)
	PE(&c[1]).Sub(&c[1], &v1)
	return c
}

func square2[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	c := make(Element[E], 2)
	var t E
	PE(&t).Square(&a[1])
	PE(&t).Mul(&t, &f.w)
	PE(&c[0]).Square(&a[0])
	PE(&c[0]).Add(&c[0], &t)

	PE(&c[1]).Mul(&a[0], &a[1])
	PE(&c[1]).Double(&c[1])
	return c
}

// mul4 folds the degree-6 schoolbook product back with x⁴ ≡ w:
//
//	c0 = a0·b0 + w(a1·b3 + a2·b2 + a3·b1)
//	c1 = a0·b1 + a1·b0 + w(a2·b3 + a3·b2)
//	c2 = a0·b2 + a1·b1 + a2·b0 + w·a3·b3
//	c3 = a0·b3 + a1·b2 + a2·b1 + a3·b0
func mul4[E any, PE field.Element[E]](f *Extension[E, PE], a, b Element[E]) Element[E] {
	c := make(Element[E], 4)
	var t, u E

	PE(&t).Mul(&a[1], &b[3])
	PE(&u).Mul(&a[2], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[3], &b[1])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&c[0]).Mul(&a[0], &b[0])
	PE(&c[0]).Add(&c[0], &t)

	PE(&t).Mul(&a[2], &b[3])
	PE(&u).Mul(&a[3], &b[2])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[1], &b[0])
	PE(&c[1]).Add(&t, &u)

	PE(&t).Mul(&a[3], &b[3])
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[1], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[2], &b[0])
	PE(&c[2]).Add(&t, &u)

	PE(&t).Mul(&a[0], &b[3])
	PE(&u).Mul(&a[1], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[2], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[3], &b[0])
	PE(&c[3]).Add(&t, &u)

	return c
}

// square4 computes each cross term once and doubles it:
//
//	c0 = a0² + w(2·a1·a3 + a2²)
//	c1 = 2(a0·a1 + w·a2·a3)
//	c2 = 2·a0·a2 + a1² + w·a3²
//	c3 = 2(a0·a3 + a1·a2)
func square4[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	c := make(Element[E], 4)
	var t, u E

	PE(&t).Mul(&a[1], &a[3])
	PE(&t).Double(&t)
	PE(&u).Square(&a[2])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&c[0]).Square(&a[0])
	PE(&c[0]).Add(&c[0], &t)

	PE(&t).Mul(&a[2], &a[3])
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &a[1])
	PE(&c[1]).Add(&t, &u)
	PE(&c[1]).Double(&c[1])

	PE(&t).Square(&a[3])
	PE(&t).Mul(&t, &f.w)
	PE(&u).Square(&a[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[0], &a[2])
	PE(&u).Double(&u)
	PE(&c[2]).Add(&t, &u)

	PE(&t).Mul(&a[0], &a[3])
	PE(&u).Mul(&a[1], &a[2])
	PE(&c[3]).Add(&t, &u)
	PE(&c[3]).Double(&c[3])

	return c
}

// mul5 folds the degree-8 schoolbook product back with x⁵ ≡ w.
func mul5[E any, PE field.Element[E]](f *Extension[E, PE], a, b Element[E]) Element[E] {
	c := make(Element[E], 5)
	var t, u E

	// c0 = a0·b0 + w(a1·b4 + a2·b3 + a3·b2 + a4·b1)
	PE(&t).Mul(&a[1], &b[4])
	PE(&u).Mul(&a[2], &b[3])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[3], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[4], &b[1])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&c[0]).Mul(&a[0], &b[0])
	PE(&c[0]).Add(&c[0], &t)

	// c1 = a0·b1 + a1·b0 + w(a2·b4 + a3·b3 + a4·b2)
	PE(&t).Mul(&a[2], &b[4])
	PE(&u).Mul(&a[3], &b[3])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[4], &b[2])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[1], &b[0])
	PE(&c[1]).Add(&t, &u)

	// c2 = a0·b2 + a1·b1 + a2·b0 + w(a3·b4 + a4·b3)
	PE(&t).Mul(&a[3], &b[4])
	PE(&u).Mul(&a[4], &b[3])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[1], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[2], &b[0])
	PE(&c[2]).Add(&t, &u)

	// c3 = a0·b3 + a1·b2 + a2·b1 + a3·b0 + w·a4·b4
	PE(&t).Mul(&a[4], &b[4])
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &b[3])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[1], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[2], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[3], &b[0])
	PE(&c[3]).Add(&t, &u)

	// c4 = a0·b4 + a1·b3 + a2·b2 + a3·b1 + a4·b0
	PE(&t).Mul(&a[0], &b[4])
	PE(&u).Mul(&a[1], &b[3])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[2], &b[2])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[3], &b[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[4], &b[0])
	PE(&c[4]).Add(&t, &u)

	return c
}

func square5[E any, PE field.Element[E]](f *Extension[E, PE], a Element[E]) Element[E] {
	c := make(Element[E], 5)
	var t, u E

	// c0 = a0² + 2w(a1·a4 + a2·a3)
	PE(&t).Mul(&a[1], &a[4])
	PE(&u).Mul(&a[2], &a[3])
	PE(&t).Add(&t, &u)
	PE(&t).Double(&t)
	PE(&t).Mul(&t, &f.w)
	PE(&c[0]).Square(&a[0])
	PE(&c[0]).Add(&c[0], &t)

	// c1 = 2·a0·a1 + w(2·a2·a4 + a3²)
	PE(&t).Mul(&a[2], &a[4])
	PE(&t).Double(&t)
	PE(&u).Square(&a[3])
	PE(&t).Add(&t, &u)
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &a[1])
	PE(&u).Double(&u)
	PE(&c[1]).Add(&t, &u)

	// c2 = 2·a0·a2 + a1² + 2w·a3·a4
	PE(&t).Mul(&a[3], &a[4])
	PE(&t).Double(&t)
	PE(&t).Mul(&t, &f.w)
	PE(&u).Square(&a[1])
	PE(&t).Add(&t, &u)
	PE(&u).Mul(&a[0], &a[2])
	PE(&u).Double(&u)
	PE(&c[2]).Add(&t, &u)

	// c3 = 2(a0·a3 + a1·a2) + w·a4²
	PE(&t).Square(&a[4])
	PE(&t).Mul(&t, &f.w)
	PE(&u).Mul(&a[0], &a[3])
	PE(&c[3]).Mul(&a[1], &a[2])
	PE(&c[3]).Add(&c[3], &u)
	PE(&c[3]).Double(&c[3])
	PE(&c[3]).Add(&c[3], &t)

	// c4 = 2(a0·a4 + a1·a3) + a2²
	PE(&t).Square(&a[2])
	PE(&u).Mul(&a[0], &a[4])
	PE(&c[4]).Mul(&a[1], &a[3])
	PE(&c[4]).Add(&c[4], &u)
	PE(&c[4]).Double(&c[4])
	PE(&c[4]).Add(&c[4], &t)

	return c
}

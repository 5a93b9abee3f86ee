// Package tinyfield implements the prime field F_101 with the same element
// API as the gnark-crypto generated fields.
//
// It exists so tests can check extension arithmetic against hand-computed
// values; it is not meant for anything else.
package tinyfield

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"strconv"
)

// q is the field modulus.
const q uint64 = 101

// Element is an element of F_101, stored canonically in [0, q).
//
// Defined as an array to mirror the gnark-crypto element layout and to
// prevent accidental use of machine-integer operators.
type Element [1]uint64

// Modulus returns q as a big.Int.
func Modulus() *big.Int {
	return new(big.Int).SetUint64(q)
}

// NewElement returns the element corresponding to v.
func NewElement(v uint64) Element {
	return Element{v % q}
}

// One returns 1.
func One() Element {
	return Element{1}
}

// Set z = x.
func (z *Element) Set(x *Element) *Element {
	z[0] = x[0]
	return z
}

// SetZero z = 0.
func (z *Element) SetZero() *Element {
	z[0] = 0
	return z
}

// SetOne z = 1.
func (z *Element) SetOne() *Element {
	z[0] = 1
	return z
}

// SetUint64 z = v mod q.
func (z *Element) SetUint64(v uint64) *Element {
	z[0] = v % q
	return z
}

// SetInt64 z = v mod q.
func (z *Element) SetInt64(v int64) *Element {
	m := v % int64(q)
	if m < 0 {
		m += int64(q)
	}
	z[0] = uint64(m)
	return z
}

// SetBigInt z = v mod q.
func (z *Element) SetBigInt(v *big.Int) *Element {
	var r big.Int
	r.Mod(v, Modulus())
	z[0] = r.Uint64()
	return z
}

// BigInt writes the canonical value of z into res and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.SetUint64(z[0])
}

// Add z = x + y.
func (z *Element) Add(x, y *Element) *Element {
	s := x[0] + y[0]
	if s >= q {
		s -= q
	}
	z[0] = s
	return z
}

// Sub z = x - y.
func (z *Element) Sub(x, y *Element) *Element {
	d := x[0] + q - y[0]
	if d >= q {
		d -= q
	}
	z[0] = d
	return z
}

// Neg z = -x.
func (z *Element) Neg(x *Element) *Element {
	if x[0] == 0 {
		z[0] = 0
		return z
	}
	z[0] = q - x[0]
	return z
}

// Double z = 2x.
func (z *Element) Double(x *Element) *Element {
	return z.Add(x, x)
}

// Mul z = x * y.
func (z *Element) Mul(x, y *Element) *Element {
	z[0] = x[0] * y[0] % q
	return z
}

// Square z = x².
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Inverse z = x⁻¹ by Fermat's little theorem, or 0 if x is 0.
func (z *Element) Inverse(x *Element) *Element {
	return z.Exp(*x, new(big.Int).SetUint64(q-2))
}

// Exp z = x^k mod q. A negative k inverts the base first.
func (z *Element) Exp(x Element, k *big.Int) *Element {
	if k.Sign() == 0 {
		return z.SetOne()
	}
	e := k
	if k.Sign() == -1 {
		x.Inverse(&x)
		e = new(big.Int).Neg(k)
	}
	z.SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		z.Square(z)
		if e.Bit(i) == 1 {
			z.Mul(z, &x)
		}
	}
	return z
}

// MustSetRandom sets z to a uniformly random element, panicking on entropy
// failure.
func (z *Element) MustSetRandom() *Element {
	v, err := rand.Int(rand.Reader, Modulus())
	if err != nil {
		panic(err)
	}
	z[0] = v.Uint64()
	return z
}

// Equal reports z == x.
func (z *Element) Equal(x *Element) bool {
	return z[0] == x[0]
}

// IsZero reports z == 0.
func (z *Element) IsZero() bool {
	return z[0] == 0
}

// IsOne reports z == 1.
func (z *Element) IsOne() bool {
	return z[0] == 1
}

// Cmp compares the canonical values of z and x.
func (z *Element) Cmp(x *Element) int {
	switch {
	case z[0] > x[0]:
		return 1
	case z[0] < x[0]:
		return -1
	}
	return 0
}

// Marshal returns the canonical big-endian byte representation of z.
func (z *Element) Marshal() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], z[0])
	return b[:]
}

// String returns the decimal representation of z.
func (z *Element) String() string {
	return strconv.FormatUint(z[0], 10)
}

// Package extension implements optimal extension fields (OEF): degree-N
// extensions F_p[x]/(x^N - w) of a prime base field, for N in {2, 4, 5}.
//
// The non-residue w is chosen so that x^N - w is irreducible over the base
// field; the quotient ring is then a field whose elements are coefficient
// vectors of length N. The package provides componentwise ring operations,
// degree-specialized multiplication and squaring, the Frobenius endomorphism
// realized as a linear map (no p-bit exponentiation), Frobenius-norm
// (Itoh–Tsujii) inversion and batch inversion.
//
// Degree-specific formulas are selected once at construction; the hot
// multiply/square/invert paths contain no degree dispatch. An [Extension] is
// immutable after New returns and all operations are pure functions over
// value coefficients, so it is safe for concurrent use.
package extension

import (
	"fmt"
	"math/big"

	"github.com/consensys/extfield/debug"
	"github.com/consensys/extfield/field"
	"github.com/consensys/extfield/logger"
)

// Element is an extension field element: the coefficients [a0, a1, ...] of
// the polynomial a0 + a1·x + ... + a_{N-1}·x^{N-1} modulo x^N - w. The length
// is always exactly the extension degree and every coefficient is a canonical
// base-field element.
type Element[E any] []E

// Extension is a degree-N optimal extension field over a prime base field.
//
// The base field element type E fixes the field at the type level: elements
// of extensions over different base fields cannot be mixed without a compile
// error. Mixing different degrees over the same base field is guarded by
// assertions on the coefficient count.
type Extension[E any, PE field.Element[E]] struct {
	base   *field.Params[E, PE]
	degree int

	w       E   // non-residue defining x^degree - w
	dthRoot E   // w^((p-1)/degree); realizes x^p = dthRoot·x
	rPow    []E // rPow[i] = dthRoot^i for i < degree

	twoAdicity     uint64
	order          *big.Int // p^degree
	characteristic *big.Int // p

	powerOfTwoGen Element[E]
	generator     Element[E]

	mulFn     func(f *Extension[E, PE], a, b Element[E]) Element[E]
	squareFn  func(f *Extension[E, PE], a Element[E]) Element[E]
	inverseFn func(f *Extension[E, PE], a Element[E]) Element[E]
}

// twoAdicityOffset maps the extension degree to the two-adicity gained over
// the base field. For p ≡ 1 (mod 4), p+1 and p²+1 each contribute exactly one
// factor of two; odd degrees contribute nothing.
var twoAdicityOffset = map[int]uint64{
	2: 1,
	4: 2,
	5: 0,
}

// primeDivisors of the supported degrees, for the irreducibility test of
// x^degree - w.
var primeDivisors = map[int][]uint64{
	2: {2},
	4: {2},
	5: {5},
}

// New constructs the degree-N extension of the given base field.
//
// The degree and the non-residue default to the per-field table in
// defaults.go and can be overridden with [WithDegree] and [WithNonResidue].
// Every descriptor invariant (irreducibility of x^N - w, the order of the
// dth root, the two-adicity offset, the order of the power-of-two subgroup
// generator) is verified here, so a misconfigured constant table fails at
// construction and never produces wrong field elements.
func New[E any, PE field.Element[E]](base *field.Params[E, PE], opts ...Option) (*Extension[E, PE], error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base field: %w", err)
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply options: %w", err)
	}

	degree := cfg.degree
	if degree == 0 {
		var ok bool
		degree, ok = defaultDegrees[base.Modulus.String()]
		if !ok {
			return nil, fmt.Errorf("no default degree for modulus %s, use WithDegree", base.Modulus)
		}
	}
	w := cfg.nonResidue
	if w == 0 {
		var ok bool
		w, ok = defaultNonResidues[fmt.Sprintf("%s-%d", base.Modulus, degree)]
		if !ok {
			return nil, fmt.Errorf("no default non-residue for modulus %s and degree %d, use WithNonResidue", base.Modulus, degree)
		}
	}

	f := &Extension[E, PE]{
		base:           base,
		degree:         degree,
		characteristic: new(big.Int).Set(base.Modulus),
	}
	switch degree {
	case 2:
		f.mulFn = mul2[E, PE]
		f.squareFn = square2[E, PE]
		f.inverseFn = inverse2[E, PE]
	case 4:
		f.mulFn = mul4[E, PE]
		f.squareFn = square4[E, PE]
		f.inverseFn = inverse4[E, PE]
	case 5:
		f.mulFn = mul5[E, PE]
		f.squareFn = square5[E, PE]
		f.inverseFn = inverse5[E, PE]
	default:
		return nil, fmt.Errorf("unsupported extension degree %d (supported: 2, 4, 5)", degree)
	}
	if degree != 5 && base.TwoAdicity < 2 {
		return nil, fmt.Errorf("degree-%d extensions need base two-adicity >= 2, got %d", degree, base.TwoAdicity)
	}

	pMinus1 := new(big.Int).Sub(base.Modulus, big.NewInt(1))
	PE(&f.w).SetUint64(w)

	// x^N - w is irreducible iff w is not a q-th power for every prime q
	// dividing N. (For N = 4 the extra condition w ∉ -4·F_p^4 holds for free:
	// p ≡ 1 (mod 4) makes -4 a fourth of a square, so a non-square w cannot
	// land in that set.)
	for _, q := range primeDivisors[degree] {
		qInt := new(big.Int).SetUint64(q)
		if new(big.Int).Mod(pMinus1, qInt).Sign() != 0 {
			return nil, fmt.Errorf("degree-%d extension impossible: %d does not divide p-1", degree, q)
		}
		var probe E
		PE(&probe).Exp(f.w, new(big.Int).Div(pMinus1, qInt))
		if PE(&probe).IsOne() {
			return nil, fmt.Errorf("non-residue %d is a %d-th power in the base field, x^%d - %d is reducible", w, q, degree, w)
		}
	}

	// dthRoot = w^((p-1)/N) satisfies x^p = dthRoot·x in the quotient ring.
	PE(&f.dthRoot).Exp(f.w, new(big.Int).Div(pMinus1, big.NewInt(int64(degree))))
	f.rPow = make([]E, degree)
	PE(&f.rPow[0]).SetOne()
	for i := 1; i < degree; i++ {
		PE(&f.rPow[i]).Mul(&f.rPow[i-1], &f.dthRoot)
	}
	var rN E
	PE(&rN).Mul(&f.rPow[degree-1], &f.dthRoot)
	if !PE(&rN).IsOne() {
		return nil, fmt.Errorf("dth root does not have order dividing %d", degree)
	}

	f.order = new(big.Int).Exp(base.Modulus, big.NewInt(int64(degree)), nil)
	f.twoAdicity = base.TwoAdicity + twoAdicityOffset[degree]
	orderMinus1 := new(big.Int).Sub(f.order, big.NewInt(1))
	if got := field.TwoAdicityOf(orderMinus1); got != f.twoAdicity {
		return nil, fmt.Errorf("two-adicity invariant violated: p^%d - 1 has two-adicity %d, expected base %d + %d",
			degree, got, base.TwoAdicity, twoAdicityOffset[degree])
	}

	if err := f.derivePowerOfTwoGenerator(orderMinus1); err != nil {
		return nil, err
	}
	if err := f.deriveGenerator(cfg.generatorCoeffs, orderMinus1); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().
		Str("modulus", base.Modulus.String()).
		Int("degree", degree).
		Uint64("nonResidue", w).
		Uint64("twoAdicity", f.twoAdicity).
		Msg("constructed extension field")

	return f, nil
}

// derivePowerOfTwoGenerator finds an element of order exactly 2^twoAdicity by
// a deterministic search: for candidates z = x + c, the power z^(M/2^t) has
// order exactly 2^t whenever z is a non-square, which half of the candidates
// are.
func (f *Extension[E, PE]) derivePowerOfTwoGenerator(orderMinus1 *big.Int) error {
	cofactor := new(big.Int).Rsh(orderMinus1, uint(f.twoAdicity))
	halfOrder := new(big.Int).Lsh(big.NewInt(1), uint(f.twoAdicity-1))
	for c := uint64(0); c < 256; c++ {
		z := f.Zero()
		PE(&z[0]).SetUint64(c)
		PE(&z[1]).SetOne()
		g := f.Exp(z, cofactor)
		probe := f.Exp(g, halfOrder)
		if !f.IsOne(probe) {
			f.powerOfTwoGen = g
			return nil
		}
	}
	return fmt.Errorf("no power-of-two subgroup generator found, descriptor is misconfigured")
}

// deriveGenerator sets the multiplicative-group generator. If coeffs are
// provided (a generator certified offline), they are used after a sanity
// check. Otherwise a derived element of order 2^twoAdicity ·
// odd((p-1)) is used: the power-of-two generator times the lifted odd-order
// part of the base generator; certifying a generator of the full group
// p^N - 1 would require its factorization.
func (f *Extension[E, PE]) deriveGenerator(coeffs []uint64, orderMinus1 *big.Int) error {
	if coeffs != nil {
		if len(coeffs) != f.degree {
			return fmt.Errorf("generator has %d coefficients, extension degree is %d", len(coeffs), f.degree)
		}
		g := f.Zero()
		for i := range coeffs {
			PE(&g[i]).SetUint64(coeffs[i])
		}
		probe := f.Exp(g, new(big.Int).Rsh(orderMinus1, 1))
		if f.IsOne(probe) {
			return fmt.Errorf("configured generator is a square, cannot generate the multiplicative group")
		}
		f.generator = g
		return nil
	}
	var odd E
	PE(&odd).Exp(f.base.GeneratorElement(), new(big.Int).Lsh(big.NewInt(1), uint(f.base.TwoAdicity)))
	f.generator = f.MulByElement(f.powerOfTwoGen, &odd)
	debug.Assert(!f.IsZero(f.generator), "derived generator is a product of non-zero elements")
	return nil
}

// Degree returns the extension degree N.
func (f *Extension[E, PE]) Degree() int {
	return f.degree
}

// NonResidue returns w, the constant term of the defining polynomial x^N - w.
func (f *Extension[E, PE]) NonResidue() E {
	var w E
	PE(&w).Set(&f.w)
	return w
}

// DthRoot returns w^((p-1)/N), the base-field constant realizing the
// Frobenius endomorphism.
func (f *Extension[E, PE]) DthRoot() E {
	var r E
	PE(&r).Set(&f.dthRoot)
	return r
}

// TwoAdicity returns the two-adicity of the extension's multiplicative group,
// base.TwoAdicity + {2: 1, 4: 2, 5: 0}[N].
func (f *Extension[E, PE]) TwoAdicity() uint64 {
	return f.twoAdicity
}

// Order returns p^N.
func (f *Extension[E, PE]) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// Characteristic returns p.
func (f *Extension[E, PE]) Characteristic() *big.Int {
	return new(big.Int).Set(f.characteristic)
}

// PowerOfTwoGenerator returns a generator of the power-of-two subgroup: an
// element of order exactly 2^TwoAdicity.
func (f *Extension[E, PE]) PowerOfTwoGenerator() Element[E] {
	return f.copyOf(f.powerOfTwoGen)
}

// MultiplicativeGroupGenerator returns the configured generator of the
// multiplicative group, or the derived default described in
// [WithGeneratorCoeffs].
func (f *Extension[E, PE]) MultiplicativeGroupGenerator() Element[E] {
	return f.copyOf(f.generator)
}

// Zero returns the additive identity [0, 0, ..., 0].
func (f *Extension[E, PE]) Zero() Element[E] {
	z := make(Element[E], f.degree)
	for i := range z {
		PE(&z[i]).SetZero()
	}
	return z
}

// One returns the multiplicative identity [1, 0, ..., 0].
func (f *Extension[E, PE]) One() Element[E] {
	z := f.Zero()
	PE(&z[0]).SetOne()
	return z
}

// FromBase embeds a base-field element as the degree-0 coefficient.
func (f *Extension[E, PE]) FromBase(x *E) Element[E] {
	z := f.Zero()
	PE(&z[0]).Set(x)
	return z
}

// FromBaseArray builds an extension element from its coefficient vector.
// The slice is copied; it must have exactly Degree entries.
func (f *Extension[E, PE]) FromBaseArray(coeffs []E) Element[E] {
	if len(coeffs) != f.degree {
		panic(fmt.Sprintf("extension: got %d coefficients, degree is %d", len(coeffs), f.degree))
	}
	z := make(Element[E], f.degree)
	for i := range coeffs {
		PE(&z[i]).Set(&coeffs[i])
	}
	return z
}

// ToBaseArray returns a copy of the coefficient vector of a.
func (f *Extension[E, PE]) ToBaseArray(a Element[E]) []E {
	f.checkLen(a)
	out := make([]E, f.degree)
	for i := range a {
		PE(&out[i]).Set(&a[i])
	}
	return out
}

// IsInBase reports whether a lies in the base field, i.e. all non-constant
// coefficients are zero. Frobenius fixes exactly these elements.
func (f *Extension[E, PE]) IsInBase(a Element[E]) bool {
	f.checkLen(a)
	for i := 1; i < len(a); i++ {
		if !PE(&a[i]).IsZero() {
			return false
		}
	}
	return true
}

// IsZero reports whether a is the additive identity.
func (f *Extension[E, PE]) IsZero(a Element[E]) bool {
	f.checkLen(a)
	for i := range a {
		if !PE(&a[i]).IsZero() {
			return false
		}
	}
	return true
}

// IsOne reports whether a is the multiplicative identity.
func (f *Extension[E, PE]) IsOne(a Element[E]) bool {
	return f.IsInBase(a) && PE(&a[0]).IsOne()
}

// Equal reports coefficientwise equality.
func (f *Extension[E, PE]) Equal(a, b Element[E]) bool {
	f.checkLen(a)
	f.checkLen(b)
	for i := range a {
		if !PE(&a[i]).Equal(&b[i]) {
			return false
		}
	}
	return true
}

// Cmp orders elements by their coefficient vectors, most significant
// coefficient first.
func (f *Extension[E, PE]) Cmp(a, b Element[E]) int {
	f.checkLen(a)
	f.checkLen(b)
	for i := f.degree - 1; i >= 0; i-- {
		if c := PE(&a[i]).Cmp(&b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Marshal returns the concatenated canonical big-endian encodings of the
// coefficients, degree-0 coefficient first.
func (f *Extension[E, PE]) Marshal(a Element[E]) []byte {
	f.checkLen(a)
	var out []byte
	for i := range a {
		out = append(out, PE(&a[i]).Marshal()...)
	}
	return out
}

// String renders a as a polynomial in x.
func (f *Extension[E, PE]) String(a Element[E]) string {
	f.checkLen(a)
	s := PE(&a[0]).String()
	for i := 1; i < len(a); i++ {
		if i == 1 {
			s += " + " + PE(&a[i]).String() + "*x"
			continue
		}
		s += fmt.Sprintf(" + %s*x^%d", PE(&a[i]).String(), i)
	}
	return s
}

func (f *Extension[E, PE]) copyOf(a Element[E]) Element[E] {
	out := make(Element[E], f.degree)
	for i := range a {
		PE(&out[i]).Set(&a[i])
	}
	return out
}

// checkLen guards every operation against coefficient vectors of the wrong
// degree. The mismatch cannot be ruled out at the type level, so it is fatal
// in all builds; a silent truncation would produce plausible wrong elements.
func (f *Extension[E, PE]) checkLen(a Element[E]) {
	if len(a) != f.degree {
		panic(fmt.Sprintf("extension: element has %d coefficients, degree is %d", len(a), f.degree))
	}
}

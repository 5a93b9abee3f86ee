// Package field defines the contract a prime base field must satisfy for the
// extension machinery to build a tower on top of it: an element type with
// canonical modular arithmetic, and the constants describing the structure of
// the multiplicative group (two-adicity, generator).
//
// The gnark-crypto generated fields (goldilocks, koalabear, babybear, ...)
// satisfy [Element] out of the box.
package field

import (
	"fmt"
	"math/big"
)

// Element is the pointer-method surface required from a prime-field element.
//
// All methods must return canonical (fully reduced) representations; how the
// implementation reduces internally (Montgomery, Goldilocks-style, ...) is its
// own business. Inverse follows the gnark-crypto convention of mapping zero to
// zero; callers that need to distinguish use IsZero first.
type Element[E any] interface {
	*E

	Set(x *E) *E
	SetZero() *E
	SetOne() *E
	SetUint64(v uint64) *E
	SetInt64(v int64) *E
	SetBigInt(v *big.Int) *E
	BigInt(res *big.Int) *big.Int

	Add(x, y *E) *E
	Sub(x, y *E) *E
	Neg(x *E) *E
	Double(x *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	Inverse(x *E) *E
	Exp(x E, k *big.Int) *E

	MustSetRandom() *E

	Equal(x *E) bool
	IsZero() bool
	IsOne() bool
	Cmp(x *E) int
	Marshal() []byte
	String() string
}

// Params collects the constants of a prime field that the extension
// construction consumes. One value per field; immutable after creation.
type Params[E any, PE Element[E]] struct {
	// Modulus is the field characteristic p.
	Modulus *big.Int
	// TwoAdicity is the largest s such that 2^s divides p-1. It governs the
	// size of the power-of-two subgroup available for FFT-style transforms.
	TwoAdicity uint64
	// Generator is a generator of the multiplicative group F_p^*, as a
	// canonical integer.
	Generator uint64
}

// Validate checks the internal consistency of the parameters. A failure means
// a misconfigured constant table, not a runtime condition.
func (p *Params[E, PE]) Validate() error {
	if p.Modulus == nil || p.Modulus.Sign() <= 0 {
		return fmt.Errorf("modulus must be a positive integer")
	}
	if !p.Modulus.ProbablyPrime(20) {
		return fmt.Errorf("modulus %s is not prime", p.Modulus)
	}
	pMinus1 := new(big.Int).Sub(p.Modulus, big.NewInt(1))
	if TwoAdicityOf(pMinus1) != p.TwoAdicity {
		return fmt.Errorf("declared two-adicity %d does not divide p-1 exactly", p.TwoAdicity)
	}
	if p.Generator == 0 || new(big.Int).SetUint64(p.Generator).Cmp(p.Modulus) >= 0 {
		return fmt.Errorf("generator %d is out of range", p.Generator)
	}
	// a generator must at least be a non-square; the full order check would
	// require the factorization of p-1
	var g, probe E
	PE(&g).SetUint64(p.Generator)
	half := new(big.Int).Rsh(pMinus1, 1)
	PE(&probe).Exp(g, half)
	if PE(&probe).IsOne() {
		return fmt.Errorf("generator %d is a quadratic residue, cannot generate F_p^*", p.Generator)
	}
	return nil
}

// GeneratorElement returns the multiplicative group generator as a field
// element.
func (p *Params[E, PE]) GeneratorElement() E {
	var g E
	PE(&g).SetUint64(p.Generator)
	return g
}

// PowerOfTwoGenerator returns g^((p-1)/2^TwoAdicity), a generator of the
// power-of-two subgroup of order 2^TwoAdicity.
func (p *Params[E, PE]) PowerOfTwoGenerator() E {
	exp := new(big.Int).Sub(p.Modulus, big.NewInt(1))
	exp.Rsh(exp, uint(p.TwoAdicity))
	var res E
	PE(&res).Exp(p.GeneratorElement(), exp)
	return res
}

// TwoAdicityOf returns the largest s such that 2^s divides n.
func TwoAdicityOf(n *big.Int) uint64 {
	if n.Sign() == 0 {
		return 0
	}
	return uint64(n.TrailingZeroBits())
}

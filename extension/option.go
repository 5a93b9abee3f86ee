package extension

import "fmt"

type config struct {
	degree          int
	nonResidue      uint64
	generatorCoeffs []uint64
}

// Option configures the extension field at construction time.
type Option func(*config) error

// WithDegree forces the extension degree. If not set, the default degree for
// the base field is used.
func WithDegree(degree int) Option {
	return func(c *config) error {
		if degree <= 0 {
			return fmt.Errorf("degree must be positive")
		}
		c.degree = degree
		return nil
	}
}

// WithNonResidue sets w in the defining polynomial x^degree - w. If not set,
// the default non-residue for the (base field, degree) pair is used.
func WithNonResidue(w uint64) Option {
	return func(c *config) error {
		if w == 0 {
			return fmt.Errorf("non-residue must be non-zero")
		}
		c.nonResidue = w
		return nil
	}
}

// WithGeneratorCoeffs provides the coefficient vector (canonical integers,
// degree-0 coefficient first) of a known generator of the extension's
// multiplicative group, certified offline from the factorization of p^N - 1.
//
// Without this option the extension derives an element of order
// 2^TwoAdicity · odd(p-1), which is what coset shifts and FFT-domain
// constructions consume; it is not certified to generate the full group.
func WithGeneratorCoeffs(coeffs ...uint64) Option {
	return func(c *config) error {
		if len(coeffs) == 0 {
			return fmt.Errorf("generator coefficients must be non-empty")
		}
		c.generatorCoeffs = coeffs
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

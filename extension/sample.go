package extension

import (
	"fmt"
	"io"
	"math/big"
)

// MustSample returns a uniformly random element using the base field's own
// entropy source, panicking on failure.
func (f *Extension[E, PE]) MustSample() Element[E] {
	z := make(Element[E], f.degree)
	for i := range z {
		PE(&z[i]).MustSetRandom()
	}
	return z
}

// Sample returns a uniformly random element drawn from the given randomness
// source. Each coefficient is reduced from 16 bytes more than the modulus
// size, keeping the sampling bias negligible.
func (f *Extension[E, PE]) Sample(rng io.Reader) (Element[E], error) {
	n := (f.characteristic.BitLen()+7)/8 + 16
	buf := make([]byte, n)
	z := make(Element[E], f.degree)
	for i := range z {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("sample coefficient %d: %w", i, err)
		}
		PE(&z[i]).SetBigInt(new(big.Int).SetBytes(buf))
	}
	return z, nil
}

// Package goldilocks instantiates the extension machinery over the
// gnark-crypto Goldilocks field, p = 2^64 - 2^32 + 1.
//
// p - 1 = 2^32 · 3 · 5 · 17 · 257 · 65537, so the field has two-adicity 32
// and 7 generates the multiplicative group. The shipped extensions are
// x² - 7, x⁴ - 7 and x⁵ - 3.
package goldilocks

import (
	fr "github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/consensys/extfield/extension"
	"github.com/consensys/extfield/field"
)

// Element is a Goldilocks base-field element.
type Element = fr.Element

// Ext is a Goldilocks extension field of degree 2, 4 or 5.
type Ext = extension.Extension[Element, *Element]

// Params returns the Goldilocks field constants.
func Params() *field.Params[Element, *Element] {
	return &field.Params[Element, *Element]{
		Modulus:    fr.Modulus(),
		TwoAdicity: 32,
		Generator:  7,
	}
}

// NewQuadraticExtension returns F_p[x]/(x² - 7), two-adicity 33.
func NewQuadraticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(2))
}

// NewQuarticExtension returns F_p[x]/(x⁴ - 7), two-adicity 34.
func NewQuarticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(4))
}

// NewQuinticExtension returns F_p[x]/(x⁵ - 3), two-adicity 32.
func NewQuinticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(5))
}

// Package babybear instantiates the extension machinery over the
// gnark-crypto BabyBear field, p = 2^31 - 2^27 + 1.
//
// p - 1 = 2^27 · 3 · 5, so the field has two-adicity 27 and 31 generates the
// multiplicative group. The shipped extensions are x² - 11 and x⁴ - 11.
package babybear

import (
	fr "github.com/consensys/gnark-crypto/field/babybear"

	"github.com/consensys/extfield/extension"
	"github.com/consensys/extfield/field"
)

// Element is a BabyBear base-field element.
type Element = fr.Element

// Ext is a BabyBear extension field of degree 2 or 4.
type Ext = extension.Extension[Element, *Element]

// Params returns the BabyBear field constants.
func Params() *field.Params[Element, *Element] {
	return &field.Params[Element, *Element]{
		Modulus:    fr.Modulus(),
		TwoAdicity: 27,
		Generator:  31,
	}
}

// NewQuadraticExtension returns F_p[x]/(x² - 11), two-adicity 28.
func NewQuadraticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(2))
}

// NewQuarticExtension returns F_p[x]/(x⁴ - 11), two-adicity 29.
func NewQuarticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(4))
}

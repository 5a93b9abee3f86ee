// Package koalabear instantiates the extension machinery over the
// gnark-crypto KoalaBear field, p = 2^31 - 2^24 + 1.
//
// p - 1 = 2^24 · 127, so the field has two-adicity 24 and 3 generates the
// multiplicative group. The shipped extensions are x² - 3 and x⁴ - 3.
package koalabear

import (
	fr "github.com/consensys/gnark-crypto/field/koalabear"

	"github.com/consensys/extfield/extension"
	"github.com/consensys/extfield/field"
)

// Element is a KoalaBear base-field element.
type Element = fr.Element

// Ext is a KoalaBear extension field of degree 2 or 4.
type Ext = extension.Extension[Element, *Element]

// Params returns the KoalaBear field constants.
func Params() *field.Params[Element, *Element] {
	return &field.Params[Element, *Element]{
		Modulus:    fr.Modulus(),
		TwoAdicity: 24,
		Generator:  3,
	}
}

// NewQuadraticExtension returns F_p[x]/(x² - 3), two-adicity 25.
func NewQuadraticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(2))
}

// NewQuarticExtension returns F_p[x]/(x⁴ - 3), two-adicity 26.
func NewQuarticExtension() (*Ext, error) {
	return extension.New(Params(), extension.WithDegree(4))
}

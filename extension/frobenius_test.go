package extension

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/extfield/field"
)

// TestFrobeniusIsPthPower checks the linear-map realization against the
// definition a^p, which only needs the generic exponentiation.
func TestFrobeniusIsPthPower(t *testing.T) {
	for _, degree := range []int{2, 4, 5} {
		for i := 0; i < 10; i++ {
			f := newTiny(t, degree)
			a := f.MustSample()
			require.True(t, f.Equal(f.Exp(a, f.Characteristic()), f.Frobenius(a)))
		}
		f := newGoldilocks(t, degree)
		a := f.MustSample()
		require.True(t, f.Equal(f.Exp(a, f.Characteristic()), f.Frobenius(a)))
	}
}

func frobeniusProperties[E any, PE field.Element[E]](t *testing.T, f *Extension[E, PE]) {
	t.Helper()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)
	gen := genExt(f)
	degree := f.Degree()

	properties.Property("additive homomorphism", prop.ForAll(
		func(a, b Element[E]) bool {
			return f.Equal(f.Frobenius(f.Add(a, b)), f.Add(f.Frobenius(a), f.Frobenius(b)))
		}, gen, gen,
	))
	properties.Property("multiplicative homomorphism", prop.ForAll(
		func(a, b Element[E]) bool {
			return f.Equal(f.Frobenius(f.Mul(a, b)), f.Mul(f.Frobenius(a), f.Frobenius(b)))
		}, gen, gen,
	))
	properties.Property("degree applications are the identity", prop.ForAll(
		func(a Element[E]) bool {
			return f.Equal(a, f.RepeatedFrobenius(a, degree))
		}, gen,
	))
	properties.Property("iteration composes additively in the exponent", prop.ForAll(
		func(a Element[E]) bool {
			lhs := f.RepeatedFrobenius(f.RepeatedFrobenius(a, 1), 2)
			return f.Equal(lhs, f.RepeatedFrobenius(a, 3))
		}, gen,
	))
	properties.Property("negative counts wrap around", prop.ForAll(
		func(a Element[E]) bool {
			return f.Equal(f.RepeatedFrobenius(a, -1), f.RepeatedFrobenius(a, degree-1))
		}, gen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFrobeniusProperties(t *testing.T) {
	for _, degree := range []int{2, 4, 5} {
		degree := degree
		t.Run(degreeName(degree), func(t *testing.T) {
			t.Run("tiny", func(t *testing.T) { frobeniusProperties(t, newTiny(t, degree)) })
			t.Run("goldilocks", func(t *testing.T) { frobeniusProperties(t, newGoldilocks(t, degree)) })
		})
	}
}

func TestFrobeniusFixesBaseField(t *testing.T) {
	assert := require.New(t)
	f := newGoldilocks(t, 4)

	x := f.NonResidue()
	a := f.FromBase(&x)
	assert.True(f.Equal(a, f.Frobenius(a)))
	assert.True(f.Equal(a, f.RepeatedFrobenius(a, 3)))
	assert.True(f.Equal(f.One(), f.Frobenius(f.One())))
	assert.True(f.IsZero(f.Frobenius(f.Zero())))
}

func TestRepeatedFrobeniusZeroCopies(t *testing.T) {
	assert := require.New(t)
	f := newTiny(t, 4)

	a := tinyElem(f, 1, 2, 3, 4)
	b := f.RepeatedFrobenius(a, 0)
	assert.True(f.Equal(a, b))
	b[0].SetZero()
	assert.False(f.Equal(a, b), "k = 0 must return a copy, not an alias")
}

// TestFrobeniusConjugateOrbit: the product over the full Frobenius orbit is
// the norm, which lies in the base field. This is the invariant inversion
// depends on.
func TestFrobeniusConjugateOrbit(t *testing.T) {
	for _, degree := range []int{2, 4, 5} {
		f := newGoldilocks(t, degree)
		for i := 0; i < 10; i++ {
			a := f.MustSample()
			norm := f.copyOf(a)
			for k := 1; k < degree; k++ {
				norm = f.Mul(norm, f.RepeatedFrobenius(a, k))
			}
			require.True(t, f.IsInBase(norm), "degree %d", degree)
		}
	}
}

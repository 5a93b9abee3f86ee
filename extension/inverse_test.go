package extension

import (
	"math/big"
	"testing"

	fr "github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/extfield/field"
	"github.com/consensys/extfield/internal/tinyfield"
)

func TestInverseEdgeCases(t *testing.T) {
	assert := require.New(t)
	f := newGoldilocks(t, 4)

	inv, ok := f.Inverse(f.Zero())
	assert.False(ok, "zero has no inverse")
	assert.True(f.IsZero(inv))

	inv, ok = f.Inverse(f.One())
	assert.True(ok)
	assert.True(f.IsOne(inv))

	// base-field elements invert to base-field elements
	x := f.NonResidue()
	inv, ok = f.Inverse(f.FromBase(&x))
	assert.True(ok)
	assert.True(f.IsInBase(inv))
	assert.True(f.IsOne(f.Mul(inv, f.FromBase(&x))))
}

func inverseRoundTrip[E any, PE field.Element[E]](t *testing.T, f *Extension[E, PE]) {
	t.Helper()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)
	gen := genExt(f)

	properties.Property("a · a⁻¹ = 1", prop.ForAll(
		func(a Element[E]) bool {
			if f.IsZero(a) {
				return true
			}
			inv, ok := f.Inverse(a)
			return ok && f.IsOne(f.Mul(a, inv))
		}, gen,
	))
	properties.Property("double inversion is the identity", prop.ForAll(
		func(a Element[E]) bool {
			if f.IsZero(a) {
				return true
			}
			inv, _ := f.Inverse(a)
			back, ok := f.Inverse(inv)
			return ok && f.Equal(a, back)
		}, gen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestInverseRoundTrip(t *testing.T) {
	for _, degree := range []int{2, 4, 5} {
		degree := degree
		t.Run(degreeName(degree), func(t *testing.T) {
			t.Run("tiny", func(t *testing.T) { inverseRoundTrip(t, newTiny(t, degree)) })
			t.Run("goldilocks", func(t *testing.T) { inverseRoundTrip(t, newGoldilocks(t, degree)) })
		})
	}
}

// TestInverseMatchesFermat checks Itoh–Tsujii against a^(p^N - 2), which only
// relies on exponentiation.
func TestInverseMatchesFermat(t *testing.T) {
	for _, degree := range []int{2, 4, 5} {
		f := newTiny(t, degree)
		exp := new(big.Int).Sub(f.Order(), big.NewInt(2))
		for i := 0; i < 10; i++ {
			a := f.MustSample()
			if f.IsZero(a) {
				continue
			}
			inv, ok := f.Inverse(a)
			require.True(t, ok)
			require.True(t, f.Equal(inv, f.Exp(a, exp)), "degree %d", degree)
		}
	}
}

func TestInverseHandComputed(t *testing.T) {
	assert := require.New(t)
	f := newTiny(t, 2)

	// in F_101[x]/(x²-2): norm(3+4x) = (3+4x)(3-4x) = 9 - 2·16 = -23 = 78,
	// so (3+4x)⁻¹ = 78⁻¹ · (3 - 4x)
	a := tinyElem(f, 3, 4)
	inv, ok := f.Inverse(a)
	assert.True(ok)
	assert.True(f.IsOne(f.Mul(a, inv)))

	var normInv tinyfield.Element
	norm := tinyfield.NewElement(78)
	normInv.Inverse(&norm)
	want := tinyElem(f, 3, 97)
	assert.True(f.Equal(f.MulByElement(want, &normInv), inv))
}

func TestBatchInvert(t *testing.T) {
	assert := require.New(t)
	f := newGoldilocks(t, 4)

	assert.Empty(f.BatchInvert(nil))

	single := []Element[fr.Element]{f.MustSample()}
	res := f.BatchInvert(single)
	inv, _ := f.Inverse(single[0])
	assert.True(f.Equal(inv, res[0]))

	// zero holes must stay zero and not disturb their neighbours
	batch := make([]Element[fr.Element], 100)
	for i := range batch {
		if i%7 == 0 {
			batch[i] = f.Zero()
			continue
		}
		batch[i] = f.MustSample()
	}
	res = f.BatchInvert(batch)
	for i := range batch {
		if i%7 == 0 {
			assert.True(f.IsZero(res[i]), "entry %d", i)
			continue
		}
		want, ok := f.Inverse(batch[i])
		assert.True(ok)
		assert.True(f.Equal(want, res[i]), "entry %d", i)
	}

	allZero := []Element[fr.Element]{f.Zero(), f.Zero(), f.Zero()}
	for _, r := range f.BatchInvert(allZero) {
		assert.True(f.IsZero(r))
	}
}

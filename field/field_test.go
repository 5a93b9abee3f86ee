package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/extfield/internal/tinyfield"
)

func tinyParams() *Params[tinyfield.Element, *tinyfield.Element] {
	// 101 - 1 = 2² · 25, and 2 is a primitive root mod 101
	return &Params[tinyfield.Element, *tinyfield.Element]{
		Modulus:    tinyfield.Modulus(),
		TwoAdicity: 2,
		Generator:  2,
	}
}

func TestParamsValidate(t *testing.T) {
	assert := require.New(t)

	assert.NoError(tinyParams().Validate())

	p := tinyParams()
	p.Modulus = big.NewInt(100)
	assert.Error(p.Validate(), "composite modulus must be rejected")

	p = tinyParams()
	p.TwoAdicity = 3
	assert.Error(p.Validate(), "2³ does not divide 100")

	p = tinyParams()
	p.TwoAdicity = 1
	assert.Error(p.Validate(), "two-adicity must be exact, not a lower bound")

	p = tinyParams()
	p.Generator = 5 // 5 = 45² mod 101
	assert.Error(p.Validate(), "a quadratic residue cannot generate F_p^*")

	p = tinyParams()
	p.Generator = 0
	assert.Error(p.Validate())

	p = tinyParams()
	p.Generator = 101
	assert.Error(p.Validate())
}

func TestPowerOfTwoGenerator(t *testing.T) {
	assert := require.New(t)

	p := tinyParams()
	assert.NoError(p.Validate())

	g := p.PowerOfTwoGenerator()
	// 2^25 = 10 mod 101 generates the subgroup {10, 100, 91, 1} of order 4
	assert.Equal(tinyfield.NewElement(10), g)

	var probe tinyfield.Element
	full := new(big.Int).Lsh(big.NewInt(1), uint(p.TwoAdicity))
	probe.Exp(g, full)
	assert.True(probe.IsOne(), "g^(2^s) = 1")
	probe.Exp(g, new(big.Int).Rsh(full, 1))
	assert.False(probe.IsOne(), "the order of g is exactly 2^s")
}

func TestTwoAdicityOf(t *testing.T) {
	assert := require.New(t)

	assert.Equal(uint64(0), TwoAdicityOf(big.NewInt(0)))
	assert.Equal(uint64(0), TwoAdicityOf(big.NewInt(25)))
	assert.Equal(uint64(2), TwoAdicityOf(big.NewInt(100)))
	assert.Equal(uint64(32), TwoAdicityOf(new(big.Int).Lsh(big.NewInt(4294967295), 32)))
}

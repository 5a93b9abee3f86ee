package extfield

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)
	assert.NoError(Version.Validate())
	// a released module never regresses below its first public version
	assert.True(Version.GTE(semver.MustParse("0.1.0")))
}

// Package extfield implements optimal extension field (OEF) arithmetic over
// small prime fields: degree-N extensions F_p[x]/(x^N - w) for N in {2, 4, 5},
// with the Frobenius endomorphism, degree-specialized multiplication and
// squaring, Frobenius-norm (Itoh–Tsujii) inversion and batch inversion.
//
// The base fields are the gnark-crypto small fields:
//   - Goldilocks (p = 2^64 - 2^32 + 1)
//   - KoalaBear (p = 2^31 - 2^24 + 1)
//   - BabyBear (p = 2^31 - 2^27 + 1)
//
// Ready-made instantiations live in the goldilocks, koalabear and babybear
// packages; the generic machinery lives in the extension package.
package extfield

import "github.com/blang/semver/v4"

// Version of the extfield module.
var Version = semver.MustParse("0.1.0")

package extension

// defaultNonResidues maps "modulus-degree" to a non-residue w making
// x^degree - w irreducible, for the small fields shipped with this module.
// They are used when the non-residue is not explicitly given.
var defaultNonResidues = map[string]uint64{
	"18446744069414584321-2": 7, // x^2 - 7 -- Goldilocks field
	"18446744069414584321-4": 7, // x^4 - 7 -- Goldilocks field
	"18446744069414584321-5": 3, // x^5 - 3 -- Goldilocks field

	"2130706433-2": 3, // x^2 - 3 -- KoalaBear field
	"2130706433-4": 3, // x^4 - 3 -- KoalaBear field

	"2013265921-2": 11, // x^2 - 11 -- BabyBear field
	"2013265921-4": 11, // x^4 - 11 -- BabyBear field
}

// defaultDegrees gives the degree used when none is requested.
var defaultDegrees = map[string]int{
	"18446744069414584321": 4, // Goldilocks field
	"2130706433":           4, // KoalaBear field
	"2013265921":           4, // BabyBear field
}

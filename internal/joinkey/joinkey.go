// Package joinkey implements the shared foreign-key-selection helper
// spec.md §4.8 describes: every fact table picks its dimension foreign
// keys from a uniform draw over that dimension's current row count
// rather than its full SCD-expanded row count, then resolves the
// business key to the surrogate key valid on the fact row's own date.
package joinkey

import (
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/scd"
)

// Pick draws a uniform business key in [1, dimensionRowCount] from s,
// then resolves it to the surrogate key of the dimension row current on
// julianDay.
func Pick(s *rng.Stream, dimensionRowCount int64, julianDay int) int64 {
	businessKey := s.UniformKey(dimensionRowCount)
	return scd.MatchSurrogateKey(businessKey, julianDay)
}

// PickStatic draws a uniform surrogate key in [1, dimensionRowCount]
// directly, for dimensions that do not carry SCD history (every
// business key occupies exactly one row).
func PickStatic(s *rng.Stream, dimensionRowCount int64) int64 {
	return s.UniformKey(dimensionRowCount)
}

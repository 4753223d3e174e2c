// Package scd implements the slowly-changing-dimension (type 2) support
// spec.md §3.2 and §4.5 describe: a business key gets up to three
// validity-window rows partitioning [JULIAN_DATE_MINIMUM,
// JULIAN_DATE_MAXIMUM], and a field_change_flags bitmask decides,
// field by field, whether a later version carries a new value or
// repeats the previous row's.
package scd

import "tpcdsgen/internal/caldate"

// Versions is the number of validity-window rows one business key
// produces: an initial row, one revision, and a current row.
const Versions = 3

// Window returns the validity window for the version'th row (0-based,
// 0..Versions-1) of a business key, partitioning the engine's
// operational date range into Versions equal-width windows. The final
// version's window is the current row.
func Window(version int) (start, end int, isCurrent bool) {
	total := caldate.DataRangeMax - caldate.DataRangeMin + 1
	width := total / Versions
	start = caldate.DataRangeMin + version*width
	if version == Versions-1 {
		end = caldate.DataRangeMax
		isCurrent = true
	} else {
		end = start + width - 1
	}
	return
}

// VersionForDate returns which validity window (0..Versions-1) a given
// Julian day falls within.
func VersionForDate(julianDay int) int {
	total := caldate.DataRangeMax - caldate.DataRangeMin + 1
	width := total / Versions
	offset := julianDay - caldate.DataRangeMin
	v := offset / width
	if v >= Versions {
		v = Versions - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// SurrogateKey returns the 1-based surrogate key for a business key's
// version'th row, given that every business key occupies Versions
// consecutive surrogate keys in generation order.
func SurrogateKey(businessKey int64, version int) int64 {
	return (businessKey-1)*Versions + int64(version) + 1
}

// MatchSurrogateKey resolves a fact row's foreign key into an SCD
// dimension: given the dimension's business key and the fact row's own
// date, it returns the surrogate key of the dimension row that was
// current on that date.
func MatchSurrogateKey(businessKey int64, julianDay int) int64 {
	return SurrogateKey(businessKey, VersionForDate(julianDay))
}

// ChangeFlags is the per-row bitmask deciding, field by field, whether
// a value changes from the previous version. Each call to Next
// consumes and shifts out the lowest bit, so fields must be consulted
// in the same fixed order every time a row is built -- including
// "always new" fields that ignore the flag's value but must still
// advance it, a known reference-generator quirk this engine reproduces
// (see DESIGN.md).
type ChangeFlags uint64

// Next returns whether the next field in sequence changed, and
// advances the mask.
func (f *ChangeFlags) Next() bool {
	changed := *f&1 != 0
	*f >>= 1
	return changed
}

// Field resolves one field's value given whether it is exempt from the
// change flag (always carries the new value) and the previous row's
// value as a fallback. It always advances f by one bit regardless of
// alwaysNew, matching the reference generator's "always use new value"
// bug fields (item size/color/units/container/product_name).
func Field[T any](f *ChangeFlags, alwaysNew bool, newValue, previousValue T) T {
	changed := f.Next()
	if alwaysNew || changed {
		return newValue
	}
	return previousValue
}

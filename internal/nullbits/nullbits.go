// Package nullbits implements the per-row null decision spec.md §4.4
// describes: one draw against the table's null basis points decides
// whether the row has nulls at all, a second draw builds a bit pattern,
// and the pattern is masked so columns in the table's not-null bitmap can
// never come out null regardless of the draw.
package nullbits

import (
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

const basisPointsDenominator = 10000

// Roll draws one value from s (and a second when the row rolls nulls)
// and returns a 64-bit mask where bit i set
// means column i of the row should be emitted as null, after masking
// out any bit schema.Table.NotNullBitMap() forbids.
func Roll(s *rng.Stream, t schema.Table) int64 {
	basisPoints := t.NullBasisPoints()
	if basisPoints <= 0 {
		return 0
	}
	draw := s.UniformInt(0, basisPointsDenominator-1)
	if int32(draw) >= basisPoints {
		return 0
	}
	// Each of bits 0 through 30 has a 1-in-2 chance of being part of this
	// row's null set; the second draw fills all 31 bits of the pattern,
	// and the not-null bitmap has final say.
	pattern := int64(s.UniformInt(0, 1<<31-1))
	return pattern &^ t.NotNullBitMap()
}

// IsNull reports whether column (0-based) is null under mask.
func IsNull(mask int64, column int) bool {
	if column < 0 || column >= 64 {
		return false
	}
	return mask&(1<<uint(column)) != 0
}

// ApplyNulls blanks every column in cols whose position is marked null
// by mask, in place, and returns cols for chaining.
func ApplyNulls(cols []string, mask int64) []string {
	if mask == 0 {
		return cols
	}
	for i := range cols {
		if IsNull(mask, i) {
			cols[i] = ""
		}
	}
	return cols
}

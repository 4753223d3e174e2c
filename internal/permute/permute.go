// Package permute implements the Fisher-Yates item permutation spec.md
// §4.6 uses to select items for a sales order without replacement,
// wrapping around once the permutation is exhausted.
package permute

import "tpcdsgen/internal/rng"

// Permutation is a fixed-size random permutation of 1..n, drawn once
// and then addressed by position, wrapping modulo n so a caller can
// keep requesting entries past the permutation's length.
type Permutation struct {
	values []int64
}

// Make builds a permutation of 1..n using Fisher-Yates shuffling, with
// every swap decision drawn from s.
func Make(s *rng.Stream, n int64) *Permutation {
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(i) + 1
	}
	for i := len(values) - 1; i > 0; i-- {
		j := s.UniformIndex(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	return &Permutation{values: values}
}

// Entry returns the permutation's value at a 0-based index, wrapping
// around modulo the permutation's length.
func (p *Permutation) Entry(index int64) int64 {
	if len(p.values) == 0 {
		return 0
	}
	n := int64(len(p.values))
	i := index % n
	if i < 0 {
		i += n
	}
	return p.values[i]
}

// Len returns the permutation's length.
func (p *Permutation) Len() int64 { return int64(len(p.values)) }

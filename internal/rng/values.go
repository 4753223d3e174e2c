package rng

import (
	"strings"

	"tpcdsgen/internal/decimal"
)

const alphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const digits = "0123456789"

// UniformInt draws an integer in [min, max] inclusive, consuming exactly
// one seed regardless of the range's width: the 32-bit draw, taken as an
// unsigned value, modulo the range width, offset by min.
func (s *Stream) UniformInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	width := int64(max - min + 1)
	v := int64(s.Next())
	return min + int(v%width)
}

// UniformIndex draws an always-in-range index in [0, n), consuming one
// seed. It backs internal slice lookups (distribution rows, syllable
// tables, permutation swaps).
func (s *Stream) UniformIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(s.Next()) % uint64(n))
}

// UniformKey draws a 1-based surrogate key in [1, n], using the same
// unsigned-draw modulo UniformInt uses, widened to 64 bits.
func (s *Stream) UniformKey(n int64) int64 {
	if n <= 0 {
		return 0
	}
	v := int64(s.Next())
	return 1 + v%n
}

// UniformDecimal draws a decimal value in [min, max] (inclusive) sharing
// min's precision, matching the reference generator's convention of
// drawing the integer representation and rescaling.
func (s *Stream) UniformDecimal(min, max decimal.Decimal) decimal.Decimal {
	lo, hi := min.Number, max.Number
	if hi < lo {
		lo, hi = hi, lo
	}
	width := int64(hi-lo) + 1
	v := int64(s.Next())
	return decimal.New(lo+v%width, min.Precision)
}

// RandomString returns a string of length in [minLen, maxLen] drawn from
// the given character set, one character per seed.
func (s *Stream) RandomString(charset string, minLen, maxLen int) string {
	n := s.UniformInt(minLen, maxLen)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(charset[s.UniformIndex(len(charset))])
	}
	return b.String()
}

// AlphaNumeric draws a random alphanumeric string in [minLen, maxLen].
func (s *Stream) AlphaNumeric(minLen, maxLen int) string {
	return s.RandomString(alphaNumeric, minLen, maxLen)
}

// Digits draws a random numeric-only string of exactly n characters,
// used for phone numbers and zip-code suffixes.
func (s *Stream) Digits(n int) string {
	return s.RandomString(digits, n, n)
}

// RandomURL always returns the literal reference string: the reference
// generator's url field generator never actually draws from its
// supposed pool of URLs, a known bug this engine reproduces verbatim.
func (s *Stream) RandomURL() string {
	_ = s.Next() // a seed is still consumed even though the draw is discarded
	return "http://www.foo.com"
}

var syllables = [...]string{
	"ba", "be", "bi", "bo", "bu", "ca", "ce", "ci", "co", "cu",
	"da", "de", "di", "do", "du", "ei", "fa", "fe", "fi", "fo",
	"fu", "ga", "ge", "gi", "go", "gu", "ha", "he", "hi", "ho",
	"hu", "ja", "je", "ji", "jo", "ju", "ka", "ke", "ki", "ko",
}

// Word synthesizes a pronounceable word by treating one seed as a
// mixed-radix digit sequence over the syllable table: deterministic,
// length-bounded, and cheap to reproduce without an embedded dictionary.
func (s *Stream) Word(minSyllables, maxSyllables int) string {
	n := s.UniformInt(minSyllables, maxSyllables)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(syllables[s.UniformIndex(len(syllables))])
	}
	return b.String()
}

var grammarSlots = [...]byte{'N', 'V', 'J', 'D', 'X', 'P', 'A', 'T'}

// Sentence builds a grammar-code sentence by substituting each of the
// reference generator's part-of-speech placeholders (N/V/J/D/X/P/A/T)
// with a synthesized word, joined with single spaces.
func (s *Stream) Sentence(minWords, maxWords int) string {
	n := s.UniformInt(minWords, maxWords)
	words := make([]string, n)
	for i := range words {
		slot := grammarSlots[s.UniformIndex(len(grammarSlots))]
		switch slot {
		case 'N', 'V':
			words[i] = s.Word(2, 3)
		default:
			words[i] = s.Word(1, 2)
		}
	}
	return strings.Join(words, " ")
}

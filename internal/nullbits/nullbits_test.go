package nullbits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/nullbits"
	"tpcdsgen/internal/rng"
	"tpcdsgen/internal/schema"
)

func TestRollNeverSetsNotNullBits(t *testing.T) {
	s := rng.NewStream(1, 64)
	for i := 0; i < 500; i++ {
		mask := nullbits.Roll(s, schema.Customer)
		assert.Zero(t, mask&schema.Customer.NotNullBitMap())
	}
}

func TestRollIsZeroWhenBasisPointsIsZero(t *testing.T) {
	s := rng.NewStream(2, 64)
	for i := 0; i < 50; i++ {
		assert.Zero(t, nullbits.Roll(s, schema.DateDim))
	}
}

func TestRollIsDeterministic(t *testing.T) {
	s1 := rng.NewStream(3, 64)
	s2 := rng.NewStream(3, 64)
	for i := 0; i < 50; i++ {
		assert.Equal(t, nullbits.Roll(s1, schema.Item), nullbits.Roll(s2, schema.Item))
	}
}

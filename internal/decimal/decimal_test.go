package decimal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/decimal"
)

func TestArithmetic(t *testing.T) {
	t.Run("add same precision", func(t *testing.T) {
		a := decimal.New(1050, 2) // 10.50
		b := decimal.New(250, 2)  // 2.50
		assert.Equal(t, decimal.New(1300, 2), a.Add(b))
	})

	t.Run("sub rescales to larger precision", func(t *testing.T) {
		a := decimal.New(10, 0)  // 10
		b := decimal.New(150, 2) // 1.50
		assert.Equal(t, decimal.New(850, 2), a.Sub(b))
	})

	t.Run("mul int is exact", func(t *testing.T) {
		a := decimal.New(199, 2) // 1.99
		assert.Equal(t, decimal.New(1990, 2), a.MulInt(10))
	})

	t.Run("mul decimal rounds to result precision", func(t *testing.T) {
		a := decimal.New(150, 2) // 1.50
		b := decimal.New(2, 0)   // 2
		assert.Equal(t, decimal.New(300, 2), a.MulDecimal(b, 2))
	})

	t.Run("div int rounds half away from zero", func(t *testing.T) {
		a := decimal.New(10, 2) // 0.10
		q, err := a.DivInt(3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), q.Number) // 0.10/3 = 0.0333 -> rounds to 0.03
	})

	t.Run("div by zero errors", func(t *testing.T) {
		_, err := decimal.New(10, 2).DivInt(0)
		assert.Error(t, err)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", decimal.New(1234, 2).String())
	assert.Equal(t, "-1.50", decimal.New(-150, 2).String())
	assert.Equal(t, "0.05", decimal.New(5, 2).String())
	assert.Equal(t, "7", decimal.New(7, 0).String())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, decimal.New(100, 2).Cmp(decimal.New(2, 0)))
	assert.Equal(t, 0, decimal.New(200, 2).Cmp(decimal.New(2, 0)))
	assert.Equal(t, 1, decimal.New(300, 2).Cmp(decimal.New(2, 0)))
}

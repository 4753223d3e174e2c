package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tpcdsgen/internal/gen"
)

func TestGenerateInventoryIsDeterministic(t *testing.T) {
	res1 := gen.GenerateInventory(50, 100, 5)
	res2 := gen.GenerateInventory(50, 100, 5)
	assert.Equal(t, res1.Rows[0].Columns(), res2.Rows[0].Columns())
}

func TestGenerateInventoryCyclesThroughWarehousesBeforeAdvancingWeek(t *testing.T) {
	res1 := gen.GenerateInventory(1, 10, 3)
	res2 := gen.GenerateInventory(11, 10, 3)
	cols1 := res1.Rows[0].Columns()
	cols2 := res2.Rows[0].Columns()
	assert.Equal(t, cols1[0], cols2[0])
	assert.NotEqual(t, cols1[2], cols2[2])
}

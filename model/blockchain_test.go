package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLast(t *testing.T) {
	bc := Blockchain{Blocks: []Block{{Index: 0}, {Index: 1}, {Index: 2}}}

	assert.Equal(t, []Block{{Index: 2}}, bc.Last(0))
	assert.Equal(t, []Block{{Index: 1}, {Index: 2}}, bc.Last(1))
	for _, depth := range []int{-1, 2, 3, math.MaxInt, math.MinInt} {
		assert.Len(t, bc.Last(depth), 3, "depth %d", depth)
	}
	assert.Empty(t, (&Blockchain{}).Last(0))
}

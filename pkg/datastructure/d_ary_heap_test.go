package datastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapExtractsInRankOrder(t *testing.T) {
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[string](d)
		ranks := map[string]float64{"a": 5, "b": 1, "c": 3, "d": 4, "e": 2, "f": 0.5}
		for item, rank := range ranks {
			h.Insert(NewPriorityQueueNode(rank, item))
		}
		assert.Equal(t, 0.5, h.GetMinRank())

		got := make([]string, 0, len(ranks))
		for !h.IsEmpty() {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.False(t, node.InHeap())
			got = append(got, node.GetItem())
		}
		assert.Equal(t, []string{"f", "b", "e", "c", "d", "a"}, got)

		_, err := h.ExtractMin()
		assert.ErrorIs(t, err, ErrHeapEmpty)
		assert.True(t, math.IsInf(h.GetMinRank(), 1))
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[int]()
	nodes := make([]*PriorityQueueNode[int], 0, 10)
	for i := 0; i < 10; i++ {
		n := NewPriorityQueueNode(float64(10+i), i)
		nodes = append(nodes, n)
		h.Insert(n)
	}

	require.NoError(t, h.DecreaseKey(nodes[7], 1))
	min, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, 7, min.GetItem())

	assert.ErrorIs(t, h.DecreaseKey(nodes[3], 100), ErrInvalidDecrease)

	extracted, err := h.ExtractMin()
	require.NoError(t, err)
	assert.ErrorIs(t, h.DecreaseKey(extracted, 0), ErrInvalidDecrease)
	assert.Equal(t, 9, h.Size())
}

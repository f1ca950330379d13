package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	tests := []struct {
		name string
		pq   *PriorityQueue
		want []int
	}{
		{"Min", NewMin(4), []int{2, 3, 0, 1}},
		{"Max", NewMax(4), []int{1, 0, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.pq.PushItem(Item{Index: 0, Distance: 2})
			tt.pq.PushItem(Item{Index: 1, Distance: 3})
			tt.pq.PushItem(Item{Index: 2, Distance: 1})
			tt.pq.PushItem(Item{Index: 3, Distance: 1})

			var got []int
			for tt.pq.Len() > 0 {
				item, ok := tt.pq.PopItem()
				require.True(t, ok)
				got = append(got, item.Index)
			}
			assert.Equal(t, tt.want, got)

			_, ok := tt.pq.PopItem()
			assert.False(t, ok)
			_, ok = tt.pq.TopItem()
			assert.False(t, ok)
		})
	}
}

func TestPriorityQueueHeapInterface(t *testing.T) {
	pq := NewMin(3)
	heap.Push(pq, Item{Index: 1, Distance: 5})
	heap.Push(pq, Item{Index: 2, Distance: 0.5})
	heap.Push(pq, Item{Index: 3, Distance: 2})

	assert.Equal(t, 2, heap.Pop(pq).(Item).Index)
	assert.Equal(t, 3, heap.Pop(pq).(Item).Index)

	pq.Reset()
	assert.Equal(t, 0, pq.Len())
}

func TestBounded(t *testing.T) {
	b := NewBounded(3)

	assert.True(t, b.Offer(Item{Index: 0, Distance: 5}))
	assert.True(t, b.Offer(Item{Index: 1, Distance: 1}))
	assert.True(t, b.Offer(Item{Index: 2, Distance: 4}))
	assert.False(t, b.Offer(Item{Index: 3, Distance: 6}))
	assert.True(t, b.Offer(Item{Index: 4, Distance: 2}))
	// Equal distance with a higher index does not displace index 2.
	assert.False(t, b.Offer(Item{Index: 5, Distance: 4}))

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []Item{
		{Index: 1, Distance: 1},
		{Index: 4, Distance: 2},
		{Index: 2, Distance: 4},
	}, b.Sorted())
}

func TestBoundedZero(t *testing.T) {
	b := NewBounded(0)
	assert.False(t, b.Offer(Item{Index: 0, Distance: 1}))
	assert.Empty(t, b.Sorted())
}

package queue

import (
	"container/heap"
	"slices"
)

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// Item is a point index with its distance to the query.
type Item struct {
	Index    int     // Index is the position of the point in the training set.
	Distance float64 // Distance is the priority of the item in the queue.
}

// before orders items by distance, breaking ties by index.
func before(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}

// PriorityQueue implements heap.Interface and holds Items.
// Value-based storage, no pointer indirection.
type PriorityQueue struct {
	isMaxHeap bool
	items     []Item
}

// NewMin initializes a new priority queue with minimum priority.
func NewMin(capacity int) *PriorityQueue {
	return &PriorityQueue{items: make([]Item, 0, capacity)}
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{isMaxHeap: true, items: make([]Item, 0, capacity)}
}

// TopItem returns the top element of the heap.
func (pq *PriorityQueue) TopItem() (Item, bool) {
	if len(pq.items) == 0 {
		return Item{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue) PushItem(item Item) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue) PopItem() (Item, bool) {
	n := len(pq.items)
	if n == 0 {
		return Item{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.Less(i, p) {
			return
		}
		pq.Swap(i, p)
		i = p
	}
}

func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.Less(r, l) {
			best = r
		}
		if !pq.Less(best, i) {
			return
		}
		pq.Swap(i, best)
		i = best
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	if pq.isMaxHeap {
		return before(pq.items[j], pq.items[i])
	}
	return before(pq.items[i], pq.items[j])
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	pq.items = append(pq.items, x.(Item))
}

// Pop removes and returns the last element of the backing slice.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	if n == 0 {
		return Item{}
	}
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue) Reset() {
	pq.items = pq.items[:0]
}

// Bounded keeps the k smallest items pushed into it.
// Internally it is a max-heap whose top is the current worst candidate.
type Bounded struct {
	k  int
	pq *PriorityQueue
}

// NewBounded creates a Bounded queue holding at most k items.
func NewBounded(k int) *Bounded {
	return &Bounded{k: k, pq: NewMax(k)}
}

// Offer adds the item if the queue is not full or if it sorts before the
// current worst item, which is then evicted. It reports whether the item was kept.
func (b *Bounded) Offer(item Item) bool {
	if b.k <= 0 {
		return false
	}
	if b.pq.Len() < b.k {
		b.pq.PushItem(item)
		return true
	}

	worst, _ := b.pq.TopItem()
	if !before(item, worst) {
		return false
	}

	b.pq.items[0] = item
	b.pq.siftDown(0)

	return true
}

// Len returns the number of items held.
func (b *Bounded) Len() int { return b.pq.Len() }

// Sorted returns the held items ordered by distance, then index.
func (b *Bounded) Sorted() []Item {
	out := slices.Clone(b.pq.items)
	slices.SortFunc(out, func(x, y Item) int {
		switch {
		case before(x, y):
			return -1
		case before(y, x):
			return 1
		default:
			return 0
		}
	})
	return out
}

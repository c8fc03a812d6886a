package search

import (
	"container/heap"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"
)

// frontierItem is a candidate waiting to be settled. priority orders the
// frontier while cost is the accumulated edge weight used for bookkeeping.
type frontierItem struct {
	node     graph.NodeID
	priority float64
	cost     int
	seq      uint64
}

// frontierHeap implements heap.Interface. Equal priorities pop in push order.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]

	return item
}

// frontier is a min-priority queue without decrease-key: improved entries
// are pushed again and stale ones are skipped by the caller.
type frontier struct {
	items frontierHeap
	seq   uint64
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.items)

	return f
}

func (f *frontier) push(node graph.NodeID, priority float64, cost int) {
	heap.Push(&f.items, frontierItem{
		node:     node,
		priority: priority,
		cost:     cost,
		seq:      f.seq,
	})
	f.seq++
}

func (f *frontier) pop() frontierItem {
	return heap.Pop(&f.items).(frontierItem)
}

func (f *frontier) len() int {
	return f.items.Len()
}

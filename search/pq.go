package search

// frontierItem is a best-first frontier entry.
//
// Ordering is (prio, tie, seq) ascending:
//   - Greedy: prio = h(n), tie unused (0), seq = insertion order.
//   - A*:     prio = f(n) = g(n) + h(n), tie = h(n), seq = insertion order.
//
// The monotonic seq makes equal-priority pops FIFO-stable, which keeps
// expansion order — and therefore every statistic — reproducible.
type frontierItem struct {
	n    *node
	prio int
	tie  int
	seq  uint64
}

// frontierPQ is a min-heap of *frontierItem. Stale duplicates are allowed
// (lazy decrease-key): when a better path to a state is found, a new item
// is pushed and the outdated one is ignored at pop time via the closed set.
type frontierPQ []*frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less orders by priority, then tie-break, then insertion order.
func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

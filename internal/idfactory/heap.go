package idfactory

// span is an inclusive range of free ids.
type span struct {
	lo, hi int32
}

func (s span) size() int {
	return int(int64(s.hi) - int64(s.lo) + 1)
}

// spanHeap implements container/heap for the free list, ordered by lo.
// Spans never overlap, so the root holds the smallest free id.
type spanHeap []span

func (h spanHeap) Len() int           { return len(h) }
func (h spanHeap) Less(i, j int) bool { return h[i].lo < h[j].lo }
func (h spanHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *spanHeap) Push(x any)        { *h = append(*h, x.(span)) }
func (h *spanHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

// peek returns the smallest free id. Panics on an empty heap.
func (h spanHeap) peek() int32 {
	if len(h) == 0 {
		panic("idfactory: peek on empty free list")
	}
	return h[0].lo
}

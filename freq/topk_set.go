package freq

import (
	"container/heap"
	"sort"

	"streamest/tree"
)

// TopKSet keeps the capacity keys with the largest counts. When an insertion
// would exceed the bound, the entry with the smallest (count, admission
// sequence) is evicted, so ties never silently shadow each other.
type TopKSet struct {
	capacity int
	minHeap  *tree.MinHeap
	items    map[string]*tree.HeapItem
	nextSeq  uint64
}

func NewTopKSet(capacity int) *TopKSet {
	return &TopKSet{
		capacity: capacity,
		minHeap:  tree.NewMinHeap(capacity + 1),
		items:    make(map[string]*tree.HeapItem),
		nextSeq:  0,
	}
}

// Offer records the latest count for key, updating it in place when already
// tracked and evicting the minimum entry when over capacity.
func (s *TopKSet) Offer(key string, count int64) {
	if item, ok := s.items[key]; ok {
		s.minHeap.Update(item, count)
		return
	}
	item := &tree.HeapItem{Key: key, Count: count, Seq: s.nextSeq}
	s.nextSeq++
	heap.Push(s.minHeap, item)
	s.items[key] = item
	if s.minHeap.Len() > s.capacity {
		evicted := heap.Pop(s.minHeap).(*tree.HeapItem)
		delete(s.items, evicted.Key)
	}
}

func (s *TopKSet) Len() int {
	return s.minHeap.Len()
}

// Items returns the tracked entries ordered ascending by (count, admission
// sequence).
func (s *TopKSet) Items() []ItemCount {
	entries := s.minHeap.Items()
	ordered := make([]*tree.HeapItem, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Count == ordered[j].Count {
			return ordered[i].Seq < ordered[j].Seq
		}
		return ordered[i].Count < ordered[j].Count
	})

	items := make([]ItemCount, len(ordered))
	for i, item := range ordered {
		items[i] = ItemCount{Key: item.Key, Count: item.Count}
	}
	return items
}

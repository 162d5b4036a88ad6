package tree

import "container/heap"

// HeapItem is an entry in the count-ordered min-heap. Seq is an insertion
// sequence number breaking count ties, so the eviction order of items sharing
// a count is deterministic and no item shadows another.
type HeapItem struct {
	Key   string
	Count int64
	Seq   uint64
	Index int
}

type MinHeap []*HeapItem

func (mh MinHeap) Len() int {
	return len(mh)
}

func (mh MinHeap) Less(i, j int) bool {
	if mh[i].Count == mh[j].Count {
		return mh[i].Seq < mh[j].Seq
	}
	return mh[i].Count < mh[j].Count
}

func (mh MinHeap) Swap(i, j int) {
	mh[i], mh[j] = mh[j], mh[i]
	mh[i].Index = i
	mh[j].Index = j
}

func (mh *MinHeap) Push(x interface{}) {
	n := len(*mh)
	item := x.(*HeapItem)
	item.Index = n
	*mh = append(*mh, item)
}

func (mh *MinHeap) Pop() interface{} {
	old := *mh
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.Index = -1
	*mh = old[0 : n-1]
	return item
}

// Top returns the minimum (count, seq) item without removing it.
func (mh *MinHeap) Top() *HeapItem {
	arr := *mh
	return arr[0]
}

func (mh *MinHeap) Update(item *HeapItem, count int64) {
	item.Count = count
	heap.Fix(mh, item.Index)
}

func (mh *MinHeap) Items() []*HeapItem {
	return *mh
}

func NewMinHeap(initSize int) *MinHeap {
	mh := make(MinHeap, 0, initSize)
	heap.Init(&mh)
	return &mh
}

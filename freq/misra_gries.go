package freq

import (
	"sort"

	"streamest/window"
)

// MisraGries is the deterministic bounded-count estimator. For a stream of N
// items it tracks at most maxBucket keys; any key whose true frequency
// exceeds N/(maxBucket+1) is never fully evicted, and its reported count
// undercounts the truth by at most N/(maxBucket+1).
//
// Two independent modes share the structure: Add maintains plain counts,
// AddAt maintains per-key timestamp lists aged through an Expirer. Whichever
// mode has been fed determines what Snapshot reports.
type MisraGries struct {
	maxBucket int
	buckets   map[string]int64
	timed     map[string][]int64
	expirer   *window.Expirer
	seq       map[string]uint64
	nextSeq   uint64
}

func NewMisraGries(maxBucket int) *MisraGries {
	return &MisraGries{
		maxBucket: maxBucket,
		buckets:   make(map[string]int64),
		timed:     make(map[string][]int64),
		expirer:   nil,
		seq:       make(map[string]uint64),
		nextSeq:   0,
	}
}

// SetExpirer attaches the retention window used by timed adds.
func (mg *MisraGries) SetExpirer(expirer *window.Expirer) {
	mg.expirer = expirer
}

func (mg *MisraGries) admit(value string) {
	mg.seq[value] = mg.nextSeq
	mg.nextSeq++
}

// Add records one occurrence of value. On overflow every bucket is
// decremented and zeroed buckets are dropped; the new value is absorbed by
// that decrement rather than admitted.
func (mg *MisraGries) Add(value string) {
	if count, ok := mg.buckets[value]; ok {
		mg.buckets[value] = count + 1
		return
	}
	if len(mg.buckets) < mg.maxBucket {
		mg.admit(value)
		mg.buckets[value] = 1
		return
	}
	for key, count := range mg.buckets {
		if count > 1 {
			mg.buckets[key] = count - 1
		} else {
			delete(mg.buckets, key)
			delete(mg.seq, key)
		}
	}
}

// AddAt records one occurrence of value at the given logical timestamp.
// Before insertion every tracked key's list is aged through the expirer with
// timestamp as "now". A new key is admitted with its triggering timestamp;
// when that would exceed capacity, the key bearing the globally oldest
// timestamp is evicted first.
func (mg *MisraGries) AddAt(value string, timestamp int64) error {
	if mg.expirer != nil {
		for key, list := range mg.timed {
			pruned := mg.expirer.Expire(list, timestamp)
			if len(pruned) == 0 {
				delete(mg.timed, key)
				delete(mg.seq, key)
			} else {
				mg.timed[key] = pruned
			}
		}
	}

	if list, ok := mg.timed[value]; ok {
		mg.timed[value] = append(list, timestamp)
		return nil
	}
	if len(mg.timed) >= mg.maxBucket {
		mg.evictOldestTimed()
	}
	mg.admit(value)
	mg.timed[value] = []int64{timestamp}
	return nil
}

// evictOldestTimed drops the key whose earliest timestamp is globally oldest,
// breaking ties by admission order.
func (mg *MisraGries) evictOldestTimed() {
	var victim string
	var victimHead int64
	found := false
	for key, list := range mg.timed {
		head := list[0]
		if !found || head < victimHead ||
			(head == victimHead && mg.seq[key] < mg.seq[victim]) {
			victim = key
			victimHead = head
			found = true
		}
	}
	if found {
		delete(mg.timed, victim)
		delete(mg.seq, victim)
	}
}

// Size reports the number of distinct keys currently tracked by the mode in
// use.
func (mg *MisraGries) Size() int {
	if len(mg.timed) > 0 {
		return len(mg.timed)
	}
	return len(mg.buckets)
}

// Snapshot reports tracked items ordered ascending by count. In timed mode
// the count is the current timestamp-list length. Ties keep first-admission
// order.
func (mg *MisraGries) Snapshot() []ItemCount {
	var items []ItemCount
	if len(mg.timed) > 0 {
		items = make([]ItemCount, 0, len(mg.timed))
		for key, list := range mg.timed {
			items = append(items, ItemCount{Key: key, Count: int64(len(list))})
		}
	} else {
		items = make([]ItemCount, 0, len(mg.buckets))
		for key, count := range mg.buckets {
			items = append(items, ItemCount{Key: key, Count: count})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return mg.seq[items[i].Key] < mg.seq[items[j].Key]
		}
		return items[i].Count < items[j].Count
	})
	return items
}

package sketch

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// CountMin approximates per-key occurrence counts in constant memory.
// Estimates never undercount: Estimate(key) >= true count, and with
// probability at least 1-errorProbLimit the overcount is bounded by
// errorLimit * TotalCount().
type CountMin struct {
	width uint64
	depth int
	rows  [][]uint64
	total uint64
}

// New derives the sketch dimensions from the accuracy parameters:
// width = ceil(e / errorLimit), depth = ceil(ln(1 / errorProbLimit)).
func New(errorLimit, errorProbLimit float64) (*CountMin, error) {
	if errorLimit <= 0 || errorLimit >= 1 {
		return nil, fmt.Errorf("sketch: errorLimit must be in (0, 1), got %v", errorLimit)
	}
	if errorProbLimit <= 0 || errorProbLimit >= 1 {
		return nil, fmt.Errorf("sketch: errorProbLimit must be in (0, 1), got %v", errorProbLimit)
	}

	width := uint64(math.Ceil(math.E / errorLimit))
	depth := int(math.Ceil(math.Log(1 / errorProbLimit)))
	if depth < 1 {
		depth = 1
	}

	rows := make([][]uint64, depth)
	for i := range rows {
		rows[i] = make([]uint64, width)
	}

	return &CountMin{
		width: width,
		depth: depth,
		rows:  rows,
		total: 0,
	}, nil
}

// positions derives one counter index per row from a single xxhash value,
// using the upper half as the stride (double hashing).
func (cm *CountMin) positions(key string) (uint64, uint64) {
	h := xxhash.Sum64String(key)
	base := h & 0xffffffff
	stride := (h >> 32) | 1
	return base, stride
}

func (cm *CountMin) Increment(key string) {
	base, stride := cm.positions(key)
	for i := 0; i < cm.depth; i++ {
		idx := (base + uint64(i)*stride) % cm.width
		cm.rows[i][idx]++
	}
	cm.total++
}

// Estimate returns the smallest counter the key hashes to across all rows.
func (cm *CountMin) Estimate(key string) uint64 {
	base, stride := cm.positions(key)
	est := uint64(math.MaxUint64)
	for i := 0; i < cm.depth; i++ {
		idx := (base + uint64(i)*stride) % cm.width
		if cm.rows[i][idx] < est {
			est = cm.rows[i][idx]
		}
	}
	return est
}

// TotalCount is the number of increments seen, the N in the error bound.
func (cm *CountMin) TotalCount() uint64 {
	return cm.total
}

func (cm *CountMin) Width() uint64 {
	return cm.width
}

func (cm *CountMin) Depth() int {
	return cm.depth
}

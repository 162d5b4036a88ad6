package freq

import (
	"fmt"

	"streamest/sketch"
)

// CountMinTopK tracks an approximate top-K set driven by a Count-Min sketch.
// Every add increments the sketch and re-ranks the value by its current
// estimate; estimates inherit the sketch's one-sided error.
type CountMinTopK struct {
	sketch *sketch.CountMin
	top    *TopKSet
}

func NewCountMinTopK(errorLimit, errorProbLimit float64, mostFrequentCount int) (*CountMinTopK, error) {
	if mostFrequentCount <= 0 {
		return nil, fmt.Errorf("freq: MostFrequentCount must be positive, got %d", mostFrequentCount)
	}
	cm, err := sketch.New(errorLimit, errorProbLimit)
	if err != nil {
		return nil, err
	}
	return &CountMinTopK{
		sketch: cm,
		top:    NewTopKSet(mostFrequentCount),
	}, nil
}

func (c *CountMinTopK) Add(value string) {
	c.sketch.Increment(value)
	c.top.Offer(value, int64(c.sketch.Estimate(value)))
}

// AddAt is a placeholder until a time-decaying sketch variant exists.
func (c *CountMinTopK) AddAt(value string, timestamp int64) error {
	return ErrTimedUnsupported
}

func (c *CountMinTopK) Snapshot() []ItemCount {
	return c.top.Items()
}

// Sketch exposes the backing sketch for direct estimate queries.
func (c *CountMinTopK) Sketch() *sketch.CountMin {
	return c.sketch
}

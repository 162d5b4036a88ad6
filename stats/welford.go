package stats

import "math"

// Welford tracks a running mean and variance with Welford's online update.
// Memory stays constant regardless of how many values are seen.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (w *Welford) Update(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	w.m2 += delta * (value - w.mean)
}

func (w *Welford) Count() uint64 {
	return w.count
}

func (w *Welford) Mean() float64 {
	return w.mean
}

// Variance returns the population variance of the values seen so far.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count)
}

func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

func (w *Welford) StdDev() float64 {
	return math.Sqrt(w.SampleVariance())
}

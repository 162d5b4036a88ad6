package stats

// ArrivalStats summarizes a stream of timestamped observations: the value
// distribution plus the inter-arrival gaps. Timestamps are the caller's
// logical event time, so replayed streams produce identical statistics.
type ArrivalStats struct {
	firstArrival int64
	lastArrival  int64
	count        uint64
	intervals    *Welford
	values       *Welford
}

func NewArrivalStats() *ArrivalStats {
	return &ArrivalStats{
		firstArrival: -1,
		lastArrival:  -1,
		count:        0,
		intervals:    NewWelford(),
		values:       NewWelford(),
	}
}

func (a *ArrivalStats) Observe(timestamp int64, value float64) {
	if a.firstArrival == -1 {
		a.firstArrival = timestamp
	} else {
		a.intervals.Update(float64(timestamp - a.lastArrival))
	}
	a.values.Update(value)
	a.count++
	a.lastArrival = timestamp
}

func (a *ArrivalStats) Count() uint64 {
	return a.count
}

// FirstArrival reports the earliest observed timestamp. The second return is
// false until at least one observation has been made.
func (a *ArrivalStats) FirstArrival() (int64, bool) {
	return a.firstArrival, a.count > 0
}

func (a *ArrivalStats) LastArrival() (int64, bool) {
	return a.lastArrival, a.count > 0
}

// Intervals exposes the running statistics over inter-arrival gaps.
func (a *ArrivalStats) Intervals() *Welford {
	return a.intervals
}

// Values exposes the running statistics over observed values.
func (a *ArrivalStats) Values() *Welford {
	return a.values
}

package window

// DataWindow holds events in insertion order, backed by parallel timestamp
// and value slices. The window exclusively owns its storage; eviction
// compacts in place and preserves the relative order of survivors.
type DataWindow struct {
	times  []int64
	values []float64
}

func NewDataWindow() *DataWindow {
	return &DataWindow{
		times:  make([]int64, 0),
		values: make([]float64, 0),
	}
}

func (dw *DataWindow) Append(e Event) {
	dw.times = append(dw.times, e.Time)
	dw.values = append(dw.values, e.Value)
}

func (dw *DataWindow) Size() int {
	return len(dw.times)
}

// Earliest returns the oldest event. The second return is false when the
// window holds no events.
func (dw *DataWindow) Earliest() (Event, bool) {
	if len(dw.times) == 0 {
		return Event{}, false
	}
	return Event{Time: dw.times[0], Value: dw.values[0]}, true
}

// Latest returns the newest event. The second return is false when the
// window holds no events.
func (dw *DataWindow) Latest() (Event, bool) {
	if len(dw.times) == 0 {
		return Event{}, false
	}
	n := len(dw.times) - 1
	return Event{Time: dw.times[n], Value: dw.values[n]}, true
}

func (dw *DataWindow) At(pos int) (Event, bool) {
	if pos < 0 || pos >= len(dw.times) {
		return Event{}, false
	}
	return Event{Time: dw.times[pos], Value: dw.values[pos]}, true
}

// Filter removes every event for which keep returns false, compacting the
// backing slices in place without reordering survivors.
func (dw *DataWindow) Filter(keep func(e Event) bool) {
	s := 0
	for i := 0; i < len(dw.times); i++ {
		if keep(Event{Time: dw.times[i], Value: dw.values[i]}) {
			dw.times[s] = dw.times[i]
			dw.values[s] = dw.values[i]
			s++
		}
	}
	dw.times = dw.times[:s]
	dw.values = dw.values[:s]
}

// Events returns a copy of the current contents in insertion order.
func (dw *DataWindow) Events() []Event {
	events := make([]Event, len(dw.times))
	for i := range dw.times {
		events[i] = Event{Time: dw.times[i], Value: dw.values[i]}
	}
	return events
}

func (dw *DataWindow) Clear() {
	dw.times = dw.times[:0]
	dw.values = dw.values[:0]
}

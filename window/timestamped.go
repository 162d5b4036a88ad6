package window

// TimeStamped is implemented by anything carrying a logical event time.
type TimeStamped interface {
	Timestamp() int64
}

// Event is a single timestamped observation. Time is caller-supplied logical
// time rather than wall clock, so streams replay deterministically.
type Event struct {
	Time  int64
	Value float64
}

func (e Event) Timestamp() int64 {
	return e.Time
}

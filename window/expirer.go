package window

// Expirer prunes stale entries from the front of an ordered timestamp list,
// given a retention window. "Now" is supplied by the caller on every call, so
// expiry follows logical event time.
type Expirer struct {
	window int64
}

func NewExpirer(window int64) *Expirer {
	return &Expirer{window: window}
}

// Expire drops timestamps older than now - window from the front of ts.
// The list must be ordered ascending; pruning stops at the first retained
// entry. The retained suffix is shifted to the front of the same backing
// array and returned.
func (ex *Expirer) Expire(ts []int64, now int64) []int64 {
	cutoff := now - ex.window
	i := 0
	for i < len(ts) && ts[i] < cutoff {
		i++
	}
	if i == 0 {
		return ts
	}
	return ts[:copy(ts, ts[i:])]
}

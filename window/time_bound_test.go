package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeBoundWindow_Validation(t *testing.T) {
	_, err := NewTimeBoundWindow(Config{TimeSpan: 0}, nil)
	assert.Error(t, err)
	_, err = NewTimeBoundWindow(Config{TimeSpan: -5}, nil)
	assert.Error(t, err)
	_, err = NewTimeBoundWindow(Config{TimeSpan: 100, TimeStep: -1}, nil)
	assert.Error(t, err)
	_, err = NewTimeBoundWindow(Config{TimeSpan: 100, ProcessingTimeStep: -1}, nil)
	assert.Error(t, err)
	_, err = NewTimeBoundWindow(Config{TimeSpan: 100}, nil)
	assert.NoError(t, err)
}

func TestTimeBoundWindow_EvictionInvariant(t *testing.T) {
	tbw, err := NewTimeBoundWindow(Config{TimeSpan: 100, TimeStep: 10}, nil)
	require.NoError(t, err)

	evictions := 0
	for ts := int64(0); ts <= 150; ts++ {
		sizeBefore := tbw.Size()
		tbw.Observe(Event{Time: ts, Value: float64(ts)})

		latest, ok := tbw.Latest()
		require.True(t, ok)
		assert.Equal(t, ts, latest.Time)

		if tbw.Size() <= sizeBefore {
			// an eviction pass ran: every survivor is within
			// timeSpan - timeStep of the newest event
			evictions++
			for _, e := range tbw.Events() {
				assert.GreaterOrEqual(t, e.Time, latest.Time-90)
			}
		}

		// the span never exceeds timeSpan after the insert hook runs
		earliest, _ := tbw.Earliest()
		assert.LessOrEqual(t, latest.Time-earliest.Time, int64(100))
	}
	assert.Greater(t, evictions, 0)
}

func TestTimeBoundWindow_ProcessingThrottle(t *testing.T) {
	processed := 0
	tbw, err := NewTimeBoundWindow(
		Config{TimeSpan: 100, TimeStep: 10, ProcessingTimeStep: 50},
		func(events []Event) { processed++ },
	)
	require.NoError(t, err)

	// first trigger at ts=101 fires unconditionally
	for ts := int64(0); ts <= 101; ts++ {
		tbw.Observe(Event{Time: ts, Value: 0})
	}
	assert.Equal(t, 1, processed)

	// second trigger 39 after the first one: throttled
	tbw.Observe(Event{Time: 140, Value: 0})
	assert.Equal(t, 1, processed)

	// 59 after the first one: fires again
	tbw.Observe(Event{Time: 160, Value: 0})
	assert.Equal(t, 2, processed)
}

func TestTimeBoundWindow_NoThrottleConfigured(t *testing.T) {
	processed := 0
	tbw, err := NewTimeBoundWindow(
		Config{TimeSpan: 100},
		func(events []Event) { processed++ },
	)
	require.NoError(t, err)

	tbw.Observe(Event{Time: 0, Value: 0})
	tbw.Observe(Event{Time: 101, Value: 0})
	tbw.Observe(Event{Time: 210, Value: 0})
	assert.Equal(t, 2, processed)
}

func TestTimeBoundWindow_IsFullThreshold(t *testing.T) {
	tbw, err := NewTimeBoundWindow(Config{TimeSpan: 100}, nil)
	require.NoError(t, err)

	assert.False(t, tbw.IsFull())

	tbw.Observe(Event{Time: 0, Value: 0})
	assert.False(t, tbw.IsFull())

	// span 94 = 0.94 * timeSpan: not full
	tbw.Observe(Event{Time: 94, Value: 0})
	assert.False(t, tbw.IsFull())

	// span 96 = 0.96 * timeSpan: full
	tbw.Observe(Event{Time: 96, Value: 0})
	assert.True(t, tbw.IsFull())
}

func TestTimeBoundWindow_FewEventsNoFault(t *testing.T) {
	tbw, err := NewTimeBoundWindow(Config{TimeSpan: 10}, nil)
	require.NoError(t, err)

	_, ok := tbw.Earliest()
	assert.False(t, ok)

	// a lone event far beyond the span must not trigger eviction
	tbw.Observe(Event{Time: 1000, Value: 1})
	assert.Equal(t, 1, tbw.Size())
}

func TestTimeBoundWindow_ProcessorSeesFullWindow(t *testing.T) {
	var seen []Event
	tbw, err := NewTimeBoundWindow(
		Config{TimeSpan: 10},
		func(events []Event) { seen = events },
	)
	require.NoError(t, err)

	tbw.Observe(Event{Time: 0, Value: 1})
	tbw.Observe(Event{Time: 5, Value: 2})
	tbw.Observe(Event{Time: 11, Value: 3})

	// callback runs before eviction, so it sees the whole window
	require.Len(t, seen, 3)
	assert.Equal(t, int64(0), seen[0].Time)
	assert.Equal(t, int64(11), seen[2].Time)
}

func TestTimeBoundWindow_ArrivalStats(t *testing.T) {
	tbw, err := NewTimeBoundWindow(Config{TimeSpan: 100}, nil)
	require.NoError(t, err)

	tbw.Observe(Event{Time: 0, Value: 2})
	tbw.Observe(Event{Time: 10, Value: 4})
	tbw.Observe(Event{Time: 30, Value: 6})

	assert.Equal(t, uint64(3), tbw.Stats().Count())
	assert.InDelta(t, 15.0, tbw.Stats().Intervals().Mean(), 1e-9)
	assert.InDelta(t, 4.0, tbw.Stats().Values().Mean(), 1e-9)
}

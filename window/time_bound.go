package window

import (
	"fmt"

	"streamest/stats"
)

// fullWindowFraction is the span fraction at which IsFull starts reporting
// true. It is an early-warning signal, not a hard boundary.
const fullWindowFraction = 0.95

// Config carries the time-bound window parameters. TimeSpan is required;
// the zero values of TimeStep and ProcessingTimeStep mean "no retention
// slack" and "no processing throttle".
type Config struct {
	// TimeSpan is the maximum allowed age spread between the newest and
	// oldest retained event.
	TimeSpan int64
	// TimeStep is the retention slack below full eviction: after an
	// eviction pass, events younger than latest - TimeSpan + TimeStep
	// survive.
	TimeStep int64
	// ProcessingTimeStep is the minimum gap between two consecutive
	// full-window processing callbacks.
	ProcessingTimeStep int64
}

// Processor receives the full window contents whenever a processing pass
// fires. The slice is a copy; the processor may retain it.
type Processor func(events []Event)

// TimeBoundWindow buffers timestamped events and, on every insertion, evicts
// events older than the configured span and triggers a throttled full-window
// processing callback. Instances are not safe for concurrent use; one logical
// producer drives all mutating calls.
type TimeBoundWindow struct {
	cfg               Config
	data              *DataWindow
	processor         Processor
	lastProcessedTime int64
	arrival           *stats.ArrivalStats
}

// NewTimeBoundWindow validates cfg and builds a window. A nil processor is
// allowed; processing passes then only advance the throttle clock.
func NewTimeBoundWindow(cfg Config, processor Processor) (*TimeBoundWindow, error) {
	if cfg.TimeSpan <= 0 {
		return nil, fmt.Errorf("window: TimeSpan must be positive, got %d", cfg.TimeSpan)
	}
	if cfg.TimeStep < 0 {
		return nil, fmt.Errorf("window: TimeStep must not be negative, got %d", cfg.TimeStep)
	}
	if cfg.ProcessingTimeStep < 0 {
		return nil, fmt.Errorf("window: ProcessingTimeStep must not be negative, got %d", cfg.ProcessingTimeStep)
	}
	return &TimeBoundWindow{
		cfg:               cfg,
		data:              NewDataWindow(),
		processor:         processor,
		lastProcessedTime: 0,
		arrival:           stats.NewArrivalStats(),
	}, nil
}

// Observe appends one event and runs the post-insert expiry pass.
func (tbw *TimeBoundWindow) Observe(e Event) {
	tbw.data.Append(e)
	tbw.arrival.Observe(e.Time, e.Value)
	tbw.onInsert()
}

func (tbw *TimeBoundWindow) onInsert() {
	tbw.expire()
}

// expire slides the window: when the span exceeds TimeSpan it attempts a
// throttled processing pass and then drops every event older than
// latest - TimeSpan + TimeStep. With fewer than 2 events earliest/latest are
// undefined, so the pass is a no-op.
func (tbw *TimeBoundWindow) expire() {
	if tbw.data.Size() < 2 {
		return
	}
	earliest, _ := tbw.data.Earliest()
	latest, _ := tbw.data.Latest()
	if latest.Time-earliest.Time <= tbw.cfg.TimeSpan {
		return
	}

	tbw.processFullWindow(latest.Time)

	earliestRetained := latest.Time - tbw.cfg.TimeSpan + tbw.cfg.TimeStep
	tbw.data.Filter(func(e Event) bool {
		return e.Time >= earliestRetained
	})
}

// processFullWindow fires the processing callback unless throttled. The
// throttle only engages once a previous pass has run and ProcessingTimeStep
// is configured. Reports whether the callback fired.
func (tbw *TimeBoundWindow) processFullWindow(latest int64) bool {
	if tbw.cfg.ProcessingTimeStep > 0 && tbw.lastProcessedTime > 0 &&
		latest-tbw.lastProcessedTime <= tbw.cfg.ProcessingTimeStep {
		return false
	}
	if tbw.processor != nil {
		tbw.processor(tbw.data.Events())
	}
	tbw.lastProcessedTime = latest
	return true
}

// IsFull reports whether the current span exceeds 95% of TimeSpan. Callers
// use it to start reading results before the next eviction. False below 2
// events.
func (tbw *TimeBoundWindow) IsFull() bool {
	if tbw.data.Size() < 2 {
		return false
	}
	earliest, _ := tbw.data.Earliest()
	latest, _ := tbw.data.Latest()
	return float64(latest.Time-earliest.Time) > fullWindowFraction*float64(tbw.cfg.TimeSpan)
}

func (tbw *TimeBoundWindow) Size() int {
	return tbw.data.Size()
}

func (tbw *TimeBoundWindow) Earliest() (Event, bool) {
	return tbw.data.Earliest()
}

func (tbw *TimeBoundWindow) Latest() (Event, bool) {
	return tbw.data.Latest()
}

// Events returns a copy of the retained events in insertion order.
func (tbw *TimeBoundWindow) Events() []Event {
	return tbw.data.Events()
}

// Stats exposes the running arrival statistics over everything ever
// observed, evicted or not.
func (tbw *TimeBoundWindow) Stats() *stats.ArrivalStats {
	return tbw.arrival
}

package marbles

import (
	"sync/atomic"
	"time"
)

// RunStats describes one run of a monitored operator.
type RunStats struct {
	// At is when the run started.
	At time.Time
	// Err is the validation failure of a skipped run.
	Err error
	// Terminal is the output's termination, None when skipped.
	Terminal   Termination
	Expression string
	// Inputs is the number of streams handed to the operator.
	Inputs int
	// Marbles is the number of output values.
	Marbles  int
	Duration time.Duration
	// Skipped is true when the operator did not apply to the inputs.
	Skipped bool
}

// Monitor observes every run of an operator and reports statistics about
// it. It is a pass-through Runner: outputs and errors are not modified.
type Monitor struct {
	runner  Runner
	clock   Clock
	onStats func(RunStats)
	runs    atomic.Int64
	skips   atomic.Int64
}

// NewMonitor wraps runner, calling onStats after each run.
//
// Example:
//
//	monitor := marbles.NewMonitor(runner, func(stats marbles.RunStats) {
//		log.Printf("%s: %d marbles in %s", stats.Expression, stats.Marbles, stats.Duration)
//	})
//	out, err := monitor.Run(inputs)
func NewMonitor(runner Runner, onStats func(RunStats)) *Monitor {
	return &Monitor{
		runner:  runner,
		clock:   RealClock,
		onStats: onStats,
	}
}

// WithClock sets the clock used to time runs.
func (m *Monitor) WithClock(clock Clock) *Monitor {
	m.clock = clock
	return m
}

func (m *Monitor) Run(inputs []Stream) (Stream, error) {
	start := m.clock.Now()
	out, err := m.runner.Run(inputs)

	stats := RunStats{
		At:         start,
		Expression: m.runner.Expression(),
		Inputs:     len(inputs),
		Duration:   m.clock.Now().Sub(start),
	}
	m.runs.Add(1)
	if err != nil {
		m.skips.Add(1)
		stats.Err = err
		stats.Skipped = IsValidation(err)
	} else {
		stats.Marbles = len(out.Marbles())
		stats.Terminal = out.Terminal()
	}

	if m.onStats != nil {
		m.onStats(stats)
	}
	return out, err
}

// Runs returns how many times the operator was run.
func (m *Monitor) Runs() int64 {
	return m.runs.Load()
}

// Skips returns how many runs were rejected.
func (m *Monitor) Skips() int64 {
	return m.skips.Load()
}

func (m *Monitor) Expression() string {
	return m.runner.Expression()
}

func (m *Monitor) DocURL() string {
	return m.runner.DocURL()
}

package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
	"github.com/sarchlab/cpusched/tracing"
)

// Config describes one run.
type Config struct {
	RunID     string
	Algorithm Algorithm
	Quantum   sim.VTime

	// Clock is the clock to advance. A new clock is used if nil.
	Clock *sim.Clock

	// Hooks are attached to the scheduler.
	Hooks []sim.Hook

	// Tracers collect the execution segments of the run.
	Tracers []tracing.Tracer
}

// Validate checks that a run of the given processes can start. Run performs
// the same checks, so callers only need Validate before acquiring resources
// that a failed run must not leave behind.
func (c Config) Validate(input []*process.Process) error {
	_, err := MakeBuilder().
		WithAlgorithm(c.Algorithm).
		WithQuantum(c.Quantum).
		Build()
	if err != nil {
		return err
	}

	return validate(input)
}

// Run schedules copies of the input processes and aggregates the outcome. The
// input is left untouched.
func Run(cfg Config, input []*process.Process) (*Result, error) {
	clock := cfg.Clock
	if clock == nil {
		clock = sim.NewClock()
	}

	builder := MakeBuilder().
		WithAlgorithm(cfg.Algorithm).
		WithQuantum(cfg.Quantum).
		WithClock(clock)
	for _, h := range cfg.Hooks {
		builder = builder.WithHook(h)
	}

	s, err := builder.Build()
	if err != nil {
		return nil, err
	}

	busy := tracing.NewBusyTimeTracer(clock, nil)
	tracing.CollectTrace(s, busy)

	for _, t := range cfg.Tracers {
		tracing.CollectTrace(s, t)
	}

	procs := process.Clone(input)

	completed, err := s.Schedule(procs)
	if err != nil {
		return nil, err
	}

	busy.TerminateAllTasks(clock.CurrentTime())

	r := Aggregate(cfg.Algorithm, cfg.Quantum, procs, completed, busy.BusyTime())
	r.RunID = cfg.RunID

	return r, nil
}

// RunFCFS schedules the processes in place with FCFS.
func RunFCFS(procs []*process.Process) ([]process.Snapshot, error) {
	return NewFCFS(nil).Schedule(procs)
}

// RunSJF schedules the processes in place with non-preemptive SJF.
func RunSJF(procs []*process.Process) ([]process.Snapshot, error) {
	return NewSJF(nil).Schedule(procs)
}

// RunSRTF schedules the processes in place with SRTF.
func RunSRTF(procs []*process.Process) ([]process.Snapshot, error) {
	return NewSRTF(nil).Schedule(procs)
}

// RunRR schedules the processes in place with Round-Robin.
func RunRR(
	procs []*process.Process,
	quantum sim.VTime,
) ([]process.Snapshot, error) {
	s, err := MakeBuilder().WithAlgorithm(RR).WithQuantum(quantum).Build()
	if err != nil {
		return nil, err
	}

	return s.Schedule(procs)
}

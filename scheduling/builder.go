package scheduling

import (
	"fmt"

	"github.com/sarchlab/cpusched/sim"
)

// Builder can build schedulers.
type Builder struct {
	algorithm Algorithm
	quantum   sim.VTime
	clock     *sim.Clock
	hooks     []sim.Hook
}

// MakeBuilder creates a builder with default parameters. The default
// algorithm is FCFS.
func MakeBuilder() Builder {
	return Builder{
		algorithm: FCFS,
	}
}

// WithAlgorithm sets the algorithm of the scheduler to build.
func (b Builder) WithAlgorithm(a Algorithm) Builder {
	b.algorithm = a
	return b
}

// WithQuantum sets the Round-Robin time slice. Other algorithms ignore it.
func (b Builder) WithQuantum(q sim.VTime) Builder {
	b.quantum = q
	return b
}

// WithClock sets the clock the scheduler advances. Tracers that need to tell
// time should be created on the same clock.
func (b Builder) WithClock(c *sim.Clock) Builder {
	b.clock = c
	return b
}

// WithHook registers a hook on the scheduler to build.
func (b Builder) WithHook(h sim.Hook) Builder {
	b.hooks = append(append([]sim.Hook(nil), b.hooks...), h)
	return b
}

// Build creates the scheduler. It fails before any scheduling step if the
// algorithm or the quantum is invalid.
func (b Builder) Build() (Scheduler, error) {
	clock := b.clock
	if clock == nil {
		clock = sim.NewClock()
	}

	var s Scheduler

	switch b.algorithm {
	case FCFS:
		s = NewFCFS(clock)
	case SJF:
		s = NewSJF(clock)
	case SRTF:
		s = NewSRTF(clock)
	case RR:
		if b.quantum <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, b.quantum)
		}
		s = NewRoundRobin(clock, b.quantum)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(b.algorithm))
	}

	for _, h := range b.hooks {
		s.AcceptHook(h)
	}

	return s, nil
}

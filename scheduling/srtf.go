package scheduling

import (
	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
)

// SRTFScheduler is the preemptive Shortest-Remaining-Time-First scheduler.
// The running process is checked after every tick and is preempted by a
// process that becomes ready at exactly that tick with strictly less
// remaining time.
type SRTFScheduler struct {
	schedulerBase
}

// NewSRTF creates an SRTF scheduler.
func NewSRTF(clock *sim.Clock) *SRTFScheduler {
	return &SRTFScheduler{
		schedulerBase: newSchedulerBase("SRTF", clock),
	}
}

// Schedule runs all the processes.
func (s *SRTFScheduler) Schedule(
	procs []*process.Process,
) ([]process.Snapshot, error) {
	if err := s.start(procs); err != nil {
		return nil, err
	}

	for !s.done(procs) {
		i, ok := selectNext(procs, s.clock.CurrentTime(), ShortestRemaining{})
		if !ok {
			s.clock.AdvanceIdle()
			continue
		}

		p := procs[i]
		taskID := s.dispatch(p)

		for !p.Finished() {
			s.run(p, 1)

			if by := s.preemptor(procs, p); by != nil {
				s.preempt(p, by)
				break
			}
		}

		s.yield(p, taskID)
	}

	return s.completed, nil
}

// preemptor returns the first process that becomes ready at the current tick
// and needs strictly less time than the running one.
func (s *SRTFScheduler) preemptor(
	procs []*process.Process,
	running *process.Process,
) *process.Process {
	if running.Finished() {
		return nil
	}

	now := s.clock.CurrentTime()

	for _, p := range procs {
		if p == running || p.Finished() {
			continue
		}

		if p.ReadyAt == now && p.Remaining < running.Remaining {
			return p
		}
	}

	return nil
}

// Package scheduling implements the FCFS, SJF, SRTF and Round-Robin CPU
// schedulers over a simulated clock.
package scheduling

import (
	"fmt"

	"github.com/sarchlab/cpusched/process"
	"github.com/sarchlab/cpusched/sim"
	"github.com/sarchlab/cpusched/tracing"
)

// A Scheduler runs a set of processes on a single simulated CPU until all of
// them complete.
type Scheduler interface {
	sim.Named
	sim.Hookable

	// InvokeHook triggers the hooks registered on the scheduler.
	InvokeHook(ctx sim.HookCtx)

	// Clock returns the clock the scheduler advances.
	Clock() *sim.Clock

	// Schedule runs the processes in place and returns their snapshots in
	// completion order. A scheduler can only run once.
	Schedule(procs []*process.Process) ([]process.Snapshot, error)
}

// Hook positions reported by all schedulers. The hook item is an Event.
var (
	HookPosDispatch = &sim.HookPos{Name: "Dispatch"}
	HookPosPreempt  = &sim.HookPos{Name: "Preempt"}
	HookPosComplete = &sim.HookPos{Name: "Complete"}
)

// An Event describes a scheduling decision.
type Event struct {
	Time      sim.VTime
	ProcessID int

	// By is the ID of the process that caused a preemption.
	By int
}

type schedulerBase struct {
	sim.HookableBase

	name      string
	clock     *sim.Clock
	used      bool
	completed []process.Snapshot
}

func newSchedulerBase(name string, clock *sim.Clock) schedulerBase {
	if clock == nil {
		clock = sim.NewClock()
	}

	return schedulerBase{
		name:  name,
		clock: clock,
	}
}

func (s *schedulerBase) Name() string {
	return s.name
}

func (s *schedulerBase) Clock() *sim.Clock {
	return s.clock
}

func (s *schedulerBase) start(procs []*process.Process) error {
	if s.used {
		return fmt.Errorf("%w: %s", ErrSchedulerUsed, s.name)
	}

	s.used = true

	if err := validate(procs); err != nil {
		return err
	}

	s.completed = make([]process.Snapshot, 0, len(procs))

	return nil
}

func validate(procs []*process.Process) error {
	seen := make(map[int]bool, len(procs))

	for _, p := range procs {
		if err := p.Validate(); err != nil {
			return err
		}

		if seen[p.ID] {
			return fmt.Errorf("%w: P%d", ErrDuplicateID, p.ID)
		}

		seen[p.ID] = true
	}

	return nil
}

func (s *schedulerBase) done(procs []*process.Process) bool {
	return len(s.completed) == len(procs)
}

// dispatch puts the process on the CPU at the current time and returns the ID
// of the trace task that covers the segment.
func (s *schedulerBase) dispatch(p *process.Process) string {
	now := s.clock.CurrentTime()
	p.Dispatch(now)

	return s.startSegment(p, now)
}

func (s *schedulerBase) startSegment(p *process.Process, start sim.VTime) string {
	taskID := sim.GetIDGenerator().Generate()
	tracing.StartTask(taskID, s, "cpu", fmt.Sprintf("P%d", p.ID), p.ID)

	s.InvokeHook(sim.HookCtx{
		Domain: s,
		Pos:    HookPosDispatch,
		Item:   Event{Time: start, ProcessID: p.ID},
	})

	return taskID
}

// run executes the dispatched process for at most duration ticks and moves
// the clock accordingly.
func (s *schedulerBase) run(p *process.Process, duration sim.VTime) {
	used := p.Execute(duration)
	if used > 0 {
		s.clock.AdvanceBy(used)
	}
}

// runSegment gives the process the CPU for at most duration ticks without
// interruption.
func (s *schedulerBase) runSegment(p *process.Process, duration sim.VTime) {
	now := s.clock.CurrentTime()
	end := p.Run(now, duration)

	taskID := s.startSegment(p, now)
	if end > now {
		s.clock.AdvanceBy(end - now)
	}

	s.finishSegment(p, taskID)
}

// yield takes the process off the CPU.
func (s *schedulerBase) yield(p *process.Process, taskID string) {
	p.Yield()
	s.finishSegment(p, taskID)
}

// finishSegment closes the trace task. A process that has no remaining time
// is appended to the completed list, which happens exactly once since a
// finished process is never eligible again.
func (s *schedulerBase) finishSegment(p *process.Process, taskID string) {
	tracing.EndTask(taskID, s)

	if !p.Finished() {
		return
	}

	s.completed = append(s.completed, p.Snapshot())

	s.InvokeHook(sim.HookCtx{
		Domain: s,
		Pos:    HookPosComplete,
		Item:   Event{Time: s.clock.CurrentTime(), ProcessID: p.ID},
	})
}

func (s *schedulerBase) preempt(p, by *process.Process) {
	s.InvokeHook(sim.HookCtx{
		Domain: s,
		Pos:    HookPosPreempt,
		Item: Event{
			Time:      s.clock.CurrentTime(),
			ProcessID: p.ID,
			By:        by.ID,
		},
	})
}

package tracing

import (
	"sort"

	"github.com/sarchlab/cpusched/sim"
)

type taskTimeStartEnd struct {
	start, end sim.VTime
}

// BusyTimeTracer traces the time that a domain is processing a kind of task.
// If the task processing time overlaps, this tracer only consider one instance
// of the overlapped time.
type BusyTimeTracer struct {
	timeTeller    sim.TimeTeller
	filter        TaskFilter
	inflightTasks map[string]sim.VTime
	finished      []taskTimeStartEnd
}

// NewBusyTimeTracer creates a new BusyTimeTracer
func NewBusyTimeTracer(
	timeTeller sim.TimeTeller,
	filter TaskFilter,
) *BusyTimeTracer {
	return &BusyTimeTracer{
		timeTeller:    timeTeller,
		filter:        filter,
		inflightTasks: make(map[string]sim.VTime),
	}
}

// StartTask records the task start time
func (t *BusyTimeTracer) StartTask(task Task) {
	if t.filter != nil && !t.filter(task) {
		return
	}

	t.inflightTasks[task.ID] = t.timeTeller.CurrentTime()
}

// EndTask records the end of the task
func (t *BusyTimeTracer) EndTask(task Task) {
	start, ok := t.inflightTasks[task.ID]
	if !ok {
		return
	}

	delete(t.inflightTasks, task.ID)

	t.finished = append(t.finished, taskTimeStartEnd{
		start: start,
		end:   t.timeTeller.CurrentTime(),
	})
}

// TerminateAllTasks will mark all the in-flight tasks as completed at the
// given time.
func (t *BusyTimeTracer) TerminateAllTasks(now sim.VTime) {
	for id, start := range t.inflightTasks {
		t.finished = append(t.finished, taskTimeStartEnd{start: start, end: now})
		delete(t.inflightTasks, id)
	}
}

// BusyTime returns the total time has been spent on a certain type of tasks.
func (t *BusyTimeTracer) BusyTime() sim.VTime {
	times := make([]taskTimeStartEnd, len(t.finished))
	copy(times, t.finished)

	sort.Slice(times, func(i, j int) bool {
		return times[i].start < times[j].start
	})

	var busy sim.VTime
	var covered *taskTimeStartEnd

	for i := range times {
		curr := times[i]

		if covered != nil && curr.start <= covered.end {
			if curr.end > covered.end {
				covered.end = curr.end
			}
			continue
		}

		if covered != nil {
			busy += covered.end - covered.start
		}

		covered = &curr
	}

	if covered != nil {
		busy += covered.end - covered.start
	}

	return busy
}

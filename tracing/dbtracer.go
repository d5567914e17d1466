package tracing

import (
	"sync"

	"github.com/sarchlab/cpusched/datarecording"
	"github.com/sarchlab/cpusched/sim"
	"github.com/tebeka/atexit"
)

type taskTableEntry struct {
	ID        string
	RunID     string
	Kind      string
	What      string
	Location  string
	StartTime sim.VTime
	EndTime   sim.VTime
}

// DBTracer is a tracer that can store tasks into a database. Each finished
// task becomes one row of the "trace" table, tagged with the run it belongs
// to.
type DBTracer struct {
	mu         sync.Mutex
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder
	runID      string

	tracingTasks map[string]Task
}

// NewDBTracer creates a new DBTracer.
func NewDBTracer(
	timeTeller sim.TimeTeller,
	dataRecorder datarecording.DataRecorder,
	runID string,
) *DBTracer {
	dataRecorder.CreateTable("trace", taskTableEntry{})

	t := &DBTracer{
		timeTeller:   timeTeller,
		backend:      dataRecorder,
		runID:        runID,
		tracingTasks: make(map[string]Task),
	}

	atexit.Register(func() {
		t.Terminate()
	})

	return t
}

// StartTask marks the start of a task.
func (t *DBTracer) StartTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	startingTaskMustBeValid(task)

	task.StartTime = t.timeTeller.CurrentTime()
	t.tracingTasks[task.ID] = task
}

func startingTaskMustBeValid(task Task) {
	if task.ID == "" {
		panic("task ID must be set")
	}

	if task.Kind == "" {
		panic("task kind must be set")
	}

	if task.What == "" {
		panic("task what must be set")
	}

	if task.Where == "" {
		panic("task location must be set")
	}
}

// EndTask marks the end of a task.
func (t *DBTracer) EndTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	originalTask, ok := t.tracingTasks[task.ID]
	if !ok {
		return
	}

	delete(t.tracingTasks, task.ID)

	originalTask.EndTime = t.timeTeller.CurrentTime()
	t.backend.InsertData("trace", t.toEntry(originalTask))
}

func (t *DBTracer) toEntry(task Task) taskTableEntry {
	return taskTableEntry{
		ID:        task.ID,
		RunID:     t.runID,
		Kind:      task.Kind,
		What:      task.What,
		Location:  task.Where,
		StartTime: task.StartTime,
		EndTime:   task.EndTime,
	}
}

// Terminate writes the tasks that never ended, closing them at the current
// time, and flushes the backend.
func (t *DBTracer) Terminate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.timeTeller.CurrentTime()
	for id, task := range t.tracingTasks {
		task.EndTime = now
		t.backend.InsertData("trace", t.toEntry(task))
		delete(t.tracingTasks, id)
	}

	t.backend.Flush()
}

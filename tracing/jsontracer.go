package tracing

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/sarchlab/cpusched/sim"
)

// JSONTracer writes every finished task as an element of a JSON array.
type JSONTracer struct {
	w             io.Writer
	timeTeller    sim.TimeTeller
	lock          sync.Mutex
	firstTask     bool
	inflightTasks map[string]Task
}

// NewJSONTracer creates a JSONTracer that writes to w. Call Finish to close
// the array.
func NewJSONTracer(timeTeller sim.TimeTeller, w io.Writer) *JSONTracer {
	return &JSONTracer{
		w:             w,
		timeTeller:    timeTeller,
		firstTask:     true,
		inflightTasks: make(map[string]Task),
	}
}

// StartTask records the start of a task
func (t *JSONTracer) StartTask(task Task) {
	t.lock.Lock()
	defer t.lock.Unlock()

	task.StartTime = t.timeTeller.CurrentTime()
	t.inflightTasks[task.ID] = task
}

// EndTask writes the task.
func (t *JSONTracer) EndTask(task Task) {
	t.lock.Lock()
	defer t.lock.Unlock()

	originalTask, ok := t.inflightTasks[task.ID]
	if !ok {
		return
	}

	delete(t.inflightTasks, task.ID)
	originalTask.EndTime = t.timeTeller.CurrentTime()

	sep := ",\n"
	if t.firstTask {
		sep = "[\n"
		t.firstTask = false
	}

	b, err := json.Marshal(originalTask)
	if err != nil {
		panic(err)
	}

	_, err = t.w.Write(append([]byte(sep), b...))
	if err != nil {
		panic(err)
	}
}

// Finish closes the JSON array. Tasks that have not ended are dropped.
func (t *JSONTracer) Finish() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	closing := "\n]\n"
	if t.firstTask {
		closing = "[]\n"
	}

	_, err := io.WriteString(t.w, closing)

	return err
}

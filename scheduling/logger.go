package scheduling

import (
	"log"

	"github.com/sarchlab/cpusched/sim"
)

// Logger is a hook that prints scheduling decisions.
type Logger struct {
	sim.LogHookBase
}

// NewLogger creates a Logger that writes to the given logger.
func NewLogger(logger *log.Logger) *Logger {
	h := new(Logger)
	h.Logger = logger

	return h
}

// Func prints dispatches, preemptions and completions.
func (h *Logger) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosDispatch:
		h.Printf("%d: dispatch P%d", evt.Time, evt.ProcessID)
	case HookPosPreempt:
		h.Printf("%d: P%d preempted by P%d", evt.Time, evt.ProcessID, evt.By)
	case HookPosComplete:
		h.Printf("%d: P%d completed", evt.Time, evt.ProcessID)
	}
}

package sim

import (
	"log"
)

// A LogHook is a hook that is resonsible for recording information from the
// simulation
type LogHook interface {
	Hook
}

// LogHookBase proovides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// ClockLogger prints every idle tick of a clock.
type ClockLogger struct {
	LogHookBase
}

// NewClockLogger creates a ClockLogger that writes to the given logger.
func NewClockLogger(logger *log.Logger) *ClockLogger {
	h := new(ClockLogger)
	h.Logger = logger

	return h
}

// Func writes the idle tick into the log.
func (h *ClockLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosIdleTick {
		return
	}

	h.Printf("%d: cpu idle", ctx.Item.(VTime))
}

package sim

import "log"

// A Clock is the discrete time counter of one simulation run. It only moves
// forward, either one idle tick at a time or by a positive duration while a
// process runs.
type Clock struct {
	HookableBase

	now VTime
}

// NewClock creates a Clock that starts at time 0.
func NewClock() *Clock {
	return &Clock{}
}

// Name returns the name of the clock.
func (c *Clock) Name() string {
	return "Clock"
}

// CurrentTime returns the current simulated time.
func (c *Clock) CurrentTime() VTime {
	return c.now
}

// AdvanceIdle moves the clock one tick forward. It models a tick in which the
// CPU has nothing eligible to run.
func (c *Clock) AdvanceIdle() {
	c.now++

	c.InvokeHook(HookCtx{
		Domain: c,
		Pos:    HookPosIdleTick,
		Item:   c.now,
	})
}

// AdvanceBy moves the clock forward by the given duration.
func (c *Clock) AdvanceBy(duration VTime) {
	if duration <= 0 {
		log.Panicf("cannot advance the clock by %d", duration)
	}

	c.now += duration

	c.InvokeHook(HookCtx{
		Domain: c,
		Pos:    HookPosClockAdvance,
		Item:   c.now,
		Detail: duration,
	})
}

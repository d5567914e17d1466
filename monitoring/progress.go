package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
)

// A ProgressBar tracks how many processes of a run have completed.
type ProgressBar struct {
	sync.Mutex
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
}

// IncrementInProgress adds the number of in-progress element.
func (b *ProgressBar) IncrementInProgress(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress += amount
}

// IncrementFinished add a certain amount to finished element.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// MoveInProgressToFinished reduces the number of in progress item by a certain
// amount and increase the finished item by the same amount.
func (b *ProgressBar) MoveInProgressToFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress -= amount
	b.Finished += amount
}

// ProgressHook is a scheduler hook that moves a progress bar. A process is in
// progress from its first dispatch until it completes.
type ProgressHook struct {
	bar     *ProgressBar
	started map[int]bool
}

// NewProgressHook creates a hook that updates the given bar.
func NewProgressHook(bar *ProgressBar) *ProgressHook {
	return &ProgressHook{
		bar:     bar,
		started: make(map[int]bool),
	}
}

// Func updates the bar on dispatches and completions.
func (h *ProgressHook) Func(ctx sim.HookCtx) {
	evt, ok := ctx.Item.(scheduling.Event)
	if !ok {
		return
	}

	switch ctx.Pos {
	case scheduling.HookPosDispatch:
		if !h.started[evt.ProcessID] {
			h.started[evt.ProcessID] = true
			h.bar.IncrementInProgress(1)
		}
	case scheduling.HookPosComplete:
		h.bar.MoveInProgressToFinished(1)
	}
}

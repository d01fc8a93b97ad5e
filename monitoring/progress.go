package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/massstorage/sim"
)

// A ProgressBar is a tracker of the progress
type ProgressBar struct {
	sync.Mutex
	ID         string
	Name       string
	StartTime  time.Time
	Total      uint64
	Finished   uint64
	InProgress uint64
}

// ProgressBarStatus is a snapshot of a ProgressBar.
type ProgressBarStatus struct {
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

	if amount > b.InProgress {
		amount = b.InProgress
	}

	b.InProgress -= amount
	b.Finished += amount
}

// Status returns a copy of the current progress.
func (b *ProgressBar) Status() ProgressBarStatus {
	b.Lock()
	defer b.Unlock()

	return ProgressBarStatus{
		ID:         b.ID,
		Name:       b.Name,
		StartTime:  b.StartTime,
		Total:      b.Total,
		Finished:   b.Finished,
		InProgress: b.InProgress,
	}
}

// A ProgressHook moves the tracked ProgressBar forward by one after every
// game tick.
type ProgressHook struct {
	lock sync.Mutex
	bar  *ProgressBar
}

// NewProgressHook creates a ProgressHook that tracks nothing.
func NewProgressHook() *ProgressHook {
	return &ProgressHook{}
}

// Track sets the bar to move. A nil bar stops the tracking.
func (h *ProgressHook) Track(bar *ProgressBar) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.bar = bar
}

// Func advances the tracked bar.
func (h *ProgressHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterTick {
		return
	}

	h.lock.Lock()
	bar := h.bar
	h.lock.Unlock()

	if bar != nil {
		bar.IncrementFinished(1)
	}
}

package task

import (
	"sync"
	"time"
)

// DelayedTask executes a task once after a specific delay asynchronously.
// It acts as a cancellable handle: a call to Cancel before the delay has passed prevents the execution.
type DelayedTask struct {
	task  func()
	delay time.Duration

	mtx     sync.Mutex
	pending bool
	stop    chan struct{}
}

// NewDelayed creates a new delayed asynchronous task
func NewDelayed(task func(), delay time.Duration) *DelayedTask {
	return &DelayedTask{
		task:  task,
		delay: delay,
	}
}

// Start schedules the task.
// If the task is already pending, this is a no-op.
func (task *DelayedTask) Start() {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	if task.pending {
		return
	}
	task.pending = true
	stop := make(chan struct{})
	task.stop = stop

	go func() {
		timer := time.NewTimer(task.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
			if task.consume(stop) {
				task.task()
			}
		case <-stop:
			return
		}
	}()
}

// Cancel cancels the task if it is still pending and reports whether it did so.
// If the task already fired or was never started, this is a no-op.
func (task *DelayedTask) Cancel() bool {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	if !task.pending {
		return false
	}
	close(task.stop)
	task.pending = false
	return true
}

// Pending returns whether the task is scheduled but has neither fired nor been cancelled
func (task *DelayedTask) Pending() bool {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	return task.pending
}

// consume marks the run belonging to stop as fired.
// It returns false if the run was cancelled (or replaced) in the meantime.
func (task *DelayedTask) consume(stop chan struct{}) bool {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	if !task.pending || task.stop != stop {
		return false
	}
	task.pending = false
	return true
}

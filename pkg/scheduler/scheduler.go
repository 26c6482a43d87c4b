// Package scheduler abstracts delayed and periodic callbacks so that
// time-driven state machines can run on the wall clock in production
// and on a manually advanced clock in tests.
package scheduler

import (
	"sync"
	"time"
)

// Timer is a handle to scheduled work.
// Stop reports whether the call stopped the work (false if it already ran or was stopped).
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// Every runs fn every d until stopped.
	Every(d time.Duration, fn func()) Timer
}

type wallClock struct{}

// New returns a Scheduler backed by the runtime timers.
// Callbacks run on their own goroutines.
func New() Scheduler {
	return wallClock{}
}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func (wallClock) Every(d time.Duration, fn func()) Timer {
	t := &ticker{stop: make(chan struct{})}
	tk := time.NewTicker(d)

	go func() {
		defer tk.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-tk.C:
				fn()
			}
		}
	}()

	return t
}

type ticker struct {
	once sync.Once
	stop chan struct{}
}

func (t *ticker) Stop() bool {
	stopped := false
	t.once.Do(func() {
		close(t.stop)
		stopped = true
	})
	return stopped
}

package scheduler

import (
	"testing"
	"time"
)

func TestManual_AfterFuncRunsOnceWhenDue(t *testing.T) {
	m := NewManual()
	calls := 0
	m.AfterFunc(2500*time.Millisecond, func() { calls++ })

	m.Advance(2 * time.Second)
	if calls != 0 {
		t.Fatalf("callback ran early: %d calls", calls)
	}

	m.Advance(500 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	m.Advance(10 * time.Second)
	if calls != 1 {
		t.Fatalf("one-shot callback ran again: %d calls", calls)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending tasks, got %d", m.Pending())
	}
}

func TestManual_EveryRunsPerPeriodUntilStopped(t *testing.T) {
	m := NewManual()
	calls := 0
	timer := m.Every(time.Second, func() { calls++ })

	m.Advance(3 * time.Second)
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}

	if !timer.Stop() {
		t.Fatalf("expected Stop to report true on first call")
	}
	if timer.Stop() {
		t.Fatalf("expected Stop to report false on second call")
	}

	m.Advance(5 * time.Second)
	if calls != 3 {
		t.Fatalf("stopped ticker kept running: %d calls", calls)
	}
}

func TestManual_StopBeforeDue(t *testing.T) {
	m := NewManual()
	ran := false
	timer := m.AfterFunc(time.Second, func() { ran = true })

	if !timer.Stop() {
		t.Fatalf("expected Stop to succeed")
	}
	m.Advance(2 * time.Second)
	if ran {
		t.Fatalf("stopped callback ran")
	}
}

func TestManual_CallbackCanScheduleAndStop(t *testing.T) {
	m := NewManual()
	var order []string

	var tick Timer
	m.AfterFunc(time.Second, func() {
		order = append(order, "first")
		tick = m.Every(time.Second, func() {
			order = append(order, "tick")
			if len(order) == 3 {
				tick.Stop()
			}
		})
	})

	m.Advance(10 * time.Second)

	want := []string{"first", "tick", "tick"}
	if len(order) != len(want) {
		t.Fatalf("unexpected order: %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("unexpected order: %v", order)
		}
	}
	if m.Now() != 10*time.Second {
		t.Fatalf("unexpected clock: %v", m.Now())
	}
}

func TestManual_TiesRunInSchedulingOrder(t *testing.T) {
	m := NewManual()
	var order []int
	m.AfterFunc(time.Second, func() { order = append(order, 1) })
	m.AfterFunc(time.Second, func() { order = append(order, 2) })

	m.Advance(time.Second)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("unexpected order: %v", order)
	}
}

package threading

import (
	"sync/atomic"
	"testing"
)

func TestRunSafe(t *testing.T) {
	ran := false

	RunSafe(func() {
		ran = true
	})

	if !ran {
		t.Error("RunSafe did not run the function")
	}
}

func TestRunSafeRecovers(t *testing.T) {
	RunSafe(func() {
		panic("boom")
	})
}

func TestRoutineGroup(t *testing.T) {
	var count int32
	group := NewRoutineGroup()

	for i := 0; i < 10; i++ {
		group.RunSafe(func() {
			atomic.AddInt32(&count, 1)
		})
	}
	group.RunSafe(func() {
		panic("boom")
	})
	group.Wait()

	if atomic.LoadInt32(&count) != 10 {
		t.Errorf("expected 10 routines to run, got %d", count)
	}
}

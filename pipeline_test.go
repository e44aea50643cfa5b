package particlesim

import (
	"sync/atomic"
	"testing"
)

func TestTask_VisitsEveryItemOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 32} {
		data := make([]*int32, 10)
		for i := range data {
			data[i] = new(int32)
		}

		task(workers, data, func(item *int32) {
			atomic.AddInt32(item, 1)
		})

		for i, item := range data {
			if *item != 1 {
				t.Errorf("workers=%d: item %d visited %d times, want 1", workers, i, *item)
			}
		}
	}
}

func TestTask_Empty(t *testing.T) {
	called := false
	task(4, []int{}, func(int) { called = true })

	if called {
		t.Error("fn called on empty data")
	}
}

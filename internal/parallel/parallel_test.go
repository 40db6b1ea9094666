package parallel

import "testing"

func TestForCoversEveryIndexOnce(t *testing.T) {
	const n = 1037 // deliberately not a multiple of the worker count

	visits := make([]int, n)
	For(n, func(start, end int) {
		for i := start; i < end; i++ {
			visits[i]++
		}
	})

	for i, count := range visits {
		if count != 1 {
			t.Fatalf("index %d visited %d times", i, count)
		}
	}
}

func TestForEmptyRange(t *testing.T) {
	for _, n := range []int{0, -3} {
		called := false
		For(n, func(start, end int) { called = true })
		if called {
			t.Errorf("For(%d) invoked its body", n)
		}
	}
}

func TestForSingleIndex(t *testing.T) {
	total := 0
	For(1, func(start, end int) {
		for i := start; i < end; i++ {
			total++
		}
	})
	if total != 1 {
		t.Errorf("single-index range visited %d times", total)
	}
}

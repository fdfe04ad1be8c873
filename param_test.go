package intone

import (
	"sync"
	"testing"
)

func TestVolCellClampsWrites(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{0.25, 0.25},
		{0, 0},
		{1, 1},
		{1.5, 1},
		{-0.2, 0},
		{100, 1},
	}
	c := NewVolCell(0)
	for _, tc := range cases {
		c.Set(tc.in)
		if got := c.Get(); got != tc.want {
			t.Errorf("Set(%v): Get() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestVolCellClampsInitialValue(t *testing.T) {
	if got := NewVolCell(3).Get(); got != 1 {
		t.Fatalf("NewVolCell(3).Get() = %v, want 1", got)
	}
}

func TestFreqCellDoesNotClamp(t *testing.T) {
	c := NewFreqCell(440)
	if got := c.Get(); got != 440 {
		t.Fatalf("Get() = %v, want 440", got)
	}
	c.Set(19000)
	if got := c.Get(); got != 19000 {
		t.Fatalf("Get() = %v, want 19000", got)
	}
}

// TestCellsConcurrentAccess has no assertions; the race detector is the
// oracle. Run with -race.
func TestCellsConcurrentAccess(t *testing.T) {
	freq := NewFreqCell(440)
	vol := NewVolCell(1)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			freq.Set(float32(220 + i%1000))
			vol.Set(float32(i%100) / 100)
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			_ = freq.Get()
			_ = vol.Get()
		}
	}()

	for i := 0; i < 100000; i++ {
		_ = freq.Get()
	}
	close(stop)
	wg.Wait()
}

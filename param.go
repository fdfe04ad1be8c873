package intone

import "sync"

// FreqCell holds a voice's frequency in Hz, shared between exactly one
// oscillator and any number of control-side handles. Every cell carries its
// own lock, so retuning one voice never contends with another voice or with
// the engine's registry lock. The audio thread reads the cell once per
// sample; the critical section is a single load.
type FreqCell struct {
	mu sync.Mutex
	hz float32
}

// NewFreqCell creates a cell at the given frequency. Frequencies are not
// clamped.
func NewFreqCell(hz float32) *FreqCell {
	return &FreqCell{hz: hz}
}

// Get returns the current frequency.
func (c *FreqCell) Get() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hz
}

// Set stores a new frequency.
func (c *FreqCell) Set(hz float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hz = hz
}

// VolCell holds a voice's linear volume multiplier, clamped to [0,1] on
// every write. Sharing and locking work exactly as for FreqCell.
type VolCell struct {
	mu  sync.Mutex
	val float32
}

// NewVolCell creates a cell at the given multiplier, clamped to [0,1].
func NewVolCell(v float32) *VolCell {
	c := &VolCell{}
	c.Set(v)
	return c
}

// Get returns the current multiplier.
func (c *VolCell) Get() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

// Set stores a new multiplier, clamped to [0,1].
func (c *VolCell) Set(v float32) {
	v = min(max(v, 0), 1)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = v
}

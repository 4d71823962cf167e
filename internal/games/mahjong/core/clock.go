package core

import "fmt"

// Clock counts elapsed whole seconds while running.
// It does not read wall time; the owner calls Tick once per second.
type Clock struct {
	running bool
	elapsed int
}

// Start begins counting. Starting a running clock has no effect.
func (c *Clock) Start() {
	c.running = true
}

// Stop pauses counting and keeps the elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

// Reset stops the clock and zeroes it.
func (c *Clock) Reset() {
	c.running = false
	c.elapsed = 0
}

// Tick adds one second if the clock is running.
func (c *Clock) Tick() {
	if c.running {
		c.elapsed++
	}
}

// Running reports whether the clock is counting.
func (c *Clock) Running() bool {
	return c.running
}

// Elapsed returns the counted seconds.
func (c *Clock) Elapsed() int {
	return c.elapsed
}

// FormatTime renders seconds as mm:ss.
func FormatTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

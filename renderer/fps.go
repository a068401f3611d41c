package renderer

const fpsInterval = 0.25

// FPSCounter averages the frame rate over quarter-second intervals.
type FPSCounter struct {
	previous float64
	frames   int
}

func NewFPSCounter(now float64) *FPSCounter {
	return &FPSCounter{previous: now}
}

// Tick counts one frame at time now (seconds). It reports a new average once
// more than fpsInterval has passed since the last report.
func (c *FPSCounter) Tick(now float64) (float64, bool) {
	var fps float64
	ok := false
	elapsed := now - c.previous
	if elapsed > fpsInterval {
		fps = float64(c.frames) / elapsed
		c.previous = now
		c.frames = 0
		ok = true
	}
	c.frames++
	return fps, ok
}

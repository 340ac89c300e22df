package game

// Interval is a periodic process driven by the simulation tick.
// It fires once every `every` calls to Step while running. A stopped
// Interval never fires until it is started again.
type Interval struct {
	every   int
	left    int
	running bool
}

// NewInterval creates a stopped interval firing every n ticks (minimum 1).
func NewInterval(n int) Interval {
	n = max(n, 1)
	return Interval{every: n, left: n}
}

// Start (re)arms the interval; the first fire is a full period away.
func (iv *Interval) Start() {
	iv.left = iv.every
	iv.running = true
}

// Stop halts the interval.
func (iv *Interval) Stop() { iv.running = false }

// Running reports whether the interval is armed.
func (iv *Interval) Running() bool { return iv.running }

// Step advances one tick and reports whether the interval fired.
func (iv *Interval) Step() bool {
	if !iv.running {
		return false
	}
	iv.left--
	if iv.left > 0 {
		return false
	}
	iv.left = iv.every
	return true
}

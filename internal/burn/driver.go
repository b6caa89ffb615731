package burn

// Driver advances the clamped burn progress from per-tick deltas.
type Driver struct {
	progress float64
	rate     float64
	max      float64
}

// NewDriver returns a driver at progress 0.
func NewDriver(rate, max float64) *Driver {
	return &Driver{rate: rate, max: max}
}

// Advance adds dt*rate to the progress, clamped to the ceiling. Negative
// deltas are treated as zero.
func (d *Driver) Advance(dt float64) {
	if dt <= 0 || d.progress >= d.max {
		return
	}
	next := d.progress + dt*d.rate
	if next > d.max {
		next = d.max
	}
	d.progress = next
}

// Reset returns the progress to 0 unconditionally.
func (d *Driver) Reset() { d.progress = 0 }

// Progress reports the current progress.
func (d *Driver) Progress() float64 { return d.progress }

// Max reports the ceiling.
func (d *Driver) Max() float64 { return d.max }

// Done reports whether the ceiling has been reached.
func (d *Driver) Done() bool { return d.progress >= d.max }

// retune changes rate and ceiling. A ceiling below the current progress is
// ignored so progress never moves backwards.
func (d *Driver) retune(rate, max float64) {
	d.rate = rate
	if max >= d.progress {
		d.max = max
	}
}

package shaker

import "math"

// Sinusoidal head-bob source. The horizontal offset sways at the
// given frequency while the vertical offset dips at twice that rate,
// tracing the figure-eight pattern of a walk cycle (two footfalls per
// sway period).
//
// The zero value is ready to use. Horizontal motion is halved so the
// sway reads as subtle next to the vertical dip.
type Bob struct {
	phase float64
}

func (self *Bob) Offsets(deltaTime, frequency float64) (float64, float64) {
	self.phase += deltaTime * frequency * 2.0 * math.Pi
	if self.phase > 2.0*math.Pi {
		self.phase = math.Mod(self.phase, 2.0*math.Pi)
	}
	x := 0.5 * math.Sin(self.phase)
	y := math.Sin(self.phase * 2.0)
	return x, y
}

// Rewinds the walk cycle to its starting point.
func (self *Bob) Reset() {
	self.phase = 0.0
}

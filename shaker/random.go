package shaker

import "math/rand"

// Smoothed random jitter source, the default for impulse shakes.
// A new random offset pair is picked frequency times per second and
// the output interpolates linearly between consecutive picks, so
// higher frequencies read as harsher rattling.
//
// The zero value is ready to use with a fixed default seed; use
// [NewRandom]() to control determinism explicitly.
type Random struct {
	rng            *rand.Rand
	fromX, fromY   float64
	toX, toY       float64
	interpProgress float64
}

// Creates a [Random] source seeded for reproducible offset sequences.
func NewRandom(seed int64) *Random {
	random := &Random{rng: rand.New(rand.NewSource(seed))}
	random.rollNext()
	return random
}

func (self *Random) Offsets(deltaTime, frequency float64) (float64, float64) {
	if self.rng == nil {
		self.rng = rand.New(rand.NewSource(1))
		self.rollNext()
	}

	self.interpProgress += deltaTime * frequency
	for self.interpProgress >= 1.0 {
		self.interpProgress -= 1.0
		self.rollNext()
	}

	t := self.interpProgress
	x := self.fromX + (self.toX-self.fromX)*t
	y := self.fromY + (self.toY-self.fromY)*t
	return x, y
}

func (self *Random) rollNext() {
	self.fromX, self.fromY = self.toX, self.toY
	self.toX = self.rng.Float64()*2.0 - 1.0
	self.toY = self.rng.Float64()*2.0 - 1.0
}

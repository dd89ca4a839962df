package shaker

import (
	"math/bits"
	"math/rand"
)

const pinkRows = 5

// 1/f drift source based on the Voss-McCartney algorithm. Compared to
// [Random], low frequency components dominate, so the motion reads as
// slow wandering with occasional small corrections rather than
// rattling. A good fit for idle sway and environmental rumble.
//
// The zero value is ready to use with a fixed default seed; use
// [NewPink]() to control determinism explicitly.
type Pink struct {
	rng            *rand.Rand
	chanX, chanY   pinkChannel
	fromX, fromY   float64
	toX, toY       float64
	interpProgress float64
}

// Creates a [Pink] source seeded for reproducible offset sequences.
func NewPink(seed int64) *Pink {
	pink := &Pink{rng: rand.New(rand.NewSource(seed))}
	pink.rollNext()
	return pink
}

func (self *Pink) Offsets(deltaTime, frequency float64) (float64, float64) {
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

func (self *Pink) rollNext() {
	self.fromX, self.fromY = self.toX, self.toY
	self.toX = self.chanX.step(self.rng)
	self.toY = self.chanY.step(self.rng)
}

// One axis of pink noise. Each step rewrites a single row picked by
// the trailing zero count of an advancing counter, so row k changes
// every 2^k steps and contributes the matching octave.
type pinkChannel struct {
	rows    [pinkRows]float64
	counter uint32
}

func (self *pinkChannel) step(rng *rand.Rand) float64 {
	self.counter++
	if row := bits.TrailingZeros32(self.counter); row < pinkRows {
		self.rows[row] = rng.Float64()*2.0 - 1.0
	}

	sum := rng.Float64()*2.0 - 1.0 // white layer on top
	for _, value := range self.rows {
		sum += value
	}
	return sum / float64(pinkRows+1)
}

// This package defines a [Source] interface that the camrig camera
// uses to turn blended noise parameters into actual 2D offsets, and
// provides a few default implementations.
//
// All provided implementations respect a few properties:
//   - Amplitude normalized: offsets stay within [-1, 1] on both axes,
//     so scaling is entirely in the caller's hands. Multiply by the
//     blended amplitude and you are done.
//   - Tick-rate independent: motion advances by deltaTime*frequency,
//     so results are visually similar at 30, 60 or 144 updates per
//     second.
//
// These are nice properties for public implementations, but if you
// are writing your own source, most often they won't be relevant to
// you. You can ignore them and make your life easier if you are only
// getting started.
package shaker

// The interface for camrig offset sources.
//
// Offsets() is called once per tick with the elapsed time in seconds
// and the current oscillation frequency in cycles per second. It
// returns unitary offsets for the camera, which the caller scales by
// the blended amplitude before applying them.
//
// Sources are allowed to keep internal state (phase accumulators,
// random generators and so on); the camera never calls them from
// more than one goroutine.
type Source interface {
	Offsets(deltaTime, frequency float64) (float64, float64)
}

type source = Source

// A few stateless built-in sources.
var (
	// Offsets(...) always returns (0, 0).
	Still source = stillSource{}
)

type stillSource struct{}

func (stillSource) Offsets(deltaTime, frequency float64) (float64, float64) {
	return 0, 0
}

package blend

// Easing curves shape transition progress. Camera states reference a
// curve through their parameters, and the rig applies it to the
// normalized progress of each state transition before handing the
// result to the rendering side.
type Curve uint8

const (
	// Constant speed from start to end.
	Linear Curve = iota

	// Cubic hermite smoothing (3t^2 - 2t^3). Gentle on both ends.
	SmoothStep

	// Accelerating from zero velocity.
	EaseInQuad

	// Decelerating to zero velocity.
	EaseOutQuad

	// Slow start, fast middle, slow end. The default for
	// state transitions.
	EaseInOutCubic
)

// Applies the curve to a progress value. The input is clamped
// to [0, 1] first, so callers can feed raw elapsed/duration
// ratios directly.
func (self Curve) Apply(t float64) float64 {
	t = Clamp01(t)
	switch self {
	case Linear:
		return t
	case SmoothStep:
		return t * t * (3.0 - 2.0*t)
	case EaseInQuad:
		return t * t
	case EaseOutQuad:
		return 1.0 - (1.0-t)*(1.0-t)
	case EaseInOutCubic:
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		p := -2.0*t + 2.0
		return 1.0 - (p*p*p)/2.0
	default:
		return t
	}
}

// Returns a string representation of the easing curve.
func (self Curve) String() string {
	switch self {
	case Linear: return "Linear"
	case SmoothStep: return "SmoothStep"
	case EaseInQuad: return "EaseInQuad"
	case EaseOutQuad: return "EaseOutQuad"
	case EaseInOutCubic: return "EaseInOutCubic"
	default:
		panic("invalid Curve")
	}
}

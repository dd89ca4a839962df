package camrig

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// Source types group shakes into throttle buckets: two shakes of the
// same source can't trigger within the throttle window of each other,
// while different sources don't interfere.
type SourceType uint8

const (
	// Heavy foreground impacts (hard landings, explosions).
	SourcePrimary SourceType = iota

	// Light feedback effects (footsteps, soft landings).
	SourceSecondary

	// Long-running ambient effects (rumbles, earthquakes).
	SourceEnvironmental
)

// Number of source types. Throttle state is a fixed-size array
// indexed by SourceType.
const NumSourceTypes = 3

// Returns a string representation of the source type.
func (self SourceType) String() string {
	switch self {
	case SourcePrimary: return "Primary"
	case SourceSecondary: return "Secondary"
	case SourceEnvironmental: return "Environmental"
	default:
		panic("invalid SourceType")
	}
}

// A named shake definition. The name is the preset's identity:
// registering a second preset under the same name replaces the first.
type ShakePreset struct {
	Name string

	// Peak impulse velocity per axis, before intensity scaling.
	Velocity ebimath.Vector

	// Shake lifetime in seconds. The impulse decays linearly to
	// zero over this span.
	Duration float64

	// Oscillation frequency in cycles per second.
	Frequency float64

	// Optional explicit source assignment. When nil, the source is
	// derived from duration and resolved magnitude (see
	// [DeriveSourceType]()).
	Source *SourceType
}

// Derives a throttle source from a shake's shape: anything longer
// than a second is treated as environmental, short and strong ones
// as primary, the rest as secondary. The magnitude is the resolved
// velocity length after intensity multipliers.
func DeriveSourceType(duration, magnitude float64) SourceType {
	if duration > 1.0 {
		return SourceEnvironmental
	}
	if magnitude > 2.0 {
		return SourcePrimary
	}
	return SourceSecondary
}

func shakeMagnitude(velocity ebimath.Vector) float64 {
	return math.Hypot(velocity.X, velocity.Y)
}

// The built-in preset set: three landing tiers for
// [AccessorShake.TriggerLanding](), a footstep tick, and a couple of
// impact and ambient presets. All of them resolve their source through
// the duration/magnitude heuristic.
func DefaultPresets() []ShakePreset {
	return []ShakePreset{
		{Name: "Landing_Light", Velocity: ebimath.V(0.6, 1.6), Duration: 0.25, Frequency: 24.0},
		{Name: "Landing_Medium", Velocity: ebimath.V(1.0, 2.6), Duration: 0.35, Frequency: 22.0},
		{Name: "Landing_Heavy", Velocity: ebimath.V(1.6, 4.2), Duration: 0.5, Frequency: 20.0},
		{Name: "Footstep", Velocity: ebimath.V(0.2, 0.5), Duration: 0.12, Frequency: 30.0},
		{Name: "Explosion", Velocity: ebimath.V(3.5, 3.0), Duration: 0.8, Frequency: 26.0},
		{Name: "Rumble", Velocity: ebimath.V(0.8, 0.6), Duration: 2.5, Frequency: 8.0},
		{Name: "Earthquake", Velocity: ebimath.V(2.2, 1.8), Duration: 6.0, Frequency: 6.0},
	}
}

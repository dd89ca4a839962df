// This package implements the parameter smoothing used by the camrig
// camera: capped linear interpolation that approaches a target value
// at a configurable rate, plus the easing curves used to shape state
// transitions.
//
// All provided helpers respect a few properties:
//   - No overshoot: a value steps towards its target but never past it,
//     no matter how large the delta time or the rate.
//   - Monotonic: while the target stays fixed, the distance to the
//     target never increases from one update to the next.
//   - Frame-rate independent: convergence is driven by rate*deltaTime,
//     so different tick rates land on visually equivalent values.
//
// These hold for any non-negative rate. A rate of zero freezes the
// value in place.
package blend

import "math"

// Clamps a value to the [0, 1] range.
func Clamp01(value float64) float64 {
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}

// Linear interpolation between from and to. The t factor
// is expected to be in [0, 1], but it's not clamped.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Moves current towards target by the capped fraction
// min(1, rate*deltaTime) of the remaining distance. Non-positive
// rate*deltaTime leaves current untouched.
func Approach(current, target, rate, deltaTime float64) float64 {
	t := rate * deltaTime
	if t <= 0.0 {
		return current
	}
	if t >= 1.0 {
		return target
	}
	return current + (target-current)*t
}

// Like [Approach](), but picks between two rates: riseRate while the
// target magnitude exceeds the current magnitude, fallRate otherwise.
// Parameters that should build up slower than they settle (or the
// other way around) use this.
func Asymmetric(current, target, riseRate, fallRate, deltaTime float64) float64 {
	rate := fallRate
	if math.Abs(target) > math.Abs(current) {
		rate = riseRate
	}
	return Approach(current, target, rate, deltaTime)
}

// Maps an angle in degrees to the (-180, 180] range.
func NormalizeAngle(degrees float64) float64 {
	degrees = math.Mod(degrees, 360.0)
	if degrees > 180.0 {
		degrees -= 360.0
	} else if degrees <= -180.0 {
		degrees += 360.0
	}
	return degrees
}

// [Approach]() for angles in degrees. The interpolation always takes
// the shortest path around the circle, so blending from 170 to -170
// crosses 180 instead of sweeping through zero. The result is
// normalized to (-180, 180].
func ApproachAngle(current, target, rate, deltaTime float64) float64 {
	delta := NormalizeAngle(target - current)
	t := rate * deltaTime
	if t <= 0.0 {
		return NormalizeAngle(current)
	}
	if t >= 1.0 {
		return NormalizeAngle(current + delta)
	}
	return NormalizeAngle(current + delta*t)
}

// A smoothed scalar parameter. Set the target and call [Value.Update]()
// once per tick; Current converges without overshoot. Rise and fall
// rates are selected on target vs current magnitude, so a single Value
// covers both symmetric (RiseRate == FallRate) and asymmetric blends.
type Value struct {
	Current  float64
	Target   float64
	RiseRate float64
	FallRate float64
}

// Advances the blend by deltaTime seconds and returns the new current value.
func (self *Value) Update(deltaTime float64) float64 {
	self.Current = Asymmetric(self.Current, self.Target, self.RiseRate, self.FallRate, deltaTime)
	return self.Current
}

// Snaps the value to the given position, clearing any blend in progress.
func (self *Value) Reset(value float64) {
	self.Current = value
	self.Target = value
}

// Like [Value], but for angles in degrees: updates take the shortest
// path around the circle and Current stays within (-180, 180].
// Angle blends use a single rate for both directions.
type Angle struct {
	Current float64
	Target  float64
	Rate    float64
}

// Advances the blend by deltaTime seconds and returns the new current angle.
func (self *Angle) Update(deltaTime float64) float64 {
	self.Current = ApproachAngle(self.Current, self.Target, self.Rate, deltaTime)
	return self.Current
}

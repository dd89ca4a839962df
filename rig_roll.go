package camrig

import (
	"github.com/edwinsyarief/camrig/blend"
	"go.uber.org/zap"
)

// Sets the speed at which strafe roll reaches full influence. Below
// it the tilt scales down proportionally, so creeping sideways barely
// tilts the view. Non-positive values are ignored with a warning.
func (self *Rig) SetRollSpeedNormalization(speed float64) {
	if speed <= 0 {
		self.logger.Warn("ignoring non-positive roll speed normalization", zap.Float64("speed", speed))
		return
	}
	self.rollSpeedNorm = speed
}

// Computes the roll target from the strafe input and blends towards
// it. Unlike noise, roll uses the state's RollSpeed for both rising
// and recentering; states that disable roll usually leave RollSpeed
// unset, so recentering falls back to a fixed rate rather than
// freezing the tilt. The tilt is about the viewing axis only; yaw and
// pitch are never touched.
func (self *Rig) updateRoll(deltaTime float64) {
	settings := &self.activeParams.Roll

	target := 0.0
	if settings.Enabled {
		strafe := self.locomotion.Input.X
		if strafe > 1.0 {
			strafe = 1.0
		} else if strafe < -1.0 {
			strafe = -1.0
		}
		influence := blend.Clamp01(self.locomotion.Speed / self.rollSpeedNorm)
		target = strafe * settings.MaxAngle * influence
		if settings.Invert {
			target = -target
		}
	}

	rate := settings.RollSpeed
	if rate <= 0.0 {
		rate = rollRecenterRate
	}
	self.roll.Rate = rate
	self.roll.Target = target
	self.roll.Update(deltaTime)
}

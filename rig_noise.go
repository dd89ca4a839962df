package camrig

import (
	"github.com/edwinsyarief/camrig/blend"
	"github.com/edwinsyarief/camrig/shaker"
	ebimath "github.com/edwinsyarief/ebi-math"
	"go.uber.org/zap"
)

// Per-state multipliers layered on top of the profile's noise gains.
type noiseModulation struct {
	amplitudeScale float64
	frequencyScale float64
}

// Scales the noise gains of one state relative to its profile record,
// e.g. 1.5x amplitude while sprinting without touching the profile.
// Both scales default to 1. Panics on an out-of-range state; negative
// scales are ignored with a warning.
func (self *Rig) SetNoiseModulation(state CameraState, amplitudeScale, frequencyScale float64) {
	if int(state) >= NumCameraStates {
		panic("invalid CameraState")
	}
	if amplitudeScale < 0 || frequencyScale < 0 {
		self.logger.Warn("ignoring negative noise modulation",
			zap.Stringer("state", state),
			zap.Float64("amplitudeScale", amplitudeScale),
			zap.Float64("frequencyScale", frequencyScale))
		return
	}
	self.noiseModulation[state] = noiseModulation{
		amplitudeScale: amplitudeScale,
		frequencyScale: frequencyScale,
	}
}

// Replaces the head-bob offset source. The default is a [shaker.Bob];
// [shaker.Still] silences bob offsets while keeping the amplitude and
// frequency outputs running. A nil source is ignored with a warning.
func (self *Rig) SetBobSource(source shaker.Source) {
	if source == nil {
		self.logger.Warn("ignoring nil bob source")
		return
	}
	self.bobSource = source
}

// Sets the speed regarded as full sprint when scaling noise with
// movement. Non-positive values are ignored with a warning.
func (self *Rig) SetAssumedMaxSpeed(speed float64) {
	if speed <= 0 {
		self.logger.Warn("ignoring non-positive assumed max speed", zap.Float64("speed", speed))
		return
	}
	self.assumedMaxSpeed = speed
}

// Computes the amplitude and frequency targets for the active state,
// blends towards them and samples the bob source. Amplitude rises
// slower than it falls, so head-bob builds up smoothly but dies fast
// when movement stops or the state disables it.
func (self *Rig) updateNoise(deltaTime float64) {
	settings := &self.activeParams.Noise
	modulation := self.noiseModulation[self.currentState]

	var amplitudeTarget, frequencyTarget float64
	if settings.Enabled {
		amplitudeTarget = settings.AmplitudeGain * self.globalIntensity() * modulation.amplitudeScale
		if settings.ScaleWithMovement {
			normalizedSpeed := blend.Clamp01(self.locomotion.Speed / self.assumedMaxSpeed)
			amplitudeTarget *= blend.Lerp(settings.MinIntensity, settings.MaxIntensity, normalizedSpeed)
		}

		frequencyTarget = settings.FrequencyGain * modulation.frequencyScale
		if settings.SpeedFrequencyMultiplier > 0 && self.locomotion.Speed > settings.SpeedFrequencyThreshold {
			span := self.assumedMaxSpeed - settings.SpeedFrequencyThreshold
			boost := 1.0
			if span > 0 {
				boost = blend.Clamp01((self.locomotion.Speed - settings.SpeedFrequencyThreshold) / span)
			}
			frequencyTarget *= blend.Lerp(1.0, settings.SpeedFrequencyMultiplier, boost)
		}
	}

	self.amplitude.Target = amplitudeTarget
	self.amplitude.Update(deltaTime)
	self.frequency.Target = frequencyTarget
	self.frequency.Update(deltaTime)

	x, y := self.bobSource.Offsets(deltaTime, self.frequency.Current)
	self.bobOffset = ebimath.V(x*self.amplitude.Current, y*self.amplitude.Current)
}

package camrig

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"go.uber.org/zap"
)

// Fallback record used when the profile defines no parameters at all,
// not even for Standing. Neutral view, no procedural motion.
var fallbackParams = StateParameters{FOV: 90.0}

// Tells the rig how the player is moving. The state name and flags are
// classified into a camera state (see [Classify]()) and a transition is
// requested through [Rig.SetState](); speed is kept for the noise and
// roll engines. This is the main inbound call of the locomotion side,
// expected once per change (not necessarily once per frame).
func (self *Rig) NotifyLocomotionStateChanged(stateName string, isMoving, isSprinting bool, speed float64) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		self.logger.Warn("ignoring locomotion change with invalid speed", zap.Float64("speed", speed))
		return
	}
	self.locomotion.StateName = stateName
	self.locomotion.Moving = isMoving
	self.locomotion.Sprinting = isSprinting
	self.locomotion.Speed = speed
	self.SetState(Classify(stateName, isMoving, isSprinting), false)
}

// Feeds the current normalized movement input. The X component is the
// strafe axis driving the roll engine; values outside [-1, 1] are
// clamped at the point of use.
func (self *Rig) NotifyMovementInput(input ebimath.Vector) {
	if math.IsNaN(input.X) || math.IsNaN(input.Y) {
		self.logger.Warn("ignoring movement input with NaN component")
		return
	}
	self.locomotion.Input = input
}

// Reports a landing impact. Routed straight to
// [AccessorShake.TriggerLanding]().
func (self *Rig) NotifyLanding(landingVelocity float64) {
	self.Shake().TriggerLanding(landingVelocity)
}

// Requests a transition to the given state. Without force, the request
// is dropped when the state is already active or when the previous
// accepted transition happened less than the debounce interval ago;
// both drops are silent admission policy, not errors. Forced requests
// always go through, including same-state re-entries (which re-resolve
// the parameter record without emitting a state change).
//
// On acceptance the parameter record for the new state is resolved
// (falling back to Standing's record, with a warning, when the profile
// doesn't define one), the viewpoint selector is asked to raise the
// matching viewpoint, and the state change handler fires.
func (self *Rig) SetState(state CameraState, force bool) {
	if int(state) >= NumCameraStates {
		self.logger.Warn("ignoring transition to invalid camera state", zap.Uint8("state", uint8(state)))
		return
	}
	if state == self.currentState && !force {
		return
	}
	if !force && self.timeSinceTransition < self.debounceInterval {
		// debounced
		return
	}

	previous := self.currentState
	self.previousState = previous
	self.currentState = state
	self.activeParams = self.resolveParams(state)
	self.timeSinceTransition = 0.0

	if self.viewpoints != nil {
		self.viewpoints.Activate(state)
	}
	if state != previous && self.stateChangedFunc != nil {
		self.stateChangedFunc(previous, state)
	}
}

// Sets the minimum interval between accepted non-forced transitions.
// Negative values are ignored with a warning.
func (self *Rig) SetDebounceInterval(seconds float64) {
	if seconds < 0 || math.IsNaN(seconds) {
		self.logger.Warn("ignoring invalid debounce interval", zap.Float64("seconds", seconds))
		return
	}
	self.debounceInterval = seconds
}

// Sets how long the reported transition progress takes to reach 1
// after an accepted transition. Zero makes transitions report as
// settled immediately. Negative values are ignored with a warning.
func (self *Rig) SetTransitionDuration(seconds float64) {
	if seconds < 0 || math.IsNaN(seconds) {
		self.logger.Warn("ignoring invalid transition duration", zap.Float64("seconds", seconds))
		return
	}
	self.transitionDuration = seconds
}

// Resolves the parameter record for a state, degrading gracefully on
// configuration gaps: a missing record falls back to Standing's, and
// a profile without even a Standing record falls back to a neutral
// built-in. Both cases log a warning; the frame loop never stops.
func (self *Rig) resolveParams(state CameraState) StateParameters {
	if params, ok := self.profile.StateParameters(state); ok {
		return params.Clone()
	}
	self.logger.Warn("no parameters for camera state, falling back to Standing",
		zap.Stringer("state", state))
	if params, ok := self.profile.StateParameters(Standing); ok {
		return params.Clone()
	}
	self.logger.Warn("profile defines no Standing parameters, using built-in fallback")
	return fallbackParams.Clone()
}

func (self *Rig) transitionProgress() float64 {
	if self.transitionDuration <= 0.0 {
		return 1.0
	}
	return self.activeParams.Easing.Apply(self.timeSinceTransition / self.transitionDuration)
}

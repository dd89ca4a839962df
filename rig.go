// camrig drives the feel of a first person camera from locomotion
// signals. It classifies raw movement states into camera states,
// debounces transitions between them, blends field of view, head-bob
// noise and strafe roll towards each state's configured targets, and
// schedules decaying shake impulses with throttling and a concurrency
// cap. The package computes control values and offsets; turning those
// into pixels is the rendering side's job (see the ebicam subpackage
// for an Ebitengine adapter).
//
// Everything runs single threaded: create a [Rig], feed it locomotion
// notifications, call [Rig.Update]() once per frame and read the
// returned [Output].
package camrig

import (
	"math"
	"time"

	"github.com/edwinsyarief/camrig/blend"
	"github.com/edwinsyarief/camrig/shaker"
	ebimath "github.com/edwinsyarief/ebi-math"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultDebounceInterval   = 0.1
	defaultTransitionDuration = 0.3
	defaultAssumedMaxSpeed    = 8.0
	defaultRollSpeedNorm      = 6.0
	defaultLandingThreshold   = 5.0
	landingIntensityNorm      = 20.0

	fovRiseRate       = 8.0
	fovFallRate       = 6.0
	amplitudeRiseRate = 3.0
	amplitudeFallRate = 6.0
	frequencyRate     = 5.0
	rollRecenterRate  = 8.0

	defaultShakeThrottle   = 0.1
	defaultMaxSimultaneous = 3
	maxPendingShakes       = 8
)

// The locomotion collaborator's view of the player for one tick.
// Produced from the Notify* methods and passed through the whole
// pipeline, so the classifier and the parameter engines never read
// shared globals.
type LocomotionSnapshot struct {
	StateName string
	Moving    bool
	Sprinting bool
	Speed     float64

	// Normalized movement input. The X component is the strafe
	// axis used by the roll engine.
	Input ebimath.Vector
}

// Implemented by the rendering collaborator to keep exactly one
// camera viewpoint active. The rig calls Activate once per accepted
// state transition; the implementation is expected to raise the
// viewpoint matching the new state and lower all others.
type ViewpointSelector interface {
	Activate(state CameraState)
}

// The per-tick read model handed to the rendering collaborator.
// All values are already blended and scaled; offsets are unitless
// and the renderer decides what one unit maps to.
type Output struct {
	State CameraState

	// Field of view in degrees.
	FOV float64

	// Blended head-bob control values.
	NoiseAmplitude float64
	NoiseFrequency float64

	// Tilt about the viewing axis, in degrees.
	Roll float64

	// Progress of the latest state transition in [0, 1], already
	// shaped by the state's easing curve. Reaches 1 once settled.
	Transition float64

	// Head-bob offsets (noise source scaled by NoiseAmplitude).
	BobOffset ebimath.Vector

	// Summed impulse offsets of all active shakes.
	ShakeOffset ebimath.Vector
}

// The camera control core. Owns the state machine, the parameter
// blending engines and the impulse shake scheduler. Not safe for
// concurrent use; drive it from the frame loop only.
type Rig struct {
	// ambient
	logger  *zap.Logger
	profile Profile
	clock   float64

	// locomotion input
	locomotion LocomotionSnapshot

	// state machine
	currentState        CameraState
	previousState       CameraState
	activeParams        StateParameters
	debounceInterval    float64
	transitionDuration  float64
	timeSinceTransition float64
	stateChangedFunc    func(previous, current CameraState)
	viewpoints          ViewpointSelector

	// parameter blending
	fov             blend.Value
	amplitude       blend.Value
	frequency       blend.Value
	roll            blend.Angle
	assumedMaxSpeed float64
	rollSpeedNorm   float64
	noiseModulation [NumCameraStates]noiseModulation
	bobSource       shaker.Source
	bobOffset       ebimath.Vector

	// shakes
	shakeEnabled     bool
	shakePresets     map[string]ShakePreset
	shakePending     []pendingShake
	shakeChannels    []impulseChannel
	shakeLimiters    [NumSourceTypes]*rate.Limiter
	shakeThrottle    float64
	shakeOffset      ebimath.Vector
	shakeFunc        func(presetName string, magnitude float64)
	landingThreshold float64

	lastOutput Output
}

// Creates a camera rig bound to the given profile. A nil profile is
// treated as a configuration defect: the rig logs a warning and runs
// on [DefaultProfile]() instead.
//
// The rig starts in [Standing] with the field of view already settled
// on that state's value, while noise and roll fade in from zero.
func New(profile Profile) *Rig {
	rig := &Rig{
		logger:             zap.NewNop(),
		currentState:       Standing,
		previousState:      Standing,
		debounceInterval:   defaultDebounceInterval,
		transitionDuration: defaultTransitionDuration,
		assumedMaxSpeed:    defaultAssumedMaxSpeed,
		rollSpeedNorm:      defaultRollSpeedNorm,
		shakeEnabled:       true,
		landingThreshold:   defaultLandingThreshold,
	}
	for state := range rig.noiseModulation {
		rig.noiseModulation[state] = noiseModulation{amplitudeScale: 1.0, frequencyScale: 1.0}
	}

	if profile == nil {
		rig.logger.Warn("nil profile, falling back to defaults")
		profile = DefaultProfile()
	}
	rig.profile = profile
	rig.reloadPresets()

	rig.activeParams = rig.resolveParams(rig.currentState)
	rig.fov = blend.Value{RiseRate: fovRiseRate, FallRate: fovFallRate}
	rig.fov.Reset(rig.activeParams.FOV)
	rig.amplitude = blend.Value{RiseRate: amplitudeRiseRate, FallRate: amplitudeFallRate}
	rig.frequency = blend.Value{RiseRate: frequencyRate, FallRate: frequencyRate}
	rig.timeSinceTransition = rig.transitionDuration

	rig.bobSource = &shaker.Bob{}
	rig.shakeThrottle = defaultShakeThrottle
	rig.rebuildLimiters()
	rig.shakeChannels = make([]impulseChannel, defaultMaxSimultaneous)
	for i := range rig.shakeChannels {
		rig.shakeChannels[i].source = shaker.NewRandom(int64(i) + 1)
	}
	rig.shakePending = make([]pendingShake, 0, maxPendingShakes)

	rig.lastOutput = rig.snapshotOutput()
	return rig
}

// Replaces the rig's logger. Passing nil restores the no-op default.
// The rig only ever logs warnings about degraded configuration or
// ignored input; the happy path is silent.
func (self *Rig) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	self.logger = logger
}

// Swaps the configuration profile at runtime. The now-current state's
// parameters are re-applied immediately and the preset table is
// rebuilt; blended values keep their current positions and glide to
// the new targets. A nil profile is ignored with a warning.
func (self *Rig) SetProfile(profile Profile) {
	if profile == nil {
		self.logger.Warn("ignoring nil profile")
		return
	}
	self.profile = profile
	self.reloadPresets()
	self.activeParams = self.resolveParams(self.currentState)
}

// Registers the rendering collaborator that keeps viewpoint priorities
// in sync with the camera state. The selector is invoked immediately
// for the current state so both sides agree from the start.
func (self *Rig) SetViewpointSelector(selector ViewpointSelector) {
	self.viewpoints = selector
	if selector != nil {
		selector.Activate(self.currentState)
	}
}

// Registers the handler invoked after each accepted state transition.
// Only one handler is kept; passing nil removes it.
func (self *Rig) OnCameraStateChanged(fn func(previous, current CameraState)) {
	self.stateChangedFunc = fn
}

// Registers the handler invoked whenever a shake impulse fires, with
// the preset name ("Custom" for custom shakes) and the resolved
// velocity magnitude. Only one handler is kept; passing nil removes it.
func (self *Rig) OnShakeTriggered(fn func(presetName string, magnitude float64)) {
	self.shakeFunc = fn
}

// The camera state the rig is currently in.
func (self *Rig) ActiveState() CameraState {
	return self.currentState
}

// The camera state before the latest accepted transition.
func (self *Rig) PreviousState() CameraState {
	return self.previousState
}

// The latest locomotion snapshot the rig is working from.
func (self *Rig) Locomotion() LocomotionSnapshot {
	return self.locomotion
}

// The output computed by the latest [Rig.Update]() call.
func (self *Rig) Output() Output {
	return self.lastOutput
}

// Provides access to the impulse shake scheduler. See [AccessorShake].
func (self *Rig) Shake() AccessorShake {
	return AccessorShake{rig: self}
}

// Advances the rig by deltaTime seconds and returns the new output.
// Call once per frame. Within the tick, pending state input has
// already been applied by the Notify* methods, so the order is:
// parameter blending, then the shake scheduler's decay and execute
// passes, then the output snapshot.
//
// Negative or non-finite delta times are ignored with a warning and
// the previous output is returned unchanged.
func (self *Rig) Update(deltaTime float64) Output {
	if deltaTime < 0 || math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		self.logger.Warn("ignoring invalid delta time", zap.Float64("deltaTime", deltaTime))
		return self.lastOutput
	}

	self.clock += deltaTime
	self.timeSinceTransition += deltaTime

	self.updateFOV(deltaTime)
	self.updateNoise(deltaTime)
	self.updateRoll(deltaTime)
	self.updateShakes(deltaTime)

	self.lastOutput = self.snapshotOutput()
	return self.lastOutput
}

func (self *Rig) updateFOV(deltaTime float64) {
	self.fov.Target = self.activeParams.FOV
	self.fov.Update(deltaTime)
}

func (self *Rig) snapshotOutput() Output {
	return Output{
		State:          self.currentState,
		FOV:            self.fov.Current,
		NoiseAmplitude: self.amplitude.Current,
		NoiseFrequency: self.frequency.Current,
		Roll:           self.roll.Current,
		Transition:     self.transitionProgress(),
		BobOffset:      self.bobOffset,
		ShakeOffset:    self.shakeOffset,
	}
}

// Synthetic wall clock for the throttle limiters, derived from the
// accumulated tick time so tests and replays stay deterministic.
func (self *Rig) shakeNow() time.Time {
	return time.Unix(0, 0).Add(time.Duration(self.clock * float64(time.Second)))
}

// Global intensity as configured, clamped to the documented [0, 2]
// range at the point of use.
func (self *Rig) globalIntensity() float64 {
	intensity := self.profile.GlobalIntensity()
	if intensity < 0.0 {
		return 0.0
	}
	if intensity > 2.0 {
		return 2.0
	}
	return intensity
}

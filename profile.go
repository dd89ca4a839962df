package camrig

import (
	"github.com/edwinsyarief/camrig/blend"
)

// Procedural noise configuration for one camera state. Amplitude and
// frequency gains are the pre-blend targets; the rig smooths the
// actual values towards them over time.
type NoiseSettings struct {
	// Enables head-bob noise for the state.
	Enabled bool

	// Base offset amplitude, before intensity scaling. Unitless,
	// the rendering side decides what one unit maps to.
	AmplitudeGain float64

	// Oscillation frequency in cycles per second.
	FrequencyGain float64

	// When set, amplitude scales with movement speed between
	// MinIntensity and MaxIntensity. When unset, amplitude stays
	// at AmplitudeGain regardless of speed.
	ScaleWithMovement bool
	MinIntensity      float64
	MaxIntensity      float64

	// Optional speed-reactive frequency boost: above the threshold
	// speed, frequency ramps up to FrequencyGain multiplied by
	// SpeedFrequencyMultiplier. A multiplier of zero disables the
	// boost entirely.
	SpeedFrequencyThreshold  float64
	SpeedFrequencyMultiplier float64
}

// Roll tilt configuration for one camera state.
type RollSettings struct {
	// Enables strafe roll for the state.
	Enabled bool

	// Peak tilt in degrees at full strafe and full speed influence.
	MaxAngle float64

	// Blend rate towards the target angle, applied both when rolling
	// in and when recentering.
	RollSpeed float64

	// Flips the roll direction relative to the strafe input.
	Invert bool
}

// The full parameter record for one camera state: where the field of
// view, head-bob and strafe roll should settle while the state is
// active, and which easing curve shapes the transition into it.
//
// Records are owned by the [Profile] and read-only to the rig.
type StateParameters struct {
	// Field of view in degrees. Sensible values live in [30, 120].
	FOV float64

	Noise NoiseSettings
	Roll  RollSettings

	// Shapes the normalized transition progress reported after a
	// state change.
	Easing blend.Curve
}

// Returns a copy of the parameter record with every field written out
// explicitly, so a missed field shows up in review instead of being
// silently defaulted by a generic copy mechanism.
func (self StateParameters) Clone() StateParameters {
	return StateParameters{
		FOV: self.FOV,
		Noise: NoiseSettings{
			Enabled:                  self.Noise.Enabled,
			AmplitudeGain:            self.Noise.AmplitudeGain,
			FrequencyGain:            self.Noise.FrequencyGain,
			ScaleWithMovement:        self.Noise.ScaleWithMovement,
			MinIntensity:             self.Noise.MinIntensity,
			MaxIntensity:             self.Noise.MaxIntensity,
			SpeedFrequencyThreshold:  self.Noise.SpeedFrequencyThreshold,
			SpeedFrequencyMultiplier: self.Noise.SpeedFrequencyMultiplier,
		},
		Roll: RollSettings{
			Enabled:   self.Roll.Enabled,
			MaxAngle:  self.Roll.MaxAngle,
			RollSpeed: self.Roll.RollSpeed,
			Invert:    self.Roll.Invert,
		},
		Easing: self.Easing,
	}
}

// The configuration collaborator. A profile provides the parameter
// record for each camera state, a global intensity multiplier applied
// to noise and shakes, and the shake preset definitions.
//
// Profiles can be hot-swapped at runtime through [Rig.SetProfile]();
// implementations must treat already handed out records as immutable
// while a rig might still read them.
type Profile interface {
	// Returns the parameter record for the given state, or false
	// when the profile doesn't define one. The rig falls back to
	// the Standing record in that case.
	StateParameters(state CameraState) (*StateParameters, bool)

	// Global multiplier for noise amplitude and shake velocity.
	// The rig clamps it to [0, 2] at the point of use.
	GlobalIntensity() float64

	// Shake preset definitions. Later entries with a repeated name
	// override earlier ones.
	ShakePresets() []ShakePreset
}

// An in-memory [Profile] backed by a fixed-size array indexed by
// [CameraState]. States without an explicit record report as missing.
// The zero value has global intensity zero and no records; most users
// will start from [DefaultProfile]() instead.
type StaticProfile struct {
	parameters      [NumCameraStates]StateParameters
	defined         [NumCameraStates]bool
	globalIntensity float64
	presets         []ShakePreset
}

// Creates an empty profile with global intensity 1.
func NewStaticProfile() *StaticProfile {
	return &StaticProfile{globalIntensity: 1.0}
}

// Stores the parameter record for a state, replacing any previous one.
// Panics on an out-of-range state.
func (self *StaticProfile) SetStateParameters(state CameraState, params StateParameters) {
	if int(state) >= NumCameraStates {
		panic("invalid CameraState")
	}
	self.parameters[state] = params.Clone()
	self.defined[state] = true
}

// Removes the record for a state, making it report as missing again.
func (self *StaticProfile) ClearStateParameters(state CameraState) {
	if int(state) >= NumCameraStates {
		panic("invalid CameraState")
	}
	self.parameters[state] = StateParameters{}
	self.defined[state] = false
}

// Sets the global intensity multiplier.
func (self *StaticProfile) SetGlobalIntensity(intensity float64) {
	self.globalIntensity = intensity
}

// Appends a shake preset definition. Re-registering an existing name
// overrides it, since later entries win.
func (self *StaticProfile) AddShakePreset(preset ShakePreset) {
	self.presets = append(self.presets, preset)
}

// Implements [Profile].
func (self *StaticProfile) StateParameters(state CameraState) (*StateParameters, bool) {
	if int(state) >= NumCameraStates || !self.defined[state] {
		return nil, false
	}
	return &self.parameters[state], true
}

// Implements [Profile].
func (self *StaticProfile) GlobalIntensity() float64 {
	return self.globalIntensity
}

// Implements [Profile].
func (self *StaticProfile) ShakePresets() []ShakePreset {
	return self.presets
}

// Returns an independent copy of the profile. Like
// [StateParameters.Clone](), the copy is field-by-field explicit.
func (self *StaticProfile) Clone() *StaticProfile {
	clone := &StaticProfile{globalIntensity: self.globalIntensity}
	for state := 0; state < NumCameraStates; state++ {
		clone.parameters[state] = self.parameters[state].Clone()
		clone.defined[state] = self.defined[state]
	}
	clone.presets = make([]ShakePreset, len(self.presets))
	copy(clone.presets, self.presets)
	return clone
}

// A ready-to-use profile with records for all six states and the
// default shake presets. Tuned for a generic first-person walkthrough;
// games will want to start here and adjust.
func DefaultProfile() *StaticProfile {
	profile := NewStaticProfile()

	profile.SetStateParameters(Standing, StateParameters{
		FOV: 90.0,
		Noise: NoiseSettings{
			Enabled:       true,
			AmplitudeGain: 0.15,
			FrequencyGain: 0.8,
		},
		Roll: RollSettings{
			Enabled:   true,
			MaxAngle:  2.0,
			RollSpeed: 8.0,
		},
		Easing: blend.EaseInOutCubic,
	})
	profile.SetStateParameters(Walking, StateParameters{
		FOV: 90.0,
		Noise: NoiseSettings{
			Enabled:           true,
			AmplitudeGain:     0.5,
			FrequencyGain:     6.5,
			ScaleWithMovement: true,
			MinIntensity:      0.3,
			MaxIntensity:      1.0,
		},
		Roll: RollSettings{
			Enabled:   true,
			MaxAngle:  2.5,
			RollSpeed: 8.0,
		},
		Easing: blend.EaseInOutCubic,
	})
	profile.SetStateParameters(Sprinting, StateParameters{
		FOV: 100.0,
		Noise: NoiseSettings{
			Enabled:                  true,
			AmplitudeGain:            1.0,
			FrequencyGain:            9.0,
			ScaleWithMovement:        true,
			MinIntensity:             0.5,
			MaxIntensity:             1.0,
			SpeedFrequencyThreshold:  6.0,
			SpeedFrequencyMultiplier: 1.4,
		},
		Roll: RollSettings{
			Enabled:   true,
			MaxAngle:  4.0,
			RollSpeed: 10.0,
		},
		Easing: blend.EaseInOutCubic,
	})
	profile.SetStateParameters(Crouching, StateParameters{
		FOV: 85.0,
		Noise: NoiseSettings{
			Enabled:           true,
			AmplitudeGain:     0.3,
			FrequencyGain:     4.5,
			ScaleWithMovement: true,
			MinIntensity:      0.3,
			MaxIntensity:      1.0,
		},
		Roll: RollSettings{
			Enabled:   true,
			MaxAngle:  1.5,
			RollSpeed: 6.0,
		},
		Easing: blend.SmoothStep,
	})
	profile.SetStateParameters(Sliding, StateParameters{
		FOV: 95.0,
		Noise: NoiseSettings{
			Enabled:       true,
			AmplitudeGain: 0.2,
			FrequencyGain: 2.0,
		},
		Roll: RollSettings{
			Enabled:   true,
			MaxAngle:  6.0,
			RollSpeed: 12.0,
		},
		Easing: blend.EaseOutQuad,
	})
	profile.SetStateParameters(Airborne, StateParameters{
		FOV: 92.0,
		Noise: NoiseSettings{
			Enabled: false,
		},
		Roll: RollSettings{
			Enabled: false,
		},
		Easing: blend.EaseInQuad,
	})

	for _, preset := range DefaultPresets() {
		profile.AddShakePreset(preset)
	}
	return profile
}

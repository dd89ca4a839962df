package camrig

import (
	"math"
	"testing"

	"github.com/edwinsyarief/camrig/shaker"
)

func TestNoiseAmplitudeConvergence(t *testing.T) {
	profile := DefaultProfile()
	params, _ := profile.StateParameters(Walking)
	updated := params.Clone()
	updated.Noise = NoiseSettings{Enabled: true, AmplitudeGain: 0.8, FrequencyGain: 6.0}
	profile.SetStateParameters(Walking, updated)

	rig := New(profile)
	rig.SetState(Walking, true)

	previous := 0.0
	for i := 0; i < 200; i++ {
		output := rig.Update(0.016)
		if output.NoiseAmplitude < previous-1e-12 {
			t.Fatalf("amplitude decreased at tick %d: %v -> %v", i, previous, output.NoiseAmplitude)
		}
		if output.NoiseAmplitude > 0.8+1e-9 {
			t.Fatalf("amplitude overshot at tick %d: %v", i, output.NoiseAmplitude)
		}
		previous = output.NoiseAmplitude
	}
	if math.Abs(previous-0.8) > 0.01 {
		t.Errorf("amplitude after 200 ticks = %v, want within 0.01 of 0.8", previous)
	}
}

func TestNoiseDisabledDecays(t *testing.T) {
	rig := New(DefaultProfile())
	rig.NotifyLocomotionStateChanged("standing", true, false, 4.0)
	stepRig(rig, 200, 0.016)
	if rig.Output().NoiseAmplitude <= 0.05 {
		t.Fatalf("amplitude = %v, expected head-bob to have built up", rig.Output().NoiseAmplitude)
	}

	// Airborne disables noise; amplitude and offsets must die out.
	rig.SetState(Airborne, true)
	stepRig(rig, 200, 0.016)
	output := rig.Output()
	if output.NoiseAmplitude > 0.01 {
		t.Errorf("amplitude = %v, want near zero after disabling", output.NoiseAmplitude)
	}
	if math.Abs(output.BobOffset.X) > 0.01 || math.Abs(output.BobOffset.Y) > 0.01 {
		t.Errorf("bob offset = %+v, want near zero after disabling", output.BobOffset)
	}
}

func TestNoiseScaleWithMovement(t *testing.T) {
	// Sprinting scales amplitude between 0.5 and 1.0 of the gain.
	testCases := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"full speed", 8.0, 1.0},
		{"half speed", 4.0, 0.75},
		{"stationary", 0.0, 0.5},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rig := New(DefaultProfile())
			rig.NotifyLocomotionStateChanged("standing", true, true, testCase.speed)
			stepRig(rig, 400, 0.016)
			if got := rig.Output().NoiseAmplitude; math.Abs(got-testCase.want) > 0.01 {
				t.Errorf("amplitude at speed %v = %v, want %v", testCase.speed, got, testCase.want)
			}
		})
	}
}

func TestGlobalIntensityClamp(t *testing.T) {
	profile := DefaultProfile()
	profile.SetGlobalIntensity(5.0)
	rig := New(profile)

	// Standing gain 0.15 times the clamped intensity 2.
	stepRig(rig, 400, 0.016)
	if got := rig.Output().NoiseAmplitude; math.Abs(got-0.3) > 0.01 {
		t.Errorf("amplitude = %v, want 0.3 (intensity clamped to 2)", got)
	}

	profile.SetGlobalIntensity(-1.0)
	stepRig(rig, 400, 0.016)
	if got := rig.Output().NoiseAmplitude; got > 0.01 {
		t.Errorf("amplitude = %v, want near zero (intensity clamped to 0)", got)
	}
}

func TestSetNoiseModulation(t *testing.T) {
	rig := New(DefaultProfile())
	rig.SetNoiseModulation(Standing, 1.5, 2.0)
	stepRig(rig, 400, 0.016)

	output := rig.Output()
	if math.Abs(output.NoiseAmplitude-0.225) > 0.01 {
		t.Errorf("amplitude = %v, want 0.225 (0.15 gain x 1.5)", output.NoiseAmplitude)
	}
	if math.Abs(output.NoiseFrequency-1.6) > 0.01 {
		t.Errorf("frequency = %v, want 1.6 (0.8 gain x 2)", output.NoiseFrequency)
	}
}

func TestSetNoiseModulationInvalidState(t *testing.T) {
	rig := New(DefaultProfile())
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range state")
		}
	}()
	rig.SetNoiseModulation(CameraState(42), 1.0, 1.0)
}

func TestSetNoiseModulationNegative(t *testing.T) {
	rig, logs := newObservedRig(DefaultProfile())
	rig.SetNoiseModulation(Standing, -1.0, 1.0)
	if logs.FilterMessage("ignoring negative noise modulation").Len() != 1 {
		t.Error("expected a warning for the negative scale")
	}
	// The stored modulation stays at the neutral default.
	stepRig(rig, 400, 0.016)
	if got := rig.Output().NoiseAmplitude; math.Abs(got-0.15) > 0.01 {
		t.Errorf("amplitude = %v, want the unmodulated 0.15", got)
	}
}

func TestSpeedFrequencyBoost(t *testing.T) {
	// Sprinting: gain 9, threshold 6, multiplier 1.4, assumed max 8.
	testCases := []struct {
		name  string
		speed float64
		want  float64
	}{
		{"at threshold", 6.0, 9.0},
		{"halfway", 7.0, 10.8},
		{"full boost", 8.0, 12.6},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rig := New(DefaultProfile())
			rig.NotifyLocomotionStateChanged("standing", true, true, testCase.speed)
			stepRig(rig, 400, 0.016)
			if got := rig.Output().NoiseFrequency; math.Abs(got-testCase.want) > 0.05 {
				t.Errorf("frequency at speed %v = %v, want %v", testCase.speed, got, testCase.want)
			}
		})
	}
}

func TestSetAssumedMaxSpeed(t *testing.T) {
	rig := New(DefaultProfile())
	rig.SetAssumedMaxSpeed(4.0)
	rig.NotifyLocomotionStateChanged("standing", true, true, 4.0)
	stepRig(rig, 400, 0.016)
	if got := rig.Output().NoiseAmplitude; math.Abs(got-1.0) > 0.01 {
		t.Errorf("amplitude = %v, want 1.0 (speed 4 counts as full with max 4)", got)
	}
}

func TestSetAssumedMaxSpeedInvalid(t *testing.T) {
	rig, logs := newObservedRig(DefaultProfile())
	rig.SetAssumedMaxSpeed(0.0)
	if logs.FilterMessage("ignoring non-positive assumed max speed").Len() != 1 {
		t.Error("expected a warning for the non-positive speed")
	}
}

func TestBobOffsetBoundedByAmplitude(t *testing.T) {
	rig := New(DefaultProfile())
	rig.NotifyLocomotionStateChanged("standing", true, false, 4.0)
	for i := 0; i < 500; i++ {
		output := rig.Update(0.016)
		bound := output.NoiseAmplitude + 1e-9
		if math.Abs(output.BobOffset.X) > bound || math.Abs(output.BobOffset.Y) > bound {
			t.Fatalf("tick %d: bob offset %+v exceeds amplitude %v", i, output.BobOffset, output.NoiseAmplitude)
		}
	}
}

func TestSetBobSource(t *testing.T) {
	rig := New(DefaultProfile())
	rig.NotifyLocomotionStateChanged("standing", true, false, 4.0)

	sawMotion := false
	for i := 0; i < 200; i++ {
		output := rig.Update(0.016)
		if math.Abs(output.BobOffset.Y) > 0.01 {
			sawMotion = true
		}
	}
	if !sawMotion {
		t.Fatal("default bob source never produced a visible offset")
	}

	rig.SetBobSource(shaker.Still)
	output := rig.Update(0.016)
	if output.BobOffset.X != 0.0 || output.BobOffset.Y != 0.0 {
		t.Errorf("bob offset with Still source = %+v, want zero", output.BobOffset)
	}
}

func TestSetBobSourceNil(t *testing.T) {
	rig, logs := newObservedRig(DefaultProfile())
	rig.SetBobSource(nil)
	if logs.FilterMessage("ignoring nil bob source").Len() != 1 {
		t.Error("expected a warning for the nil source")
	}
}

package blend

import (
	"math"
	"testing"
)

func TestCurveApply(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		at    float64
		want  float64
	}{
		{"linear midpoint", Linear, 0.5, 0.5},
		{"linear quarter", Linear, 0.25, 0.25},
		{"smoothstep midpoint", SmoothStep, 0.5, 0.5},
		{"smoothstep quarter", SmoothStep, 0.25, 0.15625},
		{"ease in quad midpoint", EaseInQuad, 0.5, 0.25},
		{"ease out quad midpoint", EaseOutQuad, 0.5, 0.75},
		{"ease in out cubic midpoint", EaseInOutCubic, 0.5, 0.5},
		{"ease in out cubic quarter", EaseInOutCubic, 0.25, 0.0625},
		{"ease in out cubic three quarters", EaseInOutCubic, 0.75, 0.9375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.curve.Apply(tt.at); math.Abs(got-tt.want) > epsilon {
				t.Errorf("%v.Apply(%v) = %v, want %v", tt.curve, tt.at, got, tt.want)
			}
		})
	}
}

// Every curve must pin its endpoints and clamp out-of-range input.
func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{Linear, SmoothStep, EaseInQuad, EaseOutQuad, EaseInOutCubic}
	for _, curve := range curves {
		t.Run(curve.String(), func(t *testing.T) {
			if got := curve.Apply(0.0); got != 0.0 {
				t.Errorf("Apply(0) = %v, want 0", got)
			}
			if got := curve.Apply(1.0); got != 1.0 {
				t.Errorf("Apply(1) = %v, want 1", got)
			}
			if got := curve.Apply(-2.0); got != 0.0 {
				t.Errorf("Apply(-2) = %v, want 0 (clamped)", got)
			}
			if got := curve.Apply(3.0); got != 1.0 {
				t.Errorf("Apply(3) = %v, want 1 (clamped)", got)
			}
		})
	}
}

func TestCurveMonotonic(t *testing.T) {
	curves := []Curve{Linear, SmoothStep, EaseInQuad, EaseOutQuad, EaseInOutCubic}
	for _, curve := range curves {
		t.Run(curve.String(), func(t *testing.T) {
			prev := curve.Apply(0.0)
			for i := 1; i <= 100; i++ {
				at := float64(i) / 100.0
				got := curve.Apply(at)
				if got < prev-epsilon {
					t.Fatalf("Apply(%v) = %v decreased below %v", at, got, prev)
				}
				prev = got
			}
		})
	}
}

func TestCurveString(t *testing.T) {
	tests := []struct {
		curve Curve
		want  string
	}{
		{Linear, "Linear"},
		{SmoothStep, "SmoothStep"},
		{EaseInQuad, "EaseInQuad"},
		{EaseOutQuad, "EaseOutQuad"},
		{EaseInOutCubic, "EaseInOutCubic"},
	}

	for _, tt := range tests {
		if got := tt.curve.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

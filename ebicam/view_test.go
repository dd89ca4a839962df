package ebicam

import (
	"math"
	"testing"

	"github.com/edwinsyarief/camrig"
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

func assertApply(t *testing.T, geom ebiten.GeoM, x, y, wantX, wantY float64) {
	t.Helper()
	gotX, gotY := geom.Apply(x, y)
	if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
		t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", x, y, gotX, gotY, wantX, wantY)
	}
}

func TestActivate(t *testing.T) {
	view := New()
	if got := view.ActiveViewpoint(); got != camrig.Standing {
		t.Errorf("initial viewpoint = %v, want Standing", got)
	}
	view.Activate(camrig.Sliding)
	if got := view.ActiveViewpoint(); got != camrig.Sliding {
		t.Errorf("viewpoint = %v, want Sliding", got)
	}
}

func TestGeoMNeutral(t *testing.T) {
	view := New()
	output := camrig.Output{FOV: 90.0, Transition: 1.0}

	geom := view.GeoM(output, 640.0, 360.0)
	assertApply(t, geom, 10.0, 20.0, 10.0, 20.0)
	assertApply(t, geom, 320.0, 180.0, 320.0, 180.0)
}

func TestGeoMRoll(t *testing.T) {
	view := New()
	output := camrig.Output{FOV: 90.0, Roll: 90.0, Transition: 1.0}

	// A quarter turn around the screen center maps a point 10px right
	// of center to 10px below it.
	geom := view.GeoM(output, 640.0, 360.0)
	assertApply(t, geom, 330.0, 180.0, 320.0, 190.0)
}

func TestGeoMFOVScale(t *testing.T) {
	view := New()

	// Halving the field of view doubles the scale around the center.
	geom := view.GeoM(camrig.Output{FOV: 45.0, Transition: 1.0}, 640.0, 360.0)
	assertApply(t, geom, 330.0, 180.0, 340.0, 180.0)

	// Widening it zooms out.
	geom = view.GeoM(camrig.Output{FOV: 180.0, Transition: 1.0}, 640.0, 360.0)
	assertApply(t, geom, 330.0, 180.0, 325.0, 180.0)

	// A zero field of view falls back to scale 1 instead of dividing
	// by zero.
	geom = view.GeoM(camrig.Output{Transition: 1.0}, 640.0, 360.0)
	assertApply(t, geom, 330.0, 180.0, 330.0, 180.0)
}

func TestGeoMOffsets(t *testing.T) {
	view := New()

	// Bob is faded by the transition progress: 1 unit at half
	// transition with the default 4px scale moves the view 2px.
	output := camrig.Output{
		FOV:        90.0,
		Transition: 0.5,
		BobOffset:  ebimath.V(0.0, 1.0),
	}
	geom := view.GeoM(output, 640.0, 360.0)
	assertApply(t, geom, 320.0, 180.0, 320.0, 182.0)

	// Shake offsets apply at full strength regardless of transition.
	output = camrig.Output{
		FOV:         90.0,
		Transition:  0.0,
		ShakeOffset: ebimath.V(1.0, 0.0),
	}
	geom = view.GeoM(output, 640.0, 360.0)
	assertApply(t, geom, 320.0, 180.0, 324.0, 180.0)
}

func TestViewKnobs(t *testing.T) {
	view := New()
	view.SetFOVBase(45.0)
	geom := view.GeoM(camrig.Output{FOV: 90.0, Transition: 1.0}, 640.0, 360.0)
	assertApply(t, geom, 330.0, 180.0, 325.0, 180.0)

	view = New()
	view.SetOffsetScale(10.0)
	output := camrig.Output{FOV: 90.0, Transition: 1.0, BobOffset: ebimath.V(1.0, 0.0)}
	geom = view.GeoM(output, 640.0, 360.0)
	assertApply(t, geom, 320.0, 180.0, 330.0, 180.0)
}

func TestViewKnobsPanicOnInvalid(t *testing.T) {
	testCases := []struct {
		name string
		call func(view *View)
	}{
		{"zero fov base", func(view *View) { view.SetFOVBase(0.0) }},
		{"negative offset scale", func(view *View) { view.SetOffsetScale(-1.0) }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			testCase.call(New())
		})
	}
}

func TestZeroValueViewPanics(t *testing.T) {
	var view View
	defer func() {
		if recover() == nil {
			t.Error("expected a panic from the zero value")
		}
	}()
	view.GeoM(camrig.Output{FOV: 90.0}, 640.0, 360.0)
}

func TestDrawOptions(t *testing.T) {
	view := New()
	output := camrig.Output{FOV: 45.0, Transition: 1.0}

	opts := view.DrawOptions(output, 640.0, 360.0)
	if opts.Filter != ebiten.FilterLinear {
		t.Errorf("filter = %v, want linear", opts.Filter)
	}
	wantGeoM := view.GeoM(output, 640.0, 360.0)
	wantX, wantY := wantGeoM.Apply(330.0, 180.0)
	gotX, gotY := opts.GeoM.Apply(330.0, 180.0)
	if gotX != wantX || gotY != wantY {
		t.Errorf("DrawOptions GeoM differs from GeoM: (%v, %v) vs (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

// This package adapts camrig to Ebitengine. It plays the rendering
// collaborator role at both ends of the rig's contract: a [View]
// implements [camrig.ViewpointSelector] so the rig can keep exactly
// one viewpoint active, and turns each tick's [camrig.Output] into an
// [ebiten.GeoM] ready to apply to the game's world draw.
//
// The mapping is a 2D interpretation of the first person values:
// field of view becomes a scale around the screen center (wider view,
// smaller world), roll becomes a rotation around the same center, and
// the bob and shake offsets become a translation. Head-bob is faded
// in with the transition progress after each state change, so walking
// out of a slide doesn't pop the bob pattern in at full swing.
package ebicam

import (
	"math"

	"github.com/edwinsyarief/camrig"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var _ camrig.ViewpointSelector = (*View)(nil)

// A per-state viewpoint stack with exactly one raised entry, plus the
// scaling knobs that map camrig's unitless values to screen space.
// Create with [New](); the zero value panics on first use.
type View struct {
	active      camrig.CameraState
	fovBase     float64
	offsetScale float64
}

// Creates a view with a 90 degree reference field of view and an
// offset scale of 4 pixels per unit.
func New() *View {
	return &View{fovBase: 90.0, offsetScale: 4.0}
}

// Raises the viewpoint for the given state and lowers all others.
// Called by the rig on every accepted state transition; calling it
// manually is harmless.
func (self *View) Activate(state camrig.CameraState) {
	self.active = state
}

// The single currently raised viewpoint.
func (self *View) ActiveViewpoint() camrig.CameraState {
	return self.active
}

// Sets the field of view that maps to scale 1. Wider outputs zoom
// out, narrower ones zoom in. Must be positive.
func (self *View) SetFOVBase(degrees float64) {
	if degrees <= 0 {
		panic("fov base must be positive")
	}
	self.fovBase = degrees
}

// Sets how many pixels one offset unit translates to. Must be
// positive.
func (self *View) SetOffsetScale(pixels float64) {
	if pixels <= 0 {
		panic("offset scale must be positive")
	}
	self.offsetScale = pixels
}

// Builds the view transform for one frame: scale and roll around the
// screen center, then the bob and shake translation. Apply it to the
// world draw, not to UI layers.
func (self *View) GeoM(output camrig.Output, screenWidth, screenHeight float64) ebiten.GeoM {
	if self.fovBase <= 0 {
		panic("use ebicam.New() to create views")
	}

	scale := 1.0
	if output.FOV > 0 {
		scale = self.fovBase / output.FOV
	}

	var geom ebiten.GeoM
	centerX, centerY := screenWidth/2.0, screenHeight/2.0
	geom.Translate(-centerX, -centerY)
	geom.Rotate(output.Roll * math.Pi / 180.0)
	geom.Scale(scale, scale)
	geom.Translate(centerX, centerY)

	offsetX := (output.BobOffset.X*output.Transition + output.ShakeOffset.X) * self.offsetScale
	offsetY := (output.BobOffset.Y*output.Transition + output.ShakeOffset.Y) * self.offsetScale
	geom.Translate(offsetX, offsetY)
	return geom
}

// Returns draw options with the frame's [View.GeoM]() already set
// and linear filtering selected, for direct use with
// [ebiten.Image.DrawImage](). Example code:
//
//	opts := view.DrawOptions(rig.Output(), 640, 360)
//	screen.DrawImage(world, &opts)
func (self *View) DrawOptions(output camrig.Output, screenWidth, screenHeight float64) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	opts.GeoM = self.GeoM(output, screenWidth, screenHeight)
	opts.Filter = ebiten.FilterLinear
	return opts
}

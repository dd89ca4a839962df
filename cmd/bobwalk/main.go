// An interactive camrig demo. A checkerboard world is drawn through an
// ebicam view while the keyboard plays the part of the locomotion
// system: WASD moves, Shift sprints, C crouches (slide by crouching at
// sprint), Space jumps and lands, and 1/2/3 fire shake presets.
package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/edwinsyarief/camrig"
	"github.com/edwinsyarief/camrig/ebicam"
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const (
	screenWidth  = 640
	screenHeight = 360

	walkSpeed   = 3.5
	sprintSpeed = 7.5
	crouchSpeed = 1.8
	speedRamp   = 8.0

	jumpDuration = 0.7
	gravity      = 20.0
)

type demo struct {
	rig   *camrig.Rig
	view  *ebicam.View
	world *ebiten.Image

	lastUpdate time.Time
	speed      float64
	airborne   bool
	airTime    float64
}

func newDemo(logger *zap.Logger) *demo {
	rig := camrig.New(camrig.DefaultProfile())
	rig.SetLogger(logger)

	view := ebicam.New()
	rig.SetViewpointSelector(view)

	return &demo{
		rig:        rig,
		view:       view,
		world:      buildWorld(),
		lastUpdate: time.Now(),
	}
}

// A checkerboard big enough to make scale, roll and offsets visible.
func buildWorld() *ebiten.Image {
	const tile = 40
	world := ebiten.NewImage(screenWidth, screenHeight)
	dark := ebiten.NewImage(tile, tile)
	dark.Fill(color.RGBA{42, 48, 64, 255})
	light := ebiten.NewImage(tile, tile)
	light.Fill(color.RGBA{96, 108, 132, 255})

	for y := 0; y < screenHeight/tile; y++ {
		for x := 0; x < screenWidth/tile; x++ {
			cell := dark
			if (x+y)%2 == 0 {
				cell = light
			}
			var opts ebiten.DrawImageOptions
			opts.GeoM.Translate(float64(x*tile), float64(y*tile))
			world.DrawImage(cell, &opts)
		}
	}
	return world
}

func (self *demo) Update() error {
	now := time.Now()
	deltaTime := now.Sub(self.lastUpdate).Seconds()
	self.lastUpdate = now
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	input := ebimath.V(0.0, 0.0)
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		input.X -= 1.0
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		input.X += 1.0
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		input.Y -= 1.0
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		input.Y += 1.0
	}
	moving := input.X != 0.0 || input.Y != 0.0
	sprinting := moving && ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	crouching := ebiten.IsKeyPressed(ebiten.KeyC)

	targetSpeed := 0.0
	if moving {
		switch {
		case crouching:
			targetSpeed = crouchSpeed
		case sprinting:
			targetSpeed = sprintSpeed
		default:
			targetSpeed = walkSpeed
		}
	}
	ramp := speedRamp * deltaTime
	if ramp > 1.0 {
		ramp = 1.0
	}
	self.speed += (targetSpeed - self.speed) * ramp

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !self.airborne {
		self.airborne = true
		self.airTime = 0.0
	}
	if self.airborne {
		self.airTime += deltaTime
		if self.airTime >= jumpDuration {
			self.airborne = false
			self.rig.NotifyLanding(gravity * self.airTime)
		}
	}

	stateName := "standing"
	switch {
	case self.airborne:
		stateName = "jumping"
	case crouching && sprinting:
		stateName = "sliding"
	case crouching:
		stateName = "crouching"
	}

	self.rig.NotifyMovementInput(input)
	self.rig.NotifyLocomotionStateChanged(stateName, moving, sprinting, self.speed)

	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		self.rig.Shake().Trigger("Explosion", 1.0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		self.rig.Shake().Trigger("Rumble", 1.0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		self.rig.Shake().Trigger("Earthquake", 1.0)
	}

	self.rig.Update(deltaTime)
	return nil
}

func (self *demo) Draw(screen *ebiten.Image) {
	output := self.rig.Output()
	opts := self.view.DrawOptions(output, screenWidth, screenHeight)
	screen.DrawImage(self.world, &opts)

	msg := fmt.Sprintf(
		"state %s  fov %5.1f  roll %+5.2f\namp %4.2f  freq %4.1f  transition %4.2f  shakes %d\nWASD move  Shift sprint  C crouch  Space jump  1/2/3 shakes",
		output.State, output.FOV, output.Roll,
		output.NoiseAmplitude, output.NoiseFrequency, output.Transition,
		self.rig.Shake().ActiveCount(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (self *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("camrig bobwalk")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(newDemo(logger)); err != nil {
		log.Fatal(err)
	}
}

// A terminal sandbox for tuning camrig profiles without a game
// attached. The rig runs at a fixed 30Hz while number keys switch
// locomotion states and letter keys fire shakes; the output values are
// rendered as live bars so blend rates and throttle behavior can be
// eyeballed directly.
//
// Keys: 1 idle, 2 walk, 3 sprint, 4 crouch, 5 slide, 6 airborne,
// +/- speed, a/d strafe, s center, l/h land soft/hard, f footstep,
// e explosion, r rumble, k earthquake, x stop all, q/Esc quit.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/edwinsyarief/camrig"
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/gdamore/tcell/v2"
)

const (
	tickRate = 30.0
	barWidth = 32
)

type probe struct {
	screen tcell.Screen
	rig    *camrig.Rig

	stateName string
	moving    bool
	sprinting bool
	speed     float64
	strafe    float64
}

func newProbe() (*probe, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)

	return &probe{
		screen:    screen,
		rig:       camrig.New(camrig.DefaultProfile()),
		stateName: "standing",
		moving:    true,
		speed:     3.5,
	}, nil
}

func (self *probe) handleInput(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			return false
		}
		if event.Key() != tcell.KeyRune {
			return true
		}
		switch event.Rune() {
		case 'q':
			return false
		case '1':
			self.stateName, self.moving, self.sprinting = "standing", false, false
		case '2':
			self.stateName, self.moving, self.sprinting = "standing", true, false
		case '3':
			self.stateName, self.moving, self.sprinting = "standing", true, true
		case '4':
			self.stateName, self.moving, self.sprinting = "crouching", true, false
		case '5':
			self.stateName, self.moving, self.sprinting = "sliding", true, false
		case '6':
			self.stateName, self.moving, self.sprinting = "jumping", false, false
		case '+', '=':
			self.speed = math.Min(self.speed+0.5, 10.0)
		case '-':
			self.speed = math.Max(self.speed-0.5, 0.0)
		case 'a':
			self.strafe = -1.0
		case 'd':
			self.strafe = 1.0
		case 's':
			self.strafe = 0.0
		case 'l':
			self.rig.NotifyLanding(12.0)
		case 'h':
			self.rig.NotifyLanding(18.0)
		case 'f':
			self.rig.Shake().Trigger("Footstep", 1.0)
		case 'e':
			self.rig.Shake().Trigger("Explosion", 1.0)
		case 'r':
			self.rig.Shake().Trigger("Rumble", 1.0)
		case 'k':
			self.rig.Shake().Trigger("Earthquake", 1.0)
		case 'x':
			self.rig.Shake().StopAll()
		}

	case *tcell.EventResize:
		self.screen.Sync()
	}
	return true
}

func (self *probe) tick() {
	self.rig.NotifyMovementInput(ebimath.V(self.strafe, 0.0))
	self.rig.NotifyLocomotionStateChanged(self.stateName, self.moving, self.sprinting, self.speed)
	self.rig.Update(1.0 / tickRate)
	self.draw()
}

func (self *probe) draw() {
	self.screen.Clear()
	output := self.rig.Output()

	header := tcell.StyleDefault.Bold(true)
	self.print(2, 1, fmt.Sprintf("camrig probe   state %-9s  speed %4.1f  strafe %+4.1f",
		output.State, self.speed, self.strafe), header)

	self.bar(2, 3, "fov       ", (output.FOV-60.0)/60.0, fmt.Sprintf("%6.2f", output.FOV))
	self.bar(2, 4, "amplitude ", output.NoiseAmplitude/1.5, fmt.Sprintf("%6.3f", output.NoiseAmplitude))
	self.bar(2, 5, "frequency ", output.NoiseFrequency/15.0, fmt.Sprintf("%6.2f", output.NoiseFrequency))
	self.bar(2, 6, "roll      ", (output.Roll+8.0)/16.0, fmt.Sprintf("%+6.2f", output.Roll))
	self.bar(2, 7, "transition", output.Transition, fmt.Sprintf("%6.3f", output.Transition))

	self.print(2, 9, fmt.Sprintf("shakes  active %d  pending %d",
		self.rig.Shake().ActiveCount(), self.rig.Shake().PendingCount()), tcell.StyleDefault)

	width, height := self.screen.Size()
	centerX, centerY := width/2, height-7
	offsetX := (output.BobOffset.X*output.Transition + output.ShakeOffset.X) * 3.0
	offsetY := (output.BobOffset.Y*output.Transition + output.ShakeOffset.Y) * 3.0
	self.screen.SetContent(centerX, centerY, '+', nil, tcell.StyleDefault)
	self.screen.SetContent(centerX+int(math.Round(offsetX)), centerY+int(math.Round(offsetY)),
		'@', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	self.print(2, height-2,
		"1-6 states  +/- speed  a/d/s strafe  l/h land  f/e/r/k shakes  x stop  q quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
	self.screen.Show()
}

func (self *probe) bar(x, y int, label string, fill float64, value string) {
	self.print(x, y, label, tcell.StyleDefault)
	if fill < 0.0 {
		fill = 0.0
	} else if fill > 1.0 {
		fill = 1.0
	}
	start := x + len(label) + 1
	filled := int(fill * barWidth)
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i := 0; i < barWidth; i++ {
		ch := '·'
		if i < filled {
			ch = '█'
		}
		self.screen.SetContent(start+i, y, ch, nil, barStyle)
	}
	self.print(start+barWidth+2, y, value, tcell.StyleDefault)
}

func (self *probe) print(x, y int, text string, style tcell.Style) {
	column := x
	for _, r := range text {
		self.screen.SetContent(column, y, r, nil, style)
		column++
	}
}

func (self *probe) run() {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- self.screen.PollEvent()
		}
	}()

	for {
		select {
		case event := <-events:
			if !self.handleInput(event) {
				return
			}
		case <-ticker.C:
			self.tick()
		}
	}
}

func (self *probe) cleanup() {
	self.screen.Fini()
}

func main() {
	probe, err := newProbe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer probe.cleanup()
	probe.run()
}

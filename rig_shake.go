package camrig

import (
	"math"
	"time"

	"github.com/edwinsyarief/camrig/shaker"
	ebimath "github.com/edwinsyarief/ebi-math"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// A shake that passed admission but hasn't been assigned an impulse
// channel yet.
type pendingShake struct {
	name      string
	velocity  ebimath.Vector
	duration  float64
	frequency float64
	source    SourceType
}

// One concurrent impulse slot. Channels own their offset source and
// their decay timer; the scheduler assigns admitted shakes to free
// channels and sums the per-channel offsets each tick.
type impulseChannel struct {
	source     shaker.Source
	name       string
	velocity   ebimath.Vector
	duration   float64
	frequency  float64
	elapsed    float64
	sourceType SourceType
	active     bool
	offsetX    float64
	offsetY    float64
}

func (self *impulseChannel) Trigger(item pendingShake) {
	self.name = item.name
	self.velocity = item.velocity
	self.duration = item.duration
	self.frequency = item.frequency
	self.elapsed = 0.0
	self.sourceType = item.source
	self.active = true
}

func (self *impulseChannel) IsShaking() bool {
	return self.active
}

// Linear decay from 1 at trigger time to 0 at expiry.
func (self *impulseChannel) Envelope() float64 {
	if !self.active || self.duration <= 0.0 {
		return 0.0
	}
	remaining := 1.0 - self.elapsed/self.duration
	if remaining < 0.0 {
		return 0.0
	}
	return remaining
}

func (self *impulseChannel) Update(deltaTime float64) {
	if !self.active {
		if self.offsetX != 0.0 || self.offsetY != 0.0 {
			self.offsetX, self.offsetY = 0.0, 0.0
		}
		return
	}

	self.elapsed += deltaTime
	if self.elapsed >= self.duration {
		self.Stop()
		return
	}

	envelope := self.Envelope()
	x, y := self.source.Offsets(deltaTime, self.frequency)
	self.offsetX = x * self.velocity.X * envelope
	self.offsetY = y * self.velocity.Y * envelope
}

func (self *impulseChannel) Stop() {
	self.active = false
	self.name = ""
	self.offsetX, self.offsetY = 0.0, 0.0
}

// Provides access to the impulse shake scheduler, obtained through
// [Rig.Shake](). The zero value is not usable.
//
// Shakes go through a small admission pipeline: a trigger is dropped
// outright when the scheduler is disabled, all impulse channels are
// busy, or the shake's source type fired within the throttle window.
// Admitted shakes wait in a FIFO queue and execute as channels free
// up, at which point the shake handler fires and the shake starts
// contributing offsets with a linearly decaying envelope. Drops are
// silent: bursty triggers losing events is the backpressure policy,
// not an error.
type AccessorShake struct {
	rig *Rig
}

// Triggers a preset shake scaled by the given intensity multiplier
// and the profile's global intensity. Unknown preset names log a
// warning and do nothing; use 1 as the neutral intensity.
//
// The shake's source type comes from the preset when set, and is
// otherwise derived from its duration and resolved magnitude (see
// [DeriveSourceType]()).
func (self AccessorShake) Trigger(presetName string, intensity float64) {
	rig := self.rig
	if !rig.shakeEnabled {
		return
	}
	preset, ok := rig.shakePresets[presetName]
	if !ok {
		rig.logger.Warn("unknown shake preset", zap.String("preset", presetName))
		return
	}
	if intensity < 0.0 || math.IsNaN(intensity) {
		rig.logger.Warn("ignoring shake with invalid intensity",
			zap.String("preset", presetName), zap.Float64("intensity", intensity))
		return
	}

	scale := intensity * rig.globalIntensity()
	velocity := ebimath.V(preset.Velocity.X*scale, preset.Velocity.Y*scale)
	source := DeriveSourceType(preset.Duration, shakeMagnitude(velocity))
	if preset.Source != nil {
		source = *preset.Source
	}
	rig.admitShake(pendingShake{
		name:      preset.Name,
		velocity:  velocity,
		duration:  preset.Duration,
		frequency: preset.Frequency,
		source:    source,
	})
}

// Triggers a one-off shake without going through the preset table.
// The velocity is used as given (global intensity does not apply) and
// the source type is explicit. Fires the shake handler under the name
// "Custom". Non-positive durations or frequencies and out-of-range
// source types log a warning and do nothing.
func (self AccessorShake) TriggerCustom(velocity ebimath.Vector, duration, frequency float64, source SourceType) {
	rig := self.rig
	if !rig.shakeEnabled {
		return
	}
	if duration <= 0.0 || frequency <= 0.0 || math.IsNaN(velocity.X) || math.IsNaN(velocity.Y) {
		rig.logger.Warn("ignoring malformed custom shake",
			zap.Float64("duration", duration), zap.Float64("frequency", frequency))
		return
	}
	if int(source) >= NumSourceTypes {
		rig.logger.Warn("ignoring custom shake with invalid source type", zap.Uint8("source", uint8(source)))
		return
	}
	rig.admitShake(pendingShake{
		name:      "Custom",
		velocity:  velocity,
		duration:  duration,
		frequency: frequency,
		source:    source,
	})
}

// Triggers a landing shake tiered by impact strength: below the
// landing threshold nothing happens, then "Landing_Light",
// "Landing_Medium" and "Landing_Heavy" take over as the impact speed
// crosses 10 and 15, with intensity ramping up to full at 20.
func (self AccessorShake) TriggerLanding(impactVelocity float64) {
	rig := self.rig
	if math.IsNaN(impactVelocity) || math.IsInf(impactVelocity, 0) {
		rig.logger.Warn("ignoring landing with invalid velocity", zap.Float64("velocity", impactVelocity))
		return
	}

	impact := ebimath.Abs(impactVelocity)
	if impact < rig.landingThreshold {
		return
	}
	var presetName string
	switch {
	case impact < 10.0:
		presetName = "Landing_Light"
	case impact < 15.0:
		presetName = "Landing_Medium"
	default:
		presetName = "Landing_Heavy"
	}

	intensity := impact / landingIntensityNorm
	if intensity > 1.0 {
		intensity = 1.0
	}
	self.Trigger(presetName, intensity)
}

// Reports whether a shake of the given source type would currently
// pass admission. This is a preview: it doesn't reserve anything, so
// a positive answer can still turn into a drop if something else
// triggers first.
func (self AccessorShake) CanTrigger(source SourceType) bool {
	rig := self.rig
	if int(source) >= NumSourceTypes {
		return false
	}
	return rig.shakeEnabled &&
		rig.shakeActiveCount() < len(rig.shakeChannels) &&
		rig.shakeLimiters[source].TokensAt(rig.shakeNow()) >= 1.0-1e-9
}

// Cancels everything immediately: the pending queue empties, every
// impulse channel stops and the summed shake offset drops to zero.
// A hard cut, not a fade-out. Throttle history is kept.
func (self AccessorShake) StopAll() {
	rig := self.rig
	rig.shakePending = rig.shakePending[:0]
	for i := range rig.shakeChannels {
		rig.shakeChannels[i].Stop()
	}
	rig.shakeOffset = ebimath.V(0.0, 0.0)
}

// Toggles the scheduler. While disabled, trigger calls do nothing;
// shakes already running keep decaying normally. Pair with
// [AccessorShake.StopAll]() for an immediate full mute.
func (self AccessorShake) SetEnabled(enabled bool) {
	self.rig.shakeEnabled = enabled
}

// Reports whether the scheduler currently accepts triggers.
func (self AccessorShake) IsEnabled() bool {
	return self.rig.shakeEnabled
}

// Number of currently running shakes. Never exceeds the concurrency
// cap set through [AccessorShake.SetMaxSimultaneous]().
func (self AccessorShake) ActiveCount() int {
	return self.rig.shakeActiveCount()
}

// Number of admitted shakes still waiting for a free channel.
func (self AccessorShake) PendingCount() int {
	return len(self.rig.shakePending)
}

// Reports whether any shake is currently running.
func (self AccessorShake) IsShaking() bool {
	return self.rig.shakeActiveCount() > 0
}

// Registers a preset at runtime, on top of whatever the profile
// provides. Registering an existing name replaces it. Malformed
// presets (empty name, non-positive duration or frequency) log a
// warning and are skipped.
func (self AccessorShake) RegisterPreset(preset ShakePreset) {
	self.rig.registerPreset(preset)
}

// Looks up a preset by name.
func (self AccessorShake) Preset(name string) (ShakePreset, bool) {
	preset, ok := self.rig.shakePresets[name]
	return preset, ok
}

// Sets the minimum interval between admitted shakes of the same
// source type. Zero disables throttling. The per-source history is
// reset in the process. Negative values are ignored with a warning.
func (self AccessorShake) SetThrottle(seconds float64) {
	rig := self.rig
	if seconds < 0.0 || math.IsNaN(seconds) {
		rig.logger.Warn("ignoring invalid shake throttle", zap.Float64("seconds", seconds))
		return
	}
	rig.shakeThrottle = seconds
	rig.rebuildLimiters()
}

// Resizes the impulse channel pool, changing how many shakes can run
// at once. Shrinking hard-cancels the shakes on the removed channels.
// Counts below 1 are ignored with a warning.
func (self AccessorShake) SetMaxSimultaneous(count int) {
	rig := self.rig
	if count < 1 {
		rig.logger.Warn("ignoring invalid shake concurrency cap", zap.Int("count", count))
		return
	}
	current := len(rig.shakeChannels)
	if count < current {
		for i := count; i < current; i++ {
			rig.shakeChannels[i].Stop()
		}
		rig.shakeChannels = rig.shakeChannels[:count]
		return
	}
	for i := current; i < count; i++ {
		rig.shakeChannels = append(rig.shakeChannels, impulseChannel{
			source: shaker.NewRandom(int64(i) + 1),
		})
	}
}

// Replaces the offset source of one impulse channel. Channels default
// to independently seeded [shaker.Random] sources. Panics on an
// out-of-range channel; a nil source is ignored with a warning.
func (self AccessorShake) SetSource(channel int, source shaker.Source) {
	rig := self.rig
	if channel < 0 || channel >= len(rig.shakeChannels) {
		panic("invalid shake channel")
	}
	if source == nil {
		rig.logger.Warn("ignoring nil shake source", zap.Int("channel", channel))
		return
	}
	rig.shakeChannels[channel].source = source
}

// Sets the impact speed below which landings trigger nothing.
// Negative values are ignored with a warning.
func (self AccessorShake) SetLandingThreshold(threshold float64) {
	rig := self.rig
	if threshold < 0.0 || math.IsNaN(threshold) {
		rig.logger.Warn("ignoring invalid landing threshold", zap.Float64("threshold", threshold))
		return
	}
	rig.landingThreshold = threshold
}

// --- scheduler internals ---

// Admission: reject while disabled, at the concurrency cap, when the
// source type fired within the throttle window, or when the pending
// queue is full. All rejections are silent drops. Admitted shakes
// consume their source's throttle token and wait in FIFO order for
// the next execute pass.
func (self *Rig) admitShake(item pendingShake) {
	if !self.shakeEnabled {
		return
	}
	if self.shakeActiveCount() >= len(self.shakeChannels) {
		return
	}
	if len(self.shakePending) >= maxPendingShakes {
		self.logger.Debug("pending shake queue full, dropping", zap.String("preset", item.name))
		return
	}
	if !self.shakeLimiters[item.source].AllowN(self.shakeNow(), 1) {
		return
	}
	self.shakePending = append(self.shakePending, item)
}

// Decay pass first so shakes expiring this tick free their channels,
// then the execute pass drains the queue into whatever is free.
func (self *Rig) updateShakes(deltaTime float64) {
	var sumX, sumY float64
	for i := range self.shakeChannels {
		self.shakeChannels[i].Update(deltaTime)
		sumX += self.shakeChannels[i].offsetX
		sumY += self.shakeChannels[i].offsetY
	}

	for len(self.shakePending) > 0 {
		channel := self.freeShakeChannel()
		if channel < 0 {
			break
		}
		item := self.shakePending[0]
		copy(self.shakePending, self.shakePending[1:])
		self.shakePending = self.shakePending[:len(self.shakePending)-1]

		self.shakeChannels[channel].Trigger(item)
		if self.shakeFunc != nil {
			self.shakeFunc(item.name, shakeMagnitude(item.velocity))
		}
	}

	self.shakeOffset = ebimath.V(sumX, sumY)
}

func (self *Rig) shakeActiveCount() int {
	count := 0
	for i := range self.shakeChannels {
		if self.shakeChannels[i].active {
			count++
		}
	}
	return count
}

func (self *Rig) freeShakeChannel() int {
	for i := range self.shakeChannels {
		if !self.shakeChannels[i].active {
			return i
		}
	}
	return -1
}

func (self *Rig) registerPreset(preset ShakePreset) {
	if preset.Name == "" || preset.Duration <= 0.0 || preset.Frequency <= 0.0 ||
		math.IsNaN(preset.Velocity.X) || math.IsNaN(preset.Velocity.Y) {
		self.logger.Warn("skipping malformed shake preset", zap.String("preset", preset.Name))
		return
	}
	self.shakePresets[preset.Name] = preset
}

func (self *Rig) reloadPresets() {
	self.shakePresets = make(map[string]ShakePreset)
	for _, preset := range self.profile.ShakePresets() {
		self.registerPreset(preset)
	}
}

func (self *Rig) rebuildLimiters() {
	limit := rate.Inf
	if self.shakeThrottle > 0.0 {
		limit = rate.Every(time.Duration(self.shakeThrottle * float64(time.Second)))
	}
	for source := range self.shakeLimiters {
		self.shakeLimiters[source] = rate.NewLimiter(limit, 1)
	}
}

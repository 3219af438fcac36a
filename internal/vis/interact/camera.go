// Package interact owns the editor camera and the pointer and keyboard
// state machines that drive it.
package interact

import (
	"math"

	"github.com/tessella-works/tessella/internal/core"
)

// Camera tuning. Damping and zoom smoothing are exponential in dt, so the
// feel does not depend on frame rate.
const (
	Damping       = 0.001   // fraction of velocity left after one second
	Speed         = 10000.0 // keyboard acceleration at zoom 1, world px/s^2
	ZoomDecayBase = 10000.0
	ZoomDecayRate = 0.99
	EaseDuration  = 1.0 // seconds for an EaseTo to complete
)

// restVelocity is the world-space speed below which the camera counts as
// stopped for redraw scheduling.
const restVelocity = 0.5

// motion is the camera's movement mode. A camera is in exactly one mode at
// a time: inertial or easing.
type motion interface {
	isMotion()
}

// inertial integrates velocity under keyboard acceleration and damping.
type inertial struct {
	vel   core.Vec
	accel core.Vec
}

// easing interpolates toward a fixed target on an ease-out curve.
type easing struct {
	start   core.Vec
	target  core.Vec
	elapsed float64
}

func (*inertial) isMotion() {}
func (*easing) isMotion()   {}

// Camera is the editor viewport: a world-space position with momentum and
// a smoothed zoom. Zoom is always positive; callers never set TargetZoom
// to zero or below.
type Camera struct {
	Pos        core.Vec
	Zoom       float64
	TargetZoom float64

	motion  motion
	lastPos core.Vec
	lastDT  float64
}

// NewCamera returns a stationary camera at the origin with 1:1 zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1, TargetZoom: 1, motion: &inertial{}}
}

// Tick advances the camera by dt seconds: zoom smoothing first, then
// position, either along the easing curve or by inertial integration.
func (c *Camera) Tick(dt float64) {
	c.Zoom += (c.TargetZoom - c.Zoom) * (1 - math.Pow(ZoomDecayBase, -ZoomDecayRate*dt))
	c.lastPos = c.Pos
	c.lastDT = dt

	switch m := c.motion.(type) {
	case *easing:
		m.elapsed += dt
		if m.elapsed >= EaseDuration {
			c.Pos = m.target
			c.motion = &inertial{}
			return
		}
		t := m.elapsed / EaseDuration
		c.Pos = m.start.Add(m.target.Sub(m.start).Mul(1 - math.Pow(2, -10*t)))
	case *inertial:
		c.Pos = c.Pos.Add(m.vel.Mul(dt))
		m.vel = m.vel.Add(m.accel.Mul(dt))
		m.vel = m.vel.Mul(math.Pow(Damping, dt))
	}
}

// EaseTo starts an ease toward target, dropping any momentum. A new call
// overwrites an ease already in flight.
func (c *Camera) EaseTo(target core.Vec) {
	c.motion = &easing{start: c.Pos, target: target}
}

// ReleaseEasing converts an in-flight ease into inertial motion with the
// velocity implied by the camera's last step, keeping apparent momentum.
// No-op when not easing. A zero lastDT (no tick yet) implies zero
// velocity.
func (c *Camera) ReleaseEasing() {
	if _, ok := c.motion.(*easing); !ok {
		return
	}
	var vel core.Vec
	if c.lastDT != 0 {
		vel = c.Pos.Sub(c.lastPos).Div(c.lastDT)
	}
	c.motion = &inertial{vel: vel}
}

// Stop kills all motion without touching position or zoom.
func (c *Camera) Stop() {
	c.motion = &inertial{}
}

// SetAccel sets the keyboard-driven acceleration. Ignored while easing:
// easing motion carries no acceleration.
func (c *Camera) SetAccel(a core.Vec) {
	if m, ok := c.motion.(*inertial); ok {
		m.accel = a
	}
}

// Velocity returns the inertial velocity, zero while easing.
func (c *Camera) Velocity() core.Vec {
	if m, ok := c.motion.(*inertial); ok {
		return m.vel
	}
	return core.Vec{}
}

// Accel returns the keyboard acceleration, zero while easing.
func (c *Camera) Accel() core.Vec {
	if m, ok := c.motion.(*inertial); ok {
		return m.accel
	}
	return core.Vec{}
}

// Easing reports whether an ease is in flight.
func (c *Camera) Easing() bool {
	_, ok := c.motion.(*easing)
	return ok
}

// EaseTarget returns the destination of the ease in flight, if any.
func (c *Camera) EaseTarget() (core.Vec, bool) {
	if m, ok := c.motion.(*easing); ok {
		return m.target, true
	}
	return core.Vec{}, false
}

// ZoomIn doubles the target zoom. Smoothing happens in Tick.
func (c *Camera) ZoomIn() {
	c.TargetZoom *= 2
}

// ZoomOut halves the target zoom. Halving keeps it positive.
func (c *Camera) ZoomOut() {
	c.TargetZoom /= 2
}

// Moving reports whether another frame would visibly change the camera:
// an ease in flight, leftover momentum, active acceleration, or zoom still
// converging toward its target.
func (c *Camera) Moving() bool {
	if m, ok := c.motion.(*inertial); ok {
		if m.vel.Len() > restVelocity || m.accel != (core.Vec{}) {
			return true
		}
	} else {
		return true
	}
	return math.Abs(c.TargetZoom-c.Zoom) > 1e-4*c.TargetZoom
}

// WorldToScreen maps a canvas point to window pixels for the given
// viewport size.
func (c *Camera) WorldToScreen(p, viewport core.Vec) core.Vec {
	return viewport.Div(2).Sub(c.Pos.Sub(p).Mul(c.Zoom))
}

// ScreenToWorld maps a window point back to canvas coordinates. Exact
// inverse of WorldToScreen for any positive zoom.
func (c *Camera) ScreenToWorld(s, viewport core.Vec) core.Vec {
	return c.Pos.Sub(viewport.Div(2).Sub(s).Div(c.Zoom))
}

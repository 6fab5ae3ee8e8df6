package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/scanline/pkg/math3d"
)

// restVelocity is the angular speed below which an axis counts as stopped.
const restVelocity = 1e-4

// spinAxis is one rotation axis. Each step adds the velocity to the angle and
// lets a critically damped spring pull the velocity back to zero.
type spinAxis struct {
	Angle    float64
	Velocity float64

	spring harmonica.Spring
	accel  float64 // spring velocity of Velocity itself
}

func newSpinAxis(fps int) spinAxis {
	// Frequency 4.0 = moderate decay, damping 1.0 = no overshoot
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *spinAxis) step() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	if math.Abs(a.Velocity) < restVelocity && math.Abs(a.accel) < restVelocity {
		a.Velocity, a.accel = 0, 0
	}
}

// spin is the model orientation in the viewer.
type spin struct {
	Pitch, Yaw, Roll spinAxis
	fps              int
}

func newSpin(fps int) *spin {
	s := &spin{fps: fps}
	s.Reset()
	return s
}

// Step advances every axis by one frame.
func (s *spin) Step() {
	s.Pitch.step()
	s.Yaw.step()
	s.Roll.step()
}

// Push adds angular velocity in radians per frame.
func (s *spin) Push(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Reset returns to the rest orientation.
func (s *spin) Reset() {
	s.Pitch = newSpinAxis(s.fps)
	s.Yaw = newSpinAxis(s.fps)
	s.Roll = newSpinAxis(s.fps)
}

// Moving reports whether any axis still has velocity.
func (s *spin) Moving() bool {
	return s.Pitch.Velocity != 0 || s.Yaw.Velocity != 0 || s.Roll.Velocity != 0
}

// Matrix returns the current rotation.
func (s *spin) Matrix() math3d.Mat4 {
	return math3d.Euler(s.Pitch.Angle, s.Yaw.Angle, s.Roll.Angle)
}

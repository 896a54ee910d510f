package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Torque is the rotational mirror of Force: a time-bounded influence that
// spins its owner around a fixed axis. Strength is in mass*rad/s^2 — only
// scalar mass is modeled, there is no inertia tensor
type Torque struct {
	id       string
	strength float64
	axis     mgl64.Vec3 // unit length
	duration float64    // remaining milliseconds
}

// NewTorque creates a torque; the axis is normalized on construction
func NewTorque(id string, strength float64, axis mgl64.Vec3, duration float64) *Torque {
	return &Torque{
		id:       id,
		strength: strength,
		axis:     axis.Normalize(),
		duration: duration,
	}
}

func (tq *Torque) GetID() string {
	return tq.id
}

func (tq *Torque) GetStrength() float64 {
	return tq.strength
}

func (tq *Torque) GetAxis() mgl64.Vec3 {
	return tq.axis
}

func (tq *Torque) GetDuration() float64 {
	return tq.duration
}

// Renew overwrites the torque in place, re-normalizing the axis and
// resetting the duration
func (tq *Torque) Renew(strength float64, axis mgl64.Vec3, duration float64) {
	tq.strength = strength
	tq.axis = axis.Normalize()
	tq.duration = duration
}

// GetExertionDuration returns the portion of the elapsed dt (ms) during
// which the torque was still active, and decrements the stored duration by
// dt regardless
func (tq *Torque) GetExertionDuration(dt float64) float64 {
	if tq.duration < EXERTION_EPSILON {
		tq.duration -= dt
		return 0
	}

	exertion := math.Min(tq.duration, dt)
	tq.duration -= dt

	return exertion
}

// GetAngularAccelerationMatrixOverTime returns the rotation accumulated
// around the axis after t seconds of the angular acceleration strength/mass
func (tq *Torque) GetAngularAccelerationMatrixOverTime(mass, t float64) mgl64.Mat4 {
	return mgl64.HomogRotate3D(tq.strength/mass*t, tq.axis)
}

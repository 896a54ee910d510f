package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Durations below this are considered exhausted (milliseconds)
const EXERTION_EPSILON = 0.1

// Force is a time-bounded influence that accelerates its owner along a
// fixed direction while its duration lasts
type Force struct {
	id        string
	strength  float64    // newtons
	direction mgl64.Vec3 // unit length
	duration  float64    // remaining milliseconds
}

// NewForce creates a force; the direction is normalized on construction
func NewForce(id string, strength float64, direction mgl64.Vec3, duration float64) *Force {
	return &Force{
		id:        id,
		strength:  strength,
		direction: direction.Normalize(),
		duration:  duration,
	}
}

func (f *Force) GetID() string {
	return f.id
}

func (f *Force) GetStrength() float64 {
	return f.strength
}

func (f *Force) GetDirection() mgl64.Vec3 {
	return f.direction
}

func (f *Force) GetDuration() float64 {
	return f.duration
}

// Renew overwrites the force in place, re-normalizing the direction and
// resetting the duration. Used for continuous influences (e.g. a thruster)
// that are re-applied every tick under the same id
func (f *Force) Renew(strength float64, direction mgl64.Vec3, duration float64) {
	f.strength = strength
	f.direction = direction.Normalize()
	f.duration = duration
}

// GetExertionDuration returns the portion of the elapsed dt (ms) during
// which the force was still active, and decrements the stored duration by
// dt regardless, so a force tapers out mid-step instead of overshooting
func (f *Force) GetExertionDuration(dt float64) float64 {
	if f.duration < EXERTION_EPSILON {
		f.duration -= dt
		return 0
	}

	exertion := math.Min(f.duration, dt)
	f.duration -= dt

	return exertion
}

// GetAccelerationVector returns direction * (strength / mass).
// The caller guarantees a positive mass
func (f *Force) GetAccelerationVector(mass float64) mgl64.Vec3 {
	return f.direction.Mul(f.strength / mass)
}

package actor

import "github.com/go-gl/mathgl/mgl64"

const (
	// The angular velocity matrix stores the rotation accrued over this
	// fixed interval (ms); rotations cannot be linearly interpolated the
	// way translations can, so angular drift advances in whole slices
	ANGULAR_VELOCITY_INTERVAL = 5.0

	// Straightening thresholds applied after integration
	VELOCITY_STRAIGHTEN_THRESHOLD         = 0.0001
	ANGULAR_VELOCITY_STRAIGHTEN_THRESHOLD = 0.00002
)

// Simulate advances the object's state by dt milliseconds: linear drift at
// the velocity sampled at the start of the step, then force integration,
// then stepped angular drift, then torque integration, then numerical
// cleanup. dt <= 0 is a silent no-op
func (p *PhysicalObject) Simulate(dt float64) {
	if dt <= 0 {
		return
	}

	// Linear drift before the new accelerations are integrated, so the
	// kick of this step only lands on the next one
	velocity := TranslationVector(p.velocityMatrix)
	p.positionMatrix = p.positionMatrix.Mul4(Translation(velocity.Mul(dt / 1000)))

	// Each active force displaces the position by s = a*t^2/2 and
	// contributes a*t to the accumulated velocity delta
	accelerationMatrix := mgl64.Ident4()
	for _, force := range p.forces {
		t := force.GetExertionDuration(dt) / 1000
		if t > 0 {
			a := force.GetAccelerationVector(p.mass)
			p.positionMatrix = p.positionMatrix.Mul4(Translation(a.Mul(t * t / 2)))
			accelerationMatrix = accelerationMatrix.Mul4(Translation(a.Mul(t)))
		}
	}
	p.velocityMatrix = p.velocityMatrix.Mul4(accelerationMatrix)

	// Angular drift: one application of the angular velocity matrix per
	// complete 5 ms slice contained in dt
	for i := 0.0; i+2 < dt; i += ANGULAR_VELOCITY_INTERVAL {
		p.orientationMatrix = p.orientationMatrix.Mul4(p.angularVelocityMatrix)
	}

	// Each active torque rotates the orientation by its angular
	// acceleration over t^2/2, and contributes its t/200 evaluation
	// (the 5 ms unit) to the accumulated angular velocity delta
	angularAccelerationMatrix := mgl64.Ident4()
	for _, torque := range p.torques {
		t := torque.GetExertionDuration(dt) / 1000
		if t > 0 {
			p.orientationMatrix = p.orientationMatrix.Mul4(
				torque.GetAngularAccelerationMatrixOverTime(p.mass, t*t/2))
			angularAccelerationMatrix = angularAccelerationMatrix.Mul4(
				torque.GetAngularAccelerationMatrixOverTime(p.mass, t/200))
		}
	}
	p.angularVelocityMatrix = p.angularVelocityMatrix.Mul4(angularAccelerationMatrix)

	// Numerical hygiene: snap noise out of the velocity matrices and
	// correct the orthogonality of the rotations
	p.velocityMatrix = Straighten(p.velocityMatrix, VELOCITY_STRAIGHTEN_THRESHOLD)
	p.angularVelocityMatrix = Straighten(p.angularVelocityMatrix, ANGULAR_VELOCITY_STRAIGHTEN_THRESHOLD)
	p.orientationMatrix = Orthonormalize(p.orientationMatrix)
	p.angularVelocityMatrix = Orthonormalize(p.angularVelocityMatrix)

	p.modelMatrixInverse.valid = false
	p.rotationMatrixInverse.valid = false
}

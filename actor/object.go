package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// matrixCache pairs a lazily recomputed matrix with its dirty flag
type matrixCache struct {
	matrix mgl64.Mat4
	valid  bool
}

// PhysicalObject is a rigid object whose kinematic state advances under
// accumulated forces and torques. All state is unsynchronized: a single
// object must be simulated from one goroutine at a time, while distinct
// objects share nothing and can be stepped in parallel
type PhysicalObject struct {
	mass float64 // kg, immutable

	positionMatrix    mgl64.Mat4 // world space, meters
	orientationMatrix mgl64.Mat4
	scalingMatrix     mgl64.Mat4

	// Linear velocity encoded as a translation matrix (m/s)
	velocityMatrix mgl64.Mat4
	// Rotation accrued over one ANGULAR_VELOCITY_INTERVAL
	angularVelocityMatrix mgl64.Mat4

	forces  []*Force
	torques []*Torque

	bodies []*Body
	// Farthest body corner from the model origin; never under-estimates
	bodySize float64

	modelMatrixInverse    matrixCache
	rotationMatrixInverse matrixCache
}

// NewPhysicalObject creates an object with the given mass, initial
// transforms, initial velocity and hit-test bodies. The bounding radius is
// computed once here; bodies are fixed for the object's lifetime
func NewPhysicalObject(mass float64, positionMatrix, orientationMatrix, scalingMatrix, initialVelocityMatrix mgl64.Mat4, bodies []*Body) *PhysicalObject {
	p := &PhysicalObject{
		mass:                  mass,
		positionMatrix:        positionMatrix,
		orientationMatrix:     orientationMatrix,
		scalingMatrix:         scalingMatrix,
		velocityMatrix:        initialVelocityMatrix,
		angularVelocityMatrix: mgl64.Ident4(),
		bodies:                bodies,
	}

	for _, body := range bodies {
		p.bodySize = math.Max(p.bodySize, body.farthestCornerDistance())
	}

	return p
}

func (p *PhysicalObject) GetMass() float64 {
	return p.mass
}

func (p *PhysicalObject) GetPositionMatrix() mgl64.Mat4 {
	return p.positionMatrix
}

func (p *PhysicalObject) GetOrientationMatrix() mgl64.Mat4 {
	return p.orientationMatrix
}

func (p *PhysicalObject) GetScalingMatrix() mgl64.Mat4 {
	return p.scalingMatrix
}

func (p *PhysicalObject) GetVelocityMatrix() mgl64.Mat4 {
	return p.velocityMatrix
}

func (p *PhysicalObject) GetAngularVelocityMatrix() mgl64.Mat4 {
	return p.angularVelocityMatrix
}

func (p *PhysicalObject) GetBodies() []*Body {
	return p.bodies
}

// GetSize returns the bounding radius in unscaled model space
func (p *PhysicalObject) GetSize() float64 {
	return p.bodySize
}

// GetScaledSize returns the bounding radius scaled by the largest scaling
// factor, a conservative world-space bound
func (p *PhysicalObject) GetScaledSize() float64 {
	s := p.scalingMatrix

	return p.bodySize * math.Max(s[0], math.Max(s[5], s[10]))
}

// SetPositionMatrix replaces the position and invalidates the model
// matrix inverse
func (p *PhysicalObject) SetPositionMatrix(m mgl64.Mat4) {
	p.positionMatrix = m
	p.modelMatrixInverse.valid = false
}

// SetOrientationMatrix replaces the orientation and invalidates both the
// model matrix inverse and the rotation matrix inverse
func (p *PhysicalObject) SetOrientationMatrix(m mgl64.Mat4) {
	p.orientationMatrix = m
	p.modelMatrixInverse.valid = false
	p.rotationMatrixInverse.valid = false
}

// GetModelMatrix composes position * orientation * scaling, placing the
// object's model space into world space
func (p *PhysicalObject) GetModelMatrix() mgl64.Mat4 {
	return p.positionMatrix.Mul4(p.orientationMatrix).Mul4(p.scalingMatrix)
}

// GetModelMatrixInverse returns the cached inverse model matrix,
// recomputing it if a mutation invalidated it
func (p *PhysicalObject) GetModelMatrixInverse() mgl64.Mat4 {
	if !p.modelMatrixInverse.valid {
		p.modelMatrixInverse.matrix = p.GetModelMatrix().Inv()
		p.modelMatrixInverse.valid = true
	}

	return p.modelMatrixInverse.matrix
}

// GetRotationMatrixInverse returns the cached inverse orientation matrix
func (p *PhysicalObject) GetRotationMatrixInverse() mgl64.Mat4 {
	if !p.rotationMatrixInverse.valid {
		p.rotationMatrixInverse.matrix = p.orientationMatrix.Inv()
		p.rotationMatrixInverse.valid = true
	}

	return p.rotationMatrixInverse.matrix
}

// AddForce appends a force. No deduplication
func (p *PhysicalObject) AddForce(force *Force) {
	p.forces = append(p.forces, force)
}

// AddTorque appends a torque. No deduplication
func (p *PhysicalObject) AddTorque(torque *Torque) {
	p.torques = append(p.torques, torque)
}

// AddOrRenewForce renews the first force matching the id, or appends a new
// one. Only the first match is renewed: duplicate ids are tolerated and
// left untouched
func (p *PhysicalObject) AddOrRenewForce(id string, strength float64, direction mgl64.Vec3, duration float64) {
	for _, force := range p.forces {
		if force.id == id {
			force.Renew(strength, direction, duration)
			return
		}
	}

	p.forces = append(p.forces, NewForce(id, strength, direction, duration))
}

// AddOrRenewTorque renews the first torque matching the id, or appends a
// new one
func (p *PhysicalObject) AddOrRenewTorque(id string, strength float64, axis mgl64.Vec3, duration float64) {
	for _, torque := range p.torques {
		if torque.id == id {
			torque.Renew(strength, axis, duration)
			return
		}
	}

	p.torques = append(p.torques, NewTorque(id, strength, axis, duration))
}

// PruneExpired drops forces and torques whose duration is exhausted.
// It is never called by the engine itself: expired entries otherwise stay
// in the lists forever, returning zero exertion
func (p *PhysicalObject) PruneExpired() {
	n := 0
	for _, force := range p.forces {
		if force.duration >= EXERTION_EPSILON {
			p.forces[n] = force
			n++
		}
	}
	p.forces = p.forces[:n]

	n = 0
	for _, torque := range p.torques {
		if torque.duration >= EXERTION_EPSILON {
			p.torques[n] = torque
			n++
		}
	}
	p.torques = p.torques[:n]
}

// CheckHit tests whether a world-space point lies inside any of the
// object's bodies. Points whose model-space coordinates all exceed the
// bounding radius are rejected without iterating the bodies
func (p *PhysicalObject) CheckHit(point mgl64.Vec3) bool {
	local := p.GetModelMatrixInverse().Mul4x1(point.Vec4(1)).Vec3()

	if math.Abs(local.X()) > p.bodySize &&
		math.Abs(local.Y()) > p.bodySize &&
		math.Abs(local.Z()) > p.bodySize {
		return false
	}

	for _, body := range p.bodies {
		if body.CheckHit(local) {
			return true
		}
	}

	return false
}

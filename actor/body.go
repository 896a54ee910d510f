package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is an immutable oriented box used purely for hit testing. Its
// position and orientation are expressed in the parent object's unscaled
// model space; it takes no part in the dynamics
type Body struct {
	positionMatrix    mgl64.Mat4
	orientationMatrix mgl64.Mat4

	halfWidth  float64
	halfHeight float64
	halfDepth  float64

	// Body never mutates, so the inverse is computed once at construction
	modelMatrixInverse mgl64.Mat4
}

// NewBody creates a hit-test box of the given full dimensions, placed by
// the local position and orientation matrices
func NewBody(positionMatrix, orientationMatrix mgl64.Mat4, width, height, depth float64) *Body {
	return &Body{
		positionMatrix:     positionMatrix,
		orientationMatrix:  orientationMatrix,
		halfWidth:          width / 2,
		halfHeight:         height / 2,
		halfDepth:          depth / 2,
		modelMatrixInverse: positionMatrix.Mul4(orientationMatrix).Inv(),
	}
}

func (b *Body) GetPositionMatrix() mgl64.Mat4 {
	return b.positionMatrix
}

func (b *Body) GetOrientationMatrix() mgl64.Mat4 {
	return b.orientationMatrix
}

func (b *Body) GetWidth() float64 {
	return b.halfWidth * 2
}

func (b *Body) GetHeight() float64 {
	return b.halfHeight * 2
}

func (b *Body) GetDepth() float64 {
	return b.halfDepth * 2
}

// CheckHit transforms a point given in the parent's unscaled model space
// into body space and tests axis-aligned containment. No side effects
func (b *Body) CheckHit(point mgl64.Vec3) bool {
	local := b.modelMatrixInverse.Mul4x1(point.Vec4(1))

	return math.Abs(local.X()) <= b.halfWidth &&
		math.Abs(local.Y()) <= b.halfHeight &&
		math.Abs(local.Z()) <= b.halfDepth
}

// farthestCornerDistance returns the distance from the parent's model
// origin to the farthest corner of the box
func (b *Body) farthestCornerDistance() float64 {
	transform := b.positionMatrix.Mul4(b.orientationMatrix)

	corners := [8]mgl64.Vec3{
		{-b.halfWidth, -b.halfHeight, -b.halfDepth},
		{+b.halfWidth, -b.halfHeight, -b.halfDepth},
		{-b.halfWidth, +b.halfHeight, -b.halfDepth},
		{+b.halfWidth, +b.halfHeight, -b.halfDepth},
		{-b.halfWidth, -b.halfHeight, +b.halfDepth},
		{+b.halfWidth, -b.halfHeight, +b.halfDepth},
		{-b.halfWidth, +b.halfHeight, +b.halfDepth},
		{+b.halfWidth, +b.halfHeight, +b.halfDepth},
	}

	distance := 0.0
	for _, corner := range corners {
		distance = math.Max(distance, transform.Mul4x1(corner.Vec4(1)).Vec3().Len())
	}

	return distance
}

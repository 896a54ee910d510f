package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Translation builds a translation matrix from a vector
func Translation(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v.X(), v.Y(), v.Z())
}

// TranslationVector extracts the translation component of a matrix
func TranslationVector(m mgl64.Mat4) mgl64.Vec3 {
	return mgl64.Vec3{m[12], m[13], m[14]}
}

// Straighten snaps every component within epsilon of 0, 1 or -1 to that
// clean value, so floating-point noise does not accumulate into drift
func Straighten(m mgl64.Mat4, epsilon float64) mgl64.Mat4 {
	for i := range m {
		switch {
		case math.Abs(m[i]) < epsilon:
			m[i] = 0
		case math.Abs(1-m[i]) < epsilon:
			m[i] = 1
		case math.Abs(1+m[i]) < epsilon:
			m[i] = -1
		}
	}

	return m
}

// Orthonormalize rebuilds the rotation part of a matrix with Gram-Schmidt,
// correcting the skew that repeated compositions accumulate.
// The translation component is preserved
func Orthonormalize(m mgl64.Mat4) mgl64.Mat4 {
	x := mgl64.Vec3{m[0], m[1], m[2]}.Normalize()
	y := mgl64.Vec3{m[4], m[5], m[6]}
	y = y.Sub(x.Mul(x.Dot(y))).Normalize()
	z := x.Cross(y)

	return mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		m[12], m[13], m[14], 1,
	}
}

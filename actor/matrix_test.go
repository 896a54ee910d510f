package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Shared comparison helpers
// =============================================================================

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

func mat4AlmostEqual(a, b mgl64.Mat4, epsilon float64) bool {
	for i := range a {
		if !almostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// =============================================================================
// Translation helpers Tests
// =============================================================================

func TestTranslation_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		vector mgl64.Vec3
	}{
		{"origin", mgl64.Vec3{0, 0, 0}},
		{"positive", mgl64.Vec3{1.5, 2.3, 3.7}},
		{"negative", mgl64.Vec3{-1.5, -2.3, -3.7}},
		{"large", mgl64.Vec3{1e6, -2e6, 3e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TranslationVector(Translation(tt.vector))
			if !vec3AlmostEqual(result, tt.vector, 1e-12) {
				t.Errorf("TranslationVector(Translation(%v)) = %v", tt.vector, result)
			}
		})
	}
}

func TestTranslation_Compose(t *testing.T) {
	a := Translation(mgl64.Vec3{1, 2, 3})
	b := Translation(mgl64.Vec3{-4, 5, -6})

	composed := TranslationVector(a.Mul4(b))
	expected := mgl64.Vec3{-3, 7, -3}

	if !vec3AlmostEqual(composed, expected, 1e-12) {
		t.Errorf("composed translation = %v, want %v", composed, expected)
	}
}

// =============================================================================
// Straighten Tests
// =============================================================================

func TestStraighten(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		epsilon  float64
		expected float64
	}{
		{"snaps to zero", 0.00005, 0.0001, 0},
		{"snaps negative to zero", -0.00005, 0.0001, 0},
		{"snaps to one", 0.99995, 0.0001, 1},
		{"snaps to minus one", -0.99995, 0.0001, -1},
		{"keeps clean value", 0.5, 0.0001, 0.5},
		{"keeps value above epsilon", 0.0002, 0.0001, 0.0002},
		{"tighter epsilon keeps noise", 0.00005, 0.00002, 0.00005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mgl64.Ident4()
			m[12] = tt.value

			result := Straighten(m, tt.epsilon)
			if result[12] != tt.expected {
				t.Errorf("Straighten(%v, %v) = %v, want %v", tt.value, tt.epsilon, result[12], tt.expected)
			}
		})
	}
}

func TestStraighten_IdentityStaysIdentity(t *testing.T) {
	result := Straighten(mgl64.Ident4(), 0.0001)
	if result != mgl64.Ident4() {
		t.Errorf("Straighten(identity) = %v, want identity", result)
	}
}

func TestStraighten_NoisyRotationSnapsToIdentity(t *testing.T) {
	// A rotation by an angle below the noise floor collapses to identity
	m := mgl64.HomogRotate3D(0.00001, mgl64.Vec3{0, 0, 1})

	result := Straighten(m, 0.0001)
	if result != mgl64.Ident4() {
		t.Errorf("Straighten(tiny rotation) = %v, want identity", result)
	}
}

// =============================================================================
// Orthonormalize Tests
// =============================================================================

func TestOrthonormalize_Identity(t *testing.T) {
	result := Orthonormalize(mgl64.Ident4())
	if !mat4AlmostEqual(result, mgl64.Ident4(), 1e-12) {
		t.Errorf("Orthonormalize(identity) = %v, want identity", result)
	}
}

func TestOrthonormalize_CorrectsSkew(t *testing.T) {
	// Start from a clean rotation and skew it slightly
	m := mgl64.HomogRotate3D(0.7, mgl64.Vec3{1, 2, 3}.Normalize())
	m[0] += 1e-3
	m[5] -= 1e-3
	m[9] += 1e-3

	result := Orthonormalize(m)

	x := mgl64.Vec3{result[0], result[1], result[2]}
	y := mgl64.Vec3{result[4], result[5], result[6]}
	z := mgl64.Vec3{result[8], result[9], result[10]}

	if !almostEqual(x.Len(), 1, 1e-12) || !almostEqual(y.Len(), 1, 1e-12) || !almostEqual(z.Len(), 1, 1e-12) {
		t.Errorf("columns not unit length: %v, %v, %v", x.Len(), y.Len(), z.Len())
	}
	if !almostEqual(x.Dot(y), 0, 1e-12) || !almostEqual(x.Dot(z), 0, 1e-12) || !almostEqual(y.Dot(z), 0, 1e-12) {
		t.Errorf("columns not orthogonal: %v, %v, %v", x.Dot(y), x.Dot(z), y.Dot(z))
	}
	if !almostEqual(result.Det(), 1, 1e-9) {
		t.Errorf("determinant = %v, want 1", result.Det())
	}
}

func TestOrthonormalize_PreservesTranslation(t *testing.T) {
	m := mgl64.HomogRotate3D(1.2, mgl64.Vec3{0, 1, 0})
	m[12], m[13], m[14] = 4, -5, 6

	result := Orthonormalize(m)

	if !vec3AlmostEqual(TranslationVector(result), mgl64.Vec3{4, -5, 6}, 1e-12) {
		t.Errorf("translation = %v, want (4, -5, 6)", TranslationVector(result))
	}
}

func TestOrthonormalize_KeepsCleanRotation(t *testing.T) {
	m := mgl64.HomogRotate3D(0.42, mgl64.Vec3{1, 0, 0})

	result := Orthonormalize(m)
	if !mat4AlmostEqual(result, m, 1e-12) {
		t.Errorf("Orthonormalize changed an already orthogonal rotation")
	}
}

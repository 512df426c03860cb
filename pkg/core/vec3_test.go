package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
	if got := a.Cross(b); got != NewVec3(27, 6, -13) {
		t.Errorf("Cross: expected (27,6,-13), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// A degenerate vector must normalize deterministically to zero, not NaN.
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
	if math.IsNaN(zero.X) || math.IsNaN(zero.Y) || math.IsNaN(zero.Z) {
		t.Errorf("Normalize of zero vector produced NaN: %v", zero)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		normal    Vec3
	}{
		{"head-on", NewVec3(0, 0, -1), NewVec3(0, 0, 1)},
		{"45 degrees", NewVec3(1, -1, 0).Normalize(), NewVec3(0, 1, 0)},
		{"grazing", NewVec3(1, -0.01, 0).Normalize(), NewVec3(0, 1, 0)},
		{"oblique", NewVec3(0.3, -0.5, -0.8).Normalize(), NewVec3(0, 1, 0)},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflected := tt.direction.Reflect(tt.normal)

			// Reflection preserves length.
			if math.Abs(reflected.Length()-tt.direction.Length()) > tolerance {
				t.Errorf("Expected length %f, got %f", tt.direction.Length(), reflected.Length())
			}

			// The normal component flips sign: dot(reflect(d,n), n) == -dot(d,n).
			if math.Abs(reflected.Dot(tt.normal)+tt.direction.Dot(tt.normal)) > tolerance {
				t.Errorf("Expected dot %f, got %f", -tt.direction.Dot(tt.normal), reflected.Dot(tt.normal))
			}
		})
	}
}

func TestRefract_BendsTowardNormal(t *testing.T) {
	// Entering glass (eta = 1/1.5) at 45 degrees must bend toward the normal.
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(incident, normal, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction, got total internal reflection")
	}

	sinIncident := math.Sqrt(1 - math.Pow(-incident.Dot(normal), 2))
	sinRefracted := math.Sqrt(1 - math.Pow(-refracted.Dot(normal), 2))
	expected := sinIncident / 1.5
	if math.Abs(sinRefracted-expected) > 1e-9 {
		t.Errorf("Snell's law violated: expected sin %f, got %f", expected, sinRefracted)
	}
	if math.Abs(refracted.Length()-1.0) > 1e-9 {
		t.Errorf("Refracted direction not unit length: %f", refracted.Length())
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Exiting glass (eta = 1.5) beyond the critical angle (~41.8 degrees)
	// has no real solution and must signal failure without producing NaN.
	incident := NewVec3(1, -0.5, 0).Normalize() // ~63 degrees from normal
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(incident, normal, 1.5)
	if ok {
		t.Fatal("Expected total internal reflection, got refraction")
	}
	if refracted != (Vec3{}) {
		t.Errorf("Expected zero vector on TIR, got %v", refracted)
	}
	if math.IsNaN(refracted.X) || math.IsNaN(refracted.Y) || math.IsNaN(refracted.Z) {
		t.Errorf("TIR produced NaN: %v", refracted)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	if got := ray.At(2.5); got != NewVec3(1, 2, 0.5) {
		t.Errorf("Expected (1,2,0.5), got %v", got)
	}
}

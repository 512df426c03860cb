package geometry

import (
	"math"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
	"github.com/jp87/go-whitted-raytracer/pkg/material"
)

// CheckerPlane is an infinite horizontal ground plane at a fixed height with
// a procedural checkerboard pattern. The color at a hit point is derived from
// the parity of floor(x)+floor(z) rather than stored, so the plane carries no
// texture state. Each hit produces a synthetic diffuse-only material holding
// the derived color.
type CheckerPlane struct {
	Height float64   // World-space y coordinate of the plane
	Even   core.Vec3 // Color of cells where floor(x)+floor(z) is even
	Odd    core.Vec3 // Color of the remaining cells
}

// NewCheckerPlane creates a new checkerboard ground plane
func NewCheckerPlane(height float64, even, odd core.Vec3) *CheckerPlane {
	return &CheckerPlane{Height: height, Even: even, Odd: odd}
}

// Hit tests if a ray intersects with the plane
func (p *CheckerPlane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// A ray near-parallel to the plane never produces a stable intersection
	if math.Abs(ray.Direction.Y) < 1e-8 {
		return nil, false
	}

	t := (p.Height - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	hitRecord := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: p.materialAt(hitPoint),
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(0, 1, 0))

	return hitRecord, true
}

// materialAt builds the synthetic diffuse-only material for a hit point
func (p *CheckerPlane) materialAt(point core.Vec3) *material.Material {
	color := p.Even
	if (int(math.Floor(point.X))+int(math.Floor(point.Z)))%2 != 0 {
		color = p.Odd
	}
	return material.New(color, [4]float64{1, 0, 0, 0}, 10, 1.0)
}

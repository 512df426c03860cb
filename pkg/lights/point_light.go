package lights

import "github.com/jp87/go-whitted-raytracer/pkg/core"

// PointLight is an omnidirectional light at a fixed position. Each light in
// a scene contributes additively; the order of the light list is irrelevant.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

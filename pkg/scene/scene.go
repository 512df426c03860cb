package scene

import (
	"fmt"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
	"github.com/jp87/go-whitted-raytracer/pkg/geometry"
	"github.com/jp87/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is built once and
// treated as read-only for the duration of a render, which is what allows the
// renderer to share it across workers without synchronization.
type Scene struct {
	Shapes     []geometry.Shape
	Lights     []lights.PointLight
	Background core.Vec3
}

// New creates an empty scene with the given background color
func New(background core.Vec3) *Scene {
	return &Scene{
		Shapes:     make([]geometry.Shape, 0),
		Lights:     make([]lights.PointLight, 0),
		Background: background,
	}
}

// AddShape adds a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight adds a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Validate checks the construction-time contract: sphere radii, light
// intensities and refractive indices must be positive. A well-formed scene
// never needs per-ray defensiveness in the renderer.
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if sphere.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be positive, got %g", i, sphere.Radius)
		}
		if sphere.Material == nil {
			return fmt.Errorf("sphere %d: missing material", i)
		}
		if sphere.Material.RefractiveIndex <= 0 {
			return fmt.Errorf("sphere %d: refractive index must be positive, got %g",
				i, sphere.Material.RefractiveIndex)
		}
	}
	for i, light := range s.Lights {
		if light.Intensity <= 0 {
			return fmt.Errorf("light %d: intensity must be positive, got %g", i, light.Intensity)
		}
	}
	return nil
}

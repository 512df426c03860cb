package scene

import (
	"github.com/jp87/go-whitted-raytracer/pkg/core"
	"github.com/jp87/go-whitted-raytracer/pkg/geometry"
	"github.com/jp87/go-whitted-raytracer/pkg/lights"
	"github.com/jp87/go-whitted-raytracer/pkg/material"
)

// DefaultBackground is the sky color returned for rays that miss everything
var DefaultBackground = core.NewVec3(0.2, 0.7, 0.8)

// NewDefaultScene creates the classic four-sphere arrangement: ivory, glass,
// red rubber and mirror spheres over a checkerboard ground, lit by three
// point lights.
func NewDefaultScene() *Scene {
	s := New(DefaultBackground)

	ivory := material.Ivory()
	glass := material.Glass()
	redRubber := material.RedRubber()
	mirror := material.Mirror()

	s.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2.0, ivory))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2.0, glass))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3.0, redRubber))
	s.AddShape(geometry.NewSphere(core.NewVec3(7, 5, -18), 4.0, mirror))

	s.AddShape(geometry.NewCheckerPlane(-4,
		core.NewVec3(0.3, 0.3, 0.3),
		core.NewVec3(0.3, 0.2, 0.1),
	))

	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 50, -25), 1.8))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 20, 30), 1.7))

	return s
}

// NewSingleSphereScene creates a minimal scene: one diffuse red sphere lit by
// a single overhead light. Useful as a smoke-test scene.
func NewSingleSphereScene() *Scene {
	s := New(DefaultBackground)

	red := material.New(core.NewVec3(1, 0, 0), [4]float64{1, 0, 0, 0}, 10, 1.0)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -3), 1.0, red))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 0), 1.0))

	return s
}

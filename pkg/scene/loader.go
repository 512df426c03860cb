package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
	"github.com/jp87/go-whitted-raytracer/pkg/geometry"
	"github.com/jp87/go-whitted-raytracer/pkg/lights"
	"github.com/jp87/go-whitted-raytracer/pkg/material"
)

// sceneFile is the YAML representation of a scene description
type sceneFile struct {
	Background *[3]float64             `yaml:"background"`
	Materials  map[string]materialFile `yaml:"materials"`
	Spheres    []sphereFile            `yaml:"spheres"`
	Plane      *planeFile              `yaml:"plane"`
	Lights     []lightFile             `yaml:"lights"`
}

type materialFile struct {
	Diffuse          [3]float64 `yaml:"diffuse"`
	Albedo           [4]float64 `yaml:"albedo"`
	SpecularExponent float64    `yaml:"specular_exponent"`
	RefractiveIndex  float64    `yaml:"refractive_index"`
}

type sphereFile struct {
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Material string     `yaml:"material"`
}

type planeFile struct {
	Height float64    `yaml:"height"`
	Even   [3]float64 `yaml:"even"`
	Odd    [3]float64 `yaml:"odd"`
}

type lightFile struct {
	Position  [3]float64 `yaml:"position"`
	Intensity float64    `yaml:"intensity"`
}

// Load reads a YAML scene description from disk and builds a validated Scene
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a validated Scene from YAML scene description bytes
func Parse(data []byte) (*Scene, error) {
	var sf sceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}

	background := DefaultBackground
	if sf.Background != nil {
		background = toVec3(*sf.Background)
	}
	s := New(background)

	materials := make(map[string]*material.Material, len(sf.Materials))
	for name, mf := range sf.Materials {
		if mf.RefractiveIndex == 0 {
			mf.RefractiveIndex = 1.0
		}
		materials[name] = material.New(toVec3(mf.Diffuse), mf.Albedo, mf.SpecularExponent, mf.RefractiveIndex)
	}

	for i, sph := range sf.Spheres {
		mat, ok := materials[sph.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sph.Material)
		}
		s.AddShape(geometry.NewSphere(toVec3(sph.Center), sph.Radius, mat))
	}

	if sf.Plane != nil {
		s.AddShape(geometry.NewCheckerPlane(sf.Plane.Height, toVec3(sf.Plane.Even), toVec3(sf.Plane.Odd)))
	}

	for _, lf := range sf.Lights {
		s.AddLight(lights.NewPointLight(toVec3(lf.Position), lf.Intensity))
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

package material

import "github.com/jp87/go-whitted-raytracer/pkg/core"

// Material describes the optical properties of a surface under the Phong
// shading model. Albedo holds the four blend weights applied to the diffuse,
// specular, reflected and refracted contributions; the weights are not
// required to sum to one. Materials are immutable once constructed and are
// shared by pointer among the shapes that use them.
type Material struct {
	Diffuse          core.Vec3  // Base surface color
	Albedo           [4]float64 // Diffuse, specular, reflective, refractive weights
	SpecularExponent float64    // Sharpness of the specular highlight
	RefractiveIndex  float64    // Index of refraction, 1.0 = no bending
}

// New creates a new material
func New(diffuse core.Vec3, albedo [4]float64, specularExponent, refractiveIndex float64) *Material {
	return &Material{
		Diffuse:          diffuse,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// Ivory is a matte off-white material with a mild highlight
func Ivory() *Material {
	return New(core.NewVec3(0.4, 0.4, 0.3), [4]float64{0.6, 0.3, 0.1, 0.0}, 50, 1.0)
}

// Glass is a transparent material dominated by refraction
func Glass() *Material {
	return New(core.NewVec3(0.6, 0.7, 0.8), [4]float64{0.0, 0.5, 0.1, 0.8}, 125, 1.5)
}

// RedRubber is a dull diffuse red material
func RedRubber() *Material {
	return New(core.NewVec3(0.3, 0.1, 0.1), [4]float64{0.9, 0.1, 0.0, 0.0}, 10, 1.0)
}

// Mirror reflects nearly everything that reaches it
func Mirror() *Material {
	return New(core.NewVec3(1.0, 1.0, 1.0), [4]float64{0.0, 10.0, 0.8, 0.0}, 1425, 1.0)
}

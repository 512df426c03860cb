package renderer

import (
	"math"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays for rendering. It sits at the world origin
// looking down the negative Z axis onto a virtual image plane at unit
// distance; there is no look-at transform.
type Camera struct {
	width      int
	height     int
	tanHalfFOV float64
	aspect     float64
}

// NewCamera creates a camera for the given image dimensions and vertical
// field of view in degrees
func NewCamera(width, height int, fovDegrees float64) *Camera {
	return &Camera{
		width:      width,
		height:     height,
		tanHalfFOV: math.Tan(fovDegrees * math.Pi / 360.0),
		aspect:     float64(width) / float64(height),
	}
}

// GetRay generates the primary ray through the center of pixel (i, j).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (2.0*(float64(i)+0.5)/float64(c.width) - 1.0) * c.tanHalfFOV * c.aspect
	y := -(2.0*(float64(j)+0.5)/float64(c.height) - 1.0) * c.tanHalfFOV

	direction := core.NewVec3(x, y, -1).Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}

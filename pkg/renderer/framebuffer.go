package renderer

import (
	"image"
	"image/color"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a dense W×H buffer of HDR colors. Component values are
// unbounded floats until ToRGBA quantizes them for encoding.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color stored at pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.pixels[j*fb.Width+i]
}

// Set stores a color at pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.pixels[j*fb.Width+i] = c
}

// ToRGBA clamps the HDR buffer to the displayable range and quantizes it to
// an 8-bit image. This is the only place color values are clamped.
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0.0, 1.0)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return img
}

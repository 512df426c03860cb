package renderer

import (
	"math"
	"testing"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
)

func TestCamera_GetRay_CenterPixel(t *testing.T) {
	camera := NewCamera(100, 100, 60.0)

	// The center of the image looks straight down -Z. With an even pixel
	// count the two middle pixels straddle the axis symmetrically.
	left := camera.GetRay(49, 49).Direction
	right := camera.GetRay(50, 50).Direction

	if math.Abs(left.X+right.X) > 1e-12 || math.Abs(left.Y+right.Y) > 1e-12 {
		t.Errorf("Expected symmetric center rays, got %v and %v", left, right)
	}
	if left.Z >= 0 {
		t.Errorf("Expected ray pointing down -Z, got %v", left)
	}
}

func TestCamera_GetRay_Normalized(t *testing.T) {
	camera := NewCamera(320, 240, 75.0)

	for _, pixel := range [][2]int{{0, 0}, {319, 0}, {0, 239}, {319, 239}, {160, 120}} {
		ray := camera.GetRay(pixel[0], pixel[1])
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Pixel %v: direction not normalized, length %f", pixel, ray.Direction.Length())
		}
		if ray.Origin != (core.Vec3{}) {
			t.Errorf("Pixel %v: expected origin at (0,0,0), got %v", pixel, ray.Origin)
		}
	}
}

func TestCamera_GetRay_Orientation(t *testing.T) {
	camera := NewCamera(200, 100, 60.0)

	topLeft := camera.GetRay(0, 0).Direction
	bottomRight := camera.GetRay(199, 99).Direction

	// Pixel (0,0) is top-left: negative x, positive y.
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top-left ray toward (-x, +y), got %v", topLeft)
	}
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected bottom-right ray toward (+x, -y), got %v", bottomRight)
	}
}

func TestCamera_GetRay_AspectRatio(t *testing.T) {
	// A 2:1 image spans twice as far horizontally as vertically.
	camera := NewCamera(200, 100, 60.0)

	edgeX := camera.GetRay(199, 49).Direction
	edgeY := camera.GetRay(99, 99).Direction

	tanX := edgeX.X / -edgeX.Z
	tanY := edgeY.Y / edgeY.Z // both negative, ratio positive

	halfFOV := math.Tan(60.0 * math.Pi / 360.0)
	expectedX := (2.0*199.5/200.0 - 1.0) * halfFOV * 2.0
	expectedY := -(2.0*99.5/100.0 - 1.0) * halfFOV

	if math.Abs(tanX-expectedX) > 1e-9 {
		t.Errorf("Expected horizontal extent %f, got %f", expectedX, tanX)
	}
	if math.Abs(tanY-(-expectedY)) > 1e-9 {
		t.Errorf("Expected vertical extent %f, got %f", -expectedY, tanY)
	}
}

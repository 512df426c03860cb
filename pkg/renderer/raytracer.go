package renderer

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/jp87/go-whitted-raytracer/pkg/core"
	"github.com/jp87/go-whitted-raytracer/pkg/geometry"
	"github.com/jp87/go-whitted-raytracer/pkg/scene"
)

// maxRayDistance bounds intersection queries; nothing in a scene is expected
// farther than this from the camera.
const maxRayDistance = 1000.0

// Config contains rendering configuration
type Config struct {
	Width      int     // Image width in pixels
	Height     int     // Image height in pixels
	FOV        float64 // Vertical field of view in degrees
	MaxDepth   int     // Maximum reflection/refraction recursion depth
	Epsilon    float64 // Minimum t for intersection queries, suppresses shadow acne
	ShadowBias float64 // Offset along the normal for secondary and shadow ray origins
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     768,
		FOV:        60.0,
		MaxDepth:   4,
		Epsilon:    1e-3,
		ShadowBias: 1e-3,
	}
}

// Raytracer renders a scene by recursive Whitted-style ray casting. All of
// its state is read-only during a render, so a single Raytracer is safe to
// share across the worker pool.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config
	logger zerolog.Logger
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(config.Width, config.Height, config.FOV),
		config: config,
		logger: zerolog.Nop(),
	}
}

// SetLogger attaches a logger for render progress events
func (rt *Raytracer) SetLogger(logger zerolog.Logger) {
	rt.logger = logger
}

// hitWorld finds the nearest intersection among all shapes in the scene
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := tMax

	for _, shape := range rt.scene.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// offsetOrigin shifts a secondary ray origin off the surface along the
// normal, on the side the new direction departs toward, so the ray cannot
// immediately re-intersect the surface it starts on.
func (rt *Raytracer) offsetOrigin(point, direction, normal core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(rt.config.ShadowBias))
	}
	return point.Add(normal.Multiply(rt.config.ShadowBias))
}

// inShadow reports whether the path from a hit point toward a light is
// blocked by any shape closer than the light itself. Shadowing is binary;
// there is no penumbra.
func (rt *Raytracer) inShadow(hit *geometry.HitRecord, lightDir core.Vec3, lightDistance float64) bool {
	origin := rt.offsetOrigin(hit.Point, lightDir, hit.Normal)
	shadowRay := core.NewRay(origin, lightDir)
	_, blocked := rt.hitWorld(shadowRay, rt.config.Epsilon, lightDistance)
	return blocked
}

// lightContribution accumulates the Phong diffuse and specular sums over all
// unoccluded lights
func (rt *Raytracer) lightContribution(ray core.Ray, hit *geometry.HitRecord) (diffuse, specular float64) {
	viewDir := ray.Direction.Negate()

	for _, light := range rt.scene.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDir := toLight.Multiply(1.0 / lightDistance)

		if rt.inShadow(hit, lightDir, lightDistance) {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		highlight := lightDir.Negate().Reflect(hit.Normal).Dot(viewDir)
		specular += light.Intensity * math.Pow(math.Max(0, highlight), hit.Material.SpecularExponent)
	}

	return diffuse, specular
}

// rayColor computes the color seen along a ray by recursive ray casting.
// The function is pure given (ray, depth) and the immutable scene, which is
// what allows pixels to be rendered in parallel without synchronization.
//
// Misses return the scene background at every depth; secondary rays get the
// same treatment as primary rays. Reflection and refraction rays are spawned
// only while depth < MaxDepth, so the deepest hits shade with direct
// lighting alone. Total internal reflection contributes exact zero.
func (rt *Raytracer) rayColor(ray core.Ray, depth int) core.Vec3 {
	if depth > rt.config.MaxDepth {
		return rt.scene.Background
	}

	hit, isHit := rt.hitWorld(ray, rt.config.Epsilon, maxRayDistance)
	if !isHit {
		return rt.scene.Background
	}
	mat := hit.Material

	var reflectColor, refractColor core.Vec3
	if depth < rt.config.MaxDepth {
		reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflectRay := core.NewRay(rt.offsetOrigin(hit.Point, reflectDir, hit.Normal), reflectDir)
		reflectColor = rt.rayColor(reflectRay, depth+1)

		// The face-oriented normal already points against the incoming ray,
		// so entering vs exiting only changes the index ratio.
		refractionRatio := mat.RefractiveIndex
		if hit.FrontFace {
			refractionRatio = 1.0 / mat.RefractiveIndex
		}
		if refractDir, ok := core.Refract(ray.Direction, hit.Normal, refractionRatio); ok {
			refractDir = refractDir.Normalize()
			refractRay := core.NewRay(rt.offsetOrigin(hit.Point, refractDir, hit.Normal), refractDir)
			refractColor = rt.rayColor(refractRay, depth+1)
		}
	}

	diffuse, specular := rt.lightContribution(ray, hit)

	// HDR accumulation: components are deliberately not clamped here,
	// quantization happens at image encoding time.
	white := core.NewVec3(1, 1, 1)
	return mat.Diffuse.Multiply(diffuse * mat.Albedo[0]).
		Add(white.Multiply(specular * mat.Albedo[1])).
		Add(reflectColor.Multiply(mat.Albedo[2])).
		Add(refractColor.Multiply(mat.Albedo[3]))
}

// renderBounds fills the framebuffer cells within the given pixel bounds.
// Bounds handed to different workers never overlap, so writes are disjoint.
func (rt *Raytracer) renderBounds(fb *Framebuffer, bounds TileBounds) {
	for j := bounds.Y0; j < bounds.Y1; j++ {
		for i := bounds.X0; i < bounds.X1; i++ {
			ray := rt.camera.GetRay(i, j)
			fb.Set(i, j, rt.rayColor(ray, 0))
		}
	}
}

// RenderPass renders the full frame sequentially and returns the HDR
// framebuffer
func (rt *Raytracer) RenderPass() *Framebuffer {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	rt.renderBounds(fb, TileBounds{X0: 0, Y0: 0, X1: rt.config.Width, Y1: rt.config.Height})
	return fb
}

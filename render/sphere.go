package render

import (
	"math"

	"github.com/echoflaresat/spherecast/colors"
	"github.com/echoflaresat/spherecast/vectors"
)

// Sphere is a solid sphere with a flat base colour. Radius must be > 0.
type Sphere struct {
	Centre vectors.Point3
	Radius float64
	Colour colors.RGB
}

// Scene is an ordered list of spheres. Order decides which hit colours a
// pixel: the last sphere hit wins, regardless of depth.
type Scene []Sphere

// Intersect returns whether ray enters the sphere and, if so, the nearest
// entry point. The point is meaningless when hit is false.
//
// Rays starting inside or on the sphere, and rays whose closest approach to
// the centre lies at or behind the origin, never hit. The second rule also
// rejects spheres straddling the ray origin whose centre is behind it.
func (s Sphere) Intersect(ray Ray3) (hit bool, point vectors.Point3) {
	if s.Centre.DistanceFrom(ray.Origin) <= s.Radius {
		return false, vectors.Origin()
	}

	dir := ray.Direction.Normalize()
	if dir == (vectors.Vec3{}) {
		return false, vectors.Origin()
	}

	toCentre := s.Centre.VecFrom(ray.Origin)
	tCenter := toCentre.Dot(dir)
	if tCenter <= 0 {
		return false, vectors.Origin()
	}

	perpDist := dir.Scale(tCenter).Sub(toCentre).Length()
	if perpDist > s.Radius {
		return false, vectors.Origin()
	}

	halfChord := math.Sqrt(s.Radius*s.Radius - perpDist*perpDist)
	return true, NewRay(ray.Origin, dir).At(tCenter - halfChord)
}

// Shade returns the cosine between the outward normal at hit and the
// direction from the centre to eye. It is not clamped: surfaces facing away
// from the eye give negative values.
func (s Sphere) Shade(hit, eye vectors.Point3) float64 {
	normal := s.Centre.VecTo(hit).Normalize()
	toEye := s.Centre.VecTo(eye).Normalize()
	return normal.Dot(toEye)
}

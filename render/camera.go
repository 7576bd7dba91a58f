package render

import (
	"math"

	"github.com/echoflaresat/spherecast/vectors"
)

// poleToYUp swaps Y and Z: polar coordinates put the pole on +Z while the
// world treats +Y as up.
var poleToYUp = vectors.FromRows([][]float64{
	{1, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
})

// Camera models a pinhole camera. Angles are in radians.
type Camera struct {
	Position vectors.Point3
	Yaw      float64 // rotation about the vertical axis
	Pitch    float64 // elevation above the horizon
	FOV      float64 // full horizontal angle
}

// NewCamera constructs a camera at position with yaw, pitch and field of view
// in radians.
func NewCamera(position vectors.Point3, yaw, pitch, fov float64) Camera {
	return Camera{
		Position: position,
		Yaw:      yaw,
		Pitch:    pitch,
		FOV:      fov,
	}
}

// ViewVec returns the unit direction the camera looks along, in world space.
func (c Camera) ViewVec() vectors.Vec3 {
	polar := vectors.Polar{R: 1, Theta: math.Pi/2 - c.Pitch, Phi: c.Yaw}
	return poleToYUp.Apply(polar.ToRect())
}

// TanHalfFOV returns tan(fov/2), the half-width of the canvas at unit distance.
func (c Camera) TanHalfFOV() float64 {
	return math.Tan(c.FOV / 2.0)
}

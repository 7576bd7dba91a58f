package vectors

import "math"

// Polar is a spherical-coordinate vector. Theta is the polar angle from the
// +Z pole, Phi the azimuth in the XY plane, both in radians.
type Polar struct {
	R, Theta, Phi float64
}

// ToRect returns r·(sinθ·cosφ, sinθ·sinφ, cosθ).
func (p Polar) ToRect() Vec3 {
	sinT, cosT := math.Sincos(p.Theta)
	sinP, cosP := math.Sincos(p.Phi)
	return Vec3{
		X: sinT * cosP,
		Y: sinT * sinP,
		Z: cosT,
	}.Scale(p.R)
}

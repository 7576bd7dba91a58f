package vectors

// Point3 is a position in world space. Displacements between points are Vec3.
type Point3 struct {
	X, Y, Z float64
}

func Origin() Point3 {
	return Point3{}
}

// ToVec returns the position vector of p.
func (p Point3) ToVec() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Add returns p translated by v.
func (p Point3) Add(v Vec3) Point3 {
	return p.ToVec().Add(v).ToPoint()
}

// VecFrom returns the displacement p - o, pointing from o to p.
func (p Point3) VecFrom(o Point3) Vec3 {
	return p.ToVec().Sub(o.ToVec())
}

// VecTo returns the displacement o - p, pointing from p to o.
func (p Point3) VecTo(o Point3) Vec3 {
	return p.VecFrom(o).Negate()
}

// DistanceFrom returns the Euclidean distance between p and o.
func (p Point3) DistanceFrom(o Point3) float64 {
	return p.VecFrom(o).Length()
}

package vectors

import (
	"log/slog"
	"math"
)

// Matrix3 is a 3×3 transform addressed as m[row][column].
type Matrix3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationX returns a right-handed rotation about the X axis. Angle in radians.
func RotationX(a float64) Matrix3 {
	s, c := math.Sincos(a)
	return Matrix3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns a right-handed rotation about the Y axis.
func RotationY(a float64) Matrix3 {
	s, c := math.Sincos(a)
	return Matrix3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns a right-handed rotation about the Z axis.
func RotationZ(a float64) Matrix3 {
	s, c := math.Sincos(a)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// FromRows builds a matrix from three rows of three values. Any other shape
// is logged and replaced by the identity matrix; callers that cannot accept
// the substitution must check the shape themselves.
func FromRows(rows [][]float64) Matrix3 {
	if len(rows) != 3 {
		slog.Warn("not a 3x3 matrix, using identity", "rows", len(rows), "data", rows)
		return Identity()
	}
	var m Matrix3
	for r, row := range rows {
		if len(row) != 3 {
			slog.Warn("not a 3x3 matrix, using identity", "row", r, "columns", len(row), "data", rows)
			return Identity()
		}
		copy(m[r][:], row)
	}
	return m
}

// At returns the element at (row, column).
func (m Matrix3) At(row, column int) float64 {
	return m[row][column]
}

// Apply returns m × v: component i is the dot product of row i with v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

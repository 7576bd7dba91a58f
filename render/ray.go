package render

import (
	"github.com/echoflaresat/spherecast/vectors"
)

// Ray3 is a half-line from Origin along Direction. Direction need not be
// unit length.
type Ray3 struct {
	Origin    vectors.Point3
	Direction vectors.Vec3
}

func NewRay(origin vectors.Point3, direction vectors.Vec3) Ray3 {
	return Ray3{Origin: origin, Direction: direction}
}

// At returns the point Origin + t·Direction.
func (r Ray3) At(t float64) vectors.Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

var worldUp = vectors.Vec3{X: 0, Y: 1, Z: 0}

// Frame is the virtual canvas of a camera for one image size: a plane at
// unit distance along the view direction, spanned by Right (growing with
// the column index) and Down (growing with the row index).
type Frame struct {
	Origin vectors.Point3
	Center vectors.Point3
	Right  vectors.Vec3 // scaled by tan(fov/2)
	Down   vectors.Vec3 // scaled by |Right| / aspect
	Width  int
	Height int
}

// NewFrame derives the canvas basis of camera for a width×height image.
func NewFrame(camera Camera, width, height int) Frame {
	view := camera.ViewVec()

	right := view.Cross(worldUp)
	if right.Length() < 1e-6 {
		right = vectors.Vec3{X: 1, Y: 0, Z: 0} // fallback when looking straight up or down
	}
	right = right.Normalize()
	down := view.Cross(right)

	aspect := float64(width) / float64(height)
	right = right.Scale(camera.TanHalfFOV())
	down = down.Scale(right.Length() / aspect)

	return Frame{
		Origin: camera.Position,
		Center: camera.Position.Add(view),
		Right:  right,
		Down:   down,
		Width:  width,
		Height: height,
	}
}

// Ray returns the ray through pixel (col, row).
func (f Frame) Ray(col, row int) Ray3 {
	u := (float64(col)/float64(f.Width) - 0.5) * 2
	v := (float64(row)/float64(f.Height) - 0.5) * 2

	world := f.Center.Add(f.Right.Scale(u).Add(f.Down.Scale(v)))
	return NewRay(f.Origin, world.VecFrom(f.Origin))
}

// SpawnRay returns the ray for the pixel at linear index col + row·width.
func SpawnRay(index, width, height int, camera Camera) Ray3 {
	return NewFrame(camera, width, height).Ray(index%width, index/width)
}

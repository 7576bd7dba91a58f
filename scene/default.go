package scene

import (
	"fmt"

	"github.com/echoflaresat/spherecast/colors"
	"github.com/echoflaresat/spherecast/render"
	"github.com/echoflaresat/spherecast/vectors"
)

// Default returns the built-in scene: a 10×10 grid of small red spheres on
// the y=0 plane, one unit apart, seen from straight above its middle.
func Default() Scene {
	spheres := make(render.Scene, 0, 100)
	for i := 0; i < 100; i++ {
		spheres = append(spheres, render.Sphere{
			Centre: vectors.Point3{X: float64(i % 10), Y: 0, Z: float64(i / 10)},
			Radius: 0.25,
			Colour: colors.Red(),
		})
	}
	return Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: render.NewCamera(
			vectors.Point3{X: 4.5, Y: 5.0, Z: 4.5},
			Radians(0),
			Radians(-90),
			Radians(90),
		),
		Spheres: spheres,
	}
}

// Overrides holds command-line values that replace scene settings when
// non-zero.
type Overrides struct {
	Width  int
	Height int
	FOVDeg float64
}

// Apply replaces the scene settings given in o.
func (s *Scene) Apply(o Overrides) error {
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, o.Width, o.Height)
	}
	if o.Width > 0 {
		s.Width = o.Width
	}
	if o.Height > 0 {
		s.Height = o.Height
	}
	if o.FOVDeg != 0 {
		if err := validateFOV(o.FOVDeg); err != nil {
			return err
		}
		s.Camera.FOV = Radians(o.FOVDeg)
	}
	return nil
}

package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/echoflaresat/spherecast/colors"
	"github.com/echoflaresat/spherecast/render"
	"github.com/echoflaresat/spherecast/vectors"
	"github.com/soniakeys/unit"
	"golang.org/x/exp/mmap"
)

var ErrInvalidScene = errors.New("invalid scene")

const (
	DefaultWidth  = 1000
	DefaultHeight = 1000
)

// Scene is everything the renderer needs: a camera, the ordered spheres
// and the output resolution.
type Scene struct {
	Width   int
	Height  int
	Camera  render.Camera
	Spheres render.Scene
}

// File is the JSON form of a scene. Angles are in degrees.
type File struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Camera  CameraSpec   `json:"camera"`
	Spheres []SphereSpec `json:"spheres"`
}

type CameraSpec struct {
	Position [3]float64 `json:"position"`
	YawDeg   float64    `json:"yaw_deg"`
	PitchDeg float64    `json:"pitch_deg"`
	FOVDeg   float64    `json:"fov_deg"`
}

type SphereSpec struct {
	Centre [3]float64 `json:"centre"`
	Radius float64    `json:"radius"`
	Colour []float64  `json:"colour"`
}

// Load reads and validates a JSON scene file.
func Load(path string) (Scene, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if _, err := reader.ReadAt(data, 0); err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a JSON scene.
func Parse(data []byte) (Scene, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return f.Build()
}

// Build converts the file form into a Scene. A zero width or height takes
// the default resolution.
func (f File) Build() (Scene, error) {
	if f.Width < 0 || f.Height < 0 {
		return Scene{}, fmt.Errorf("%w: size %dx%d", ErrInvalidScene, f.Width, f.Height)
	}
	if f.Width == 0 {
		f.Width = DefaultWidth
	}
	if f.Height == 0 {
		f.Height = DefaultHeight
	}

	camera, err := f.Camera.build()
	if err != nil {
		return Scene{}, err
	}

	spheres := make(render.Scene, 0, len(f.Spheres))
	for i, sp := range f.Spheres {
		s, err := sp.build()
		if err != nil {
			return Scene{}, fmt.Errorf("sphere %d: %w", i, err)
		}
		spheres = append(spheres, s)
	}

	return Scene{
		Width:   f.Width,
		Height:  f.Height,
		Camera:  camera,
		Spheres: spheres,
	}, nil
}

func (c CameraSpec) build() (render.Camera, error) {
	if err := validateFOV(c.FOVDeg); err != nil {
		return render.Camera{}, err
	}
	return render.NewCamera(
		point(c.Position),
		Radians(c.YawDeg),
		Radians(c.PitchDeg),
		Radians(c.FOVDeg),
	), nil
}

func (s SphereSpec) build() (render.Sphere, error) {
	if !(s.Radius > 0) {
		return render.Sphere{}, fmt.Errorf("%w: radius %v must be > 0", ErrInvalidScene, s.Radius)
	}
	colour, err := colors.FromSlice(s.Colour)
	if err != nil {
		return render.Sphere{}, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if !inUnitRange(colour) {
		slog.Warn("sphere colour outside [0,1], output will be clamped", "colour", s.Colour)
	}
	return render.Sphere{
		Centre: point(s.Centre),
		Radius: s.Radius,
		Colour: colour,
	}, nil
}

func validateFOV(deg float64) error {
	if !(deg > 0 && deg < 180) {
		return fmt.Errorf("%w: field of view %v° must be in (0, 180)", ErrInvalidScene, deg)
	}
	return nil
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

func point(p [3]float64) vectors.Point3 {
	return vectors.Point3{X: p[0], Y: p[1], Z: p[2]}
}

func inUnitRange(c colors.RGB) bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

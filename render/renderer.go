package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"sync"

	"github.com/echoflaresat/spherecast/colors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidSize reports a non-positive image size or a region outside the image.
var ErrInvalidSize = errors.New("invalid image size")

const frameCacheSize = 16

// Renderer casts one ray per pixel against every sphere of a scene.
// Rows are rendered in parallel; within a pixel, spheres are always tested
// in scene order so the result does not depend on Workers.
//
// The zero value is ready to use: it renders on GOMAXPROCS workers and
// discards progress.
type Renderer struct {
	Workers  int
	Progress Progress

	framesOnce sync.Once
	frames     *FrameCache
}

// NewRenderer returns a renderer using workers goroutines
// (GOMAXPROCS when workers <= 0). A nil progress discards reports.
func NewRenderer(workers int, progress Progress) *Renderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if progress == nil {
		progress = NoProgress{}
	}
	return &Renderer{
		Workers:  workers,
		Progress: progress,
	}
}

// frame returns the canvas frame for camera, cached across renders of the
// same renderer. Without a cache every call derives the frame afresh.
func (r *Renderer) frame(camera Camera, width, height int) Frame {
	r.framesOnce.Do(func() {
		cache, err := NewFrameCache(frameCacheSize)
		if err != nil {
			slog.Warn("frame cache disabled", "error", err)
			return
		}
		r.frames = cache
	})
	if r.frames == nil {
		return NewFrame(camera, width, height)
	}
	return r.frames.Frame(camera, width, height)
}

// Render produces the full width×height image of scene seen from camera.
func (r *Renderer) Render(ctx context.Context, camera Camera, scene Scene, width, height int) (*PixelBuffer, error) {
	return r.RenderRegion(ctx, camera, scene, width, height, image.Rect(0, 0, width, height))
}

// RenderRegion renders the pixels of region, a sub-rectangle of a
// width×height image, into a buffer the size of region. Rendering every
// tile of an image and stitching them gives the same pixels as Render.
//
// Cancelling ctx stops the render at the next row boundary.
func (r *Renderer) RenderRegion(ctx context.Context, camera Camera, scene Scene, width, height int, region image.Rectangle) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if region.Empty() || !region.In(image.Rect(0, 0, width, height)) {
		return nil, fmt.Errorf("%w: region %v outside %dx%d", ErrInvalidSize, region, width, height)
	}

	frame := r.frame(camera, width, height)
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	progress := r.Progress
	if progress == nil {
		progress = NoProgress{}
	}
	buf := NewPixelBuffer(region.Dx(), region.Dy())

	var (
		mu   sync.Mutex
		done int
	)
	rowDone := func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		progress.Report(float64(done) / float64(buf.Height))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	stopped := false
	for y := region.Min.Y; y < region.Max.Y; y++ {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		row := buf.Row(y - region.Min.Y)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for x := region.Min.X; x < region.Max.X; x++ {
				row[x-region.Min.X] = ShadePixel(frame, scene, x, y)
			}
			rowDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early without any goroutine observing the cancel.
	if stopped {
		return nil, ctx.Err()
	}
	return buf, nil
}

// ShadePixel returns the colour of pixel (col, row) of frame. Every sphere
// hit overwrites the previous one, so the last hit in scene order wins;
// pixels with no hit are black.
func ShadePixel(frame Frame, scene Scene, col, row int) colors.RGB {
	ray := frame.Ray(col, row)
	c := colors.Black()
	for _, s := range scene {
		hit, point := s.Intersect(ray)
		if !hit {
			continue
		}
		c = s.Colour.Scale(s.Shade(point, frame.Origin))
	}
	return c
}

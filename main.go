package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/echoflaresat/spherecast/imagefile"
	"github.com/echoflaresat/spherecast/render"
	"github.com/echoflaresat/spherecast/scene"
)

type config struct {
	scenePath     *string
	width, height *int
	fov           *float64
	workers       *int
	tiles         *string
	tile          *int
	out           *string
	quiet         *bool
	verbose       *bool
	showHelp      *bool
}

func defineFlags() config {
	return config{
		scenePath: flag.String("scene", "", "Scene JSON file; empty renders the built-in sphere grid"),
		width:     flag.Int("width", 0, "Image width in pixels (overrides the scene)"),
		height:    flag.Int("height", 0, "Image height in pixels (overrides the scene)"),
		fov:       flag.Float64("fov", 0, "Camera field of view in degrees (overrides the scene)"),

		workers: flag.Int("workers", 0, "Rows rendered in parallel; 0 uses GOMAXPROCS"),
		tiles:   flag.String("tiles", "", "Split the image into <cols>x<rows> tiles"),
		tile:    flag.Int("tile", -1, "Render only this tile index (row-major); -1 renders and merges all"),

		out: flag.String("out", "ray_tracing_engine_out.ppm", "Output image (.ppm, .png, .jpg, .tif, .bmp, .webp)"),

		quiet:    flag.Bool("quiet", false, "Hide render progress"),
		verbose:  flag.Bool("v", false, "Enable debug logging"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `spherecast - Sphere Scene Ray Caster

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Scene Options", []string{"scene", "width", "height", "fov"})
	printGroup("Rendering Options", []string{"workers", "tiles", "tile"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"quiet", "v", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

// job describes one invocation of the renderer.
type job struct {
	scene      scene.Scene
	workers    int
	cols, rows int
	tile       int
	quiet      bool
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}
	setupLogging(*cfg.verbose)

	j, err := buildJob(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("rendering", "out", *cfg.out, "width", j.scene.Width, "height", j.scene.Height,
		"spheres", len(j.scene.Spheres), "workers", j.workers)
	img, err := renderImage(ctx, j)
	if errors.Is(err, context.Canceled) {
		slog.Warn("keyboard interrupt received")
		stop()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := imagefile.Write(*cfg.out, img); err != nil {
		log.Fatalf("Failed to write %s: %v", *cfg.out, err)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// buildJob loads the scene and applies the command-line overrides.
func buildJob(cfg config) (job, error) {
	sc := scene.Default()
	if *cfg.scenePath != "" {
		var err error
		if sc, err = scene.Load(*cfg.scenePath); err != nil {
			return job{}, err
		}
	}
	if err := sc.Apply(scene.Overrides{Width: *cfg.width, Height: *cfg.height, FOVDeg: *cfg.fov}); err != nil {
		return job{}, err
	}

	j := job{scene: sc, workers: *cfg.workers, tile: *cfg.tile, quiet: *cfg.quiet}
	if *cfg.tiles != "" {
		cols, rows, err := imagefile.ParseLayout(*cfg.tiles)
		if err != nil {
			return job{}, err
		}
		if j.tile < -1 || j.tile >= cols*rows {
			return job{}, fmt.Errorf("tile %d out of range for %dx%d layout", j.tile, cols, rows)
		}
		j.cols, j.rows = cols, rows
	}
	return j, nil
}

func (j job) progress(task string) render.Progress {
	if j.quiet {
		return render.NoProgress{}
	}
	return render.NewTerminalProgress(os.Stdout, task)
}

// renderImage renders the whole image, a single tile of it, or every tile
// merged back together, depending on the job's tile layout.
func renderImage(ctx context.Context, j job) (image.Image, error) {
	sc := j.scene
	r := render.NewRenderer(j.workers, j.progress("Spawning rays"))

	if j.cols == 0 {
		buf, err := r.Render(ctx, sc.Camera, sc.Spheres, sc.Width, sc.Height)
		if err != nil {
			return nil, err
		}
		return buf.Image(), nil
	}

	rects, err := imagefile.TileRects(sc.Width, sc.Height, j.cols, j.rows)
	if err != nil {
		return nil, err
	}
	if j.tile >= 0 {
		buf, err := r.RenderRegion(ctx, sc.Camera, sc.Spheres, sc.Width, sc.Height, rects[j.tile])
		if err != nil {
			return nil, err
		}
		return buf.Image(), nil
	}

	tiles := make([]image.Image, len(rects))
	for i, rect := range rects {
		r.Progress = j.progress(fmt.Sprintf("Tile %d/%d", i+1, len(rects)))
		buf, err := r.RenderRegion(ctx, sc.Camera, sc.Spheres, sc.Width, sc.Height, rect)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		tiles[i] = buf.Image()
	}
	return imagefile.Merge(j.cols, j.rows, tiles)
}

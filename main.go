package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/df07/go-stochastic-raytracer/pkg/canvas"
	"github.com/df07/go-stochastic-raytracer/pkg/preview"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
	"github.com/df07/go-stochastic-raytracer/web/server"
)

// workersEnv overrides the worker count when --workers is not given
const workersEnv = "RAYTRACER_WORKERS"

// maxEnvWorkers caps the environment override
const maxEnvWorkers = 128

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "raytracer",
		Short: "Stochastic Monte Carlo ray tracer",
		Long:  "Renders spheres, moving spheres and light panels with diffuse, metal, glass and emissive materials.",
	}
	root.AddCommand(newRenderCmd(), newScenesCmd(), newServeCmd())
	return root
}

// renderOptions holds the render command flags
type renderOptions struct {
	width   int
	height  int
	samples int
	scene   string
	sampler string
	objects int
	seed    int64
	workers int
	output  string
	preview bool
	columns int
	caption bool
}

func defaultRenderOptions() renderOptions {
	config := renderer.DefaultConfig()
	return renderOptions{
		width:   config.Width,
		height:  config.Height,
		samples: config.SamplesPerPixel,
		scene:   "predefined",
		sampler: "jittered",
		objects: scene.DefaultObjectCount,
		seed:    config.Seed,
		output:  "output",
		columns: preview.DefaultColumns,
	}
}

// request validates the flags and converts them to an image request
func (o renderOptions) request() (canvas.Request, error) {
	if _, err := scene.Lookup(o.scene); err != nil {
		return canvas.Request{}, err
	}
	if o.width < 1 || o.width > math.MaxUint16 || o.height < 1 || o.height > math.MaxUint16 {
		return canvas.Request{}, fmt.Errorf("image size must be between 1 and %d, got %dx%d", math.MaxUint16, o.width, o.height)
	}
	if o.samples < 1 || o.samples > math.MaxUint8 {
		return canvas.Request{}, fmt.Errorf("samples must be between 1 and %d, got %d", math.MaxUint8, o.samples)
	}
	if o.sampler != "jittered" && o.sampler != "random" {
		return canvas.Request{}, fmt.Errorf("sampler must be jittered or random, got %q", o.sampler)
	}
	return canvas.Request{
		Width:           uint16(o.width),
		Height:          uint16(o.height),
		SamplesPerPixel: uint8(o.samples),
		RandomScene:     o.scene == "random",
		Jittered:        o.sampler == "jittered",
		ObjectCount:     o.objects,
		Seed:            o.seed,
		Workers:         o.workers,
	}, nil
}

// outputPath returns output/<scene>/render_<timestamp>.png
func (o renderOptions) outputPath(now time.Time) string {
	return filepath.Join(o.output, o.scene, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// resolveWorkers applies the environment override to an unset flag
func resolveWorkers(flagValue int, flagSet bool, env string) int {
	if flagSet || env == "" {
		return flagValue
	}
	if n, err := strconv.Atoi(env); err == nil && n > 0 && n <= maxEnvWorkers {
		return n
	}
	return flagValue
}

// isPerfectSquare reports whether jittered sampling uses exactly n samples
func isPerfectSquare(n int) bool {
	root := int(math.Sqrt(float64(n)))
	return root*root == n
}

func newRenderCmd() *cobra.Command {
	opts := defaultRenderOptions()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		Example: `  raytracer render --scene random --objects 40 --samples 64
  raytracer render --width 400 --height 250 --preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.workers = resolveWorkers(opts.workers, cmd.Flags().Changed("workers"), os.Getenv(workersEnv))
			return runRender(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	flags.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	flags.IntVarP(&opts.samples, "samples", "s", opts.samples, "samples per pixel (1-255)")
	flags.StringVar(&opts.scene, "scene", opts.scene, "scene to render (see 'raytracer scenes')")
	flags.StringVar(&opts.sampler, "sampler", opts.sampler, "sub-pixel sampling: jittered or random")
	flags.IntVar(&opts.objects, "objects", opts.objects, "number of spheres in the random scene")
	flags.Int64Var(&opts.seed, "seed", opts.seed, "seed for scene generation and sampling")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "parallel workers, 0 for one per CPU (env "+workersEnv+")")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	flags.BoolVar(&opts.preview, "preview", false, "print a preview to the terminal")
	flags.IntVar(&opts.columns, "preview-columns", opts.columns, "preview width in terminal cells")
	flags.BoolVar(&opts.caption, "annotate", false, "draw scene and render settings onto the image")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	req, err := opts.request()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)).With(
		"render_id", uuid.NewString(), "scene", opts.scene)
	req.Logger = renderer.NewSlogLogger(logger)

	if req.Jittered && !isPerfectSquare(opts.samples) {
		root := int(math.Sqrt(float64(opts.samples)))
		logger.Warn("jittered sampling uses a square grid; image will be scaled by n²/samples",
			"samples", opts.samples, "grid_samples", root*root)
	}

	pixels, stats, err := canvas.MakeImageWithStats(cmd.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("render interrupted")
		}
		return err
	}

	img := canvas.ToRGBA(pixels, opts.width, opts.height)
	caption := ""
	if opts.caption {
		caption = fmt.Sprintf("%s %dx%d %dspp %s %v", opts.scene, opts.width, opts.height,
			opts.samples, opts.sampler, stats.Duration.Round(time.Millisecond))
	}

	path := opts.outputPath(time.Now())
	if err := canvas.SavePNG(path, img, caption); err != nil {
		return err
	}
	logger.Info("render saved", "path", path, "duration", stats.Duration.Round(time.Millisecond))

	if opts.preview {
		return preview.NewTerminal(opts.columns).Fprint(cmd.OutOrStdout(), img)
	}
	return nil
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List available scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, info := range scene.List() {
				fmt.Fprintf(out, "%-12s %s\n", info.ID, info.DisplayName)
				if info.Description != "" {
					fmt.Fprintf(out, "%-12s %s\n", "", info.Description)
				}
			}
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var port, workers int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers = resolveWorkers(workers, cmd.Flags().Changed("workers"), os.Getenv(workersEnv))
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			return server.NewServer(port, workers, logger).Start(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to serve on")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers per render, 0 for one per CPU (env "+workersEnv+")")
	return cmd
}

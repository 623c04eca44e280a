// Command rray renders a scene description to a PNG file: parse flags,
// build the scene graph, render, encode. Grounded on the teacher's root
// main.go Config/parseFlags/showHelp shape, re-bound to kingpin for flag
// parsing and zap for structured logging (spec §6, AMBIENT STACK).
package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/davelpz/rray/pkg/render"
	"github.com/davelpz/rray/pkg/rrerr"
	"github.com/davelpz/rray/pkg/scenefmt"
)

// Config holds the fully-resolved CLI configuration, mirroring the
// teacher's own Config struct.
type Config struct {
	Width   int
	Height  int
	Scene   string
	Output  string
	AA      int
	Workers int
}

var (
	app = kingpin.New("rray", "A CPU recursive ray tracer.")

	flagWidth   = app.Flag("width", "Output image width in pixels.").Default("800").Int()
	flagHeight  = app.Flag("height", "Output image height in pixels.").Default("600").Int()
	flagScene   = app.Flag("scene", "Path to the scene description file (YAML or JSON).").Required().String()
	flagOutput  = app.Flag("output", "Path to write the rendered PNG to.").Default("output.png").String()
	flagAA      = app.Flag("aa", "Antialiasing supersamples per pixel axis (1 = no AA).").Default("1").Int()
	flagWorkers = app.Flag("workers", "Parallel render workers (0 = GOMAXPROCS).").Default("0").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := Config{
		Width:   *flagWidth,
		Height:  *flagHeight,
		Scene:   *flagScene,
		Output:  *flagOutput,
		AA:      *flagAA,
		Workers: *flagWorkers,
	}

	logger := newLogger()
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Errorw("render failed", "error", err)
		os.Exit(exitCodeFor(err))
	}
}

func newLogger() *zap.SugaredLogger {
	l, err := zap.NewProduction()
	if err != nil {
		// Structured logging setup itself failed; fall back to a no-op
		// logger rather than crash before we can report the real error.
		l = zap.NewNop()
	}
	return l.Sugar()
}

func run(cfg Config, logger *zap.SugaredLogger) error {
	start := time.Now()
	logger.Infow("parsing scene", "path", cfg.Scene)

	file, err := scenefmt.Parse(cfg.Scene)
	if err != nil {
		return err
	}

	sceneDir := filepath.Dir(cfg.Scene)

	cam, world, err := scenefmt.Build(file, cfg.Width, cfg.Height, sceneDir)
	if err != nil {
		return err
	}
	logger.Infow("scene built", "shapes_at_root", len(world.Root.Children()), "lights", len(world.Lights))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := render.Options{AA: cfg.AA, Workers: workers}

	logger.Infow("rendering", "width", cfg.Width, "height", cfg.Height, "aa", cfg.AA, "workers", workers)
	img, err := render.Image(context.Background(), world, cam, opts)
	if err != nil {
		return err
	}

	if err := render.WritePNG(img, cfg.Output); err != nil {
		return err
	}

	logger.Infow("render complete", "output", cfg.Output, "elapsed", time.Since(start).String())
	return nil
}

// exitCodeFor maps an rrerr kind to a process exit code (spec §6).
func exitCodeFor(err error) int {
	switch {
	case rrerr.Is(err, rrerr.KindConfig):
		return 2
	case rrerr.Is(err, rrerr.KindParse):
		return 3
	case rrerr.Is(err, rrerr.KindIO):
		return 4
	case rrerr.Is(err, rrerr.KindGeometry):
		return 5
	default:
		return 1
	}
}

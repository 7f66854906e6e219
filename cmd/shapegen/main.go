// Command shapegen builds the shapes of a scene file and writes a PNG
// preview per shape.
//
// Usage:
//
//	shapegen -scene dashboard.yaml -out previews -size 256
//	shapegen -scene dashboard.yaml -out previews -watch -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/gpu"
	"github.com/gogpu/shapes/raster"
	"github.com/gogpu/shapes/scene"
)

// cacheSize bounds how many built shapes are kept between watch rebuilds.
const cacheSize = 256

// config holds the command line settings.
type config struct {
	scene   string
	out     string
	size    int
	padding int
	watch   bool
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "shapegen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)
	defer shapes.SetLogger(nil)

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}
	c := scene.NewCache(cacheSize)
	if err := generate(cfg, c, logger); err != nil {
		if !cfg.watch {
			return err
		}
		logger.Error("build failed", slog.Any("error", err))
	}
	if !cfg.watch {
		return nil
	}
	return watch(ctx, cfg, c, logger, nil)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("shapegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scene, "scene", "scene.yaml", "scene file")
	fs.StringVar(&cfg.out, "out", ".", "output directory for PNG previews")
	fs.IntVar(&cfg.size, "size", 256, "preview width and height in pixels")
	fs.IntVar(&cfg.padding, "padding", 8, "preview padding in pixels")
	fs.BoolVar(&cfg.watch, "watch", false, "rebuild when the scene file changes")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.size <= 0 {
		return cfg, fmt.Errorf("-size must be positive, got %d", cfg.size)
	}
	return cfg, nil
}

// generate builds every shape of the scene and writes <name>.png into the
// output directory.
func generate(cfg config, c *scene.Cache, logger *slog.Logger) error {
	start := time.Now()
	doc, err := scene.Load(cfg.scene)
	if err != nil {
		return err
	}
	built, err := c.Build(doc)
	if err != nil {
		return err
	}

	opts := raster.Options{Width: cfg.size, Height: cfg.size, Padding: cfg.padding}
	for _, b := range built {
		bufs, err := gpu.Pack(b.Mesh)
		if err != nil {
			return fmt.Errorf("shape %q: %w", b.Name, err)
		}
		img, err := raster.Rasterize(b.Mesh, opts)
		if err != nil {
			return fmt.Errorf("shape %q: %w", b.Name, err)
		}
		path := filepath.Join(cfg.out, b.Name+".png")
		if err := raster.SavePNG(path, img); err != nil {
			return fmt.Errorf("shape %q: %w", b.Name, err)
		}
		logger.Info("shape written",
			slog.String("name", b.Name),
			slog.String("kind", b.Kind),
			slog.Int("vertices", b.Mesh.VertexCount()),
			slog.Int("triangles", b.Mesh.TriangleCount()),
			slog.Int("vertex_bytes", len(bufs.Vertices)),
			slog.String("path", path))
	}
	hits, misses := c.Stats()
	logger.Info("scene built",
		slog.String("scene", cfg.scene),
		slog.Int("shapes", len(built)),
		slog.Uint64("cache_hits", hits),
		slog.Uint64("cache_misses", misses),
		slog.Duration("took", time.Since(start)))
	return nil
}

// watch regenerates the previews whenever the scene file is written or
// replaced, until ctx is done. The directory is watched rather than the
// file so editors that save by renaming keep working. rebuilt, when not
// nil, receives the result of every regeneration.
func watch(ctx context.Context, cfg config, c *scene.Cache, logger *slog.Logger, rebuilt chan<- error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target, err := filepath.Abs(cfg.scene)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Info("watching", slog.String("scene", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("scene changed", slog.String("op", event.Op.String()))
			err := generate(cfg, c, logger)
			if err != nil {
				logger.Error("build failed", slog.Any("error", err))
			}
			if rebuilt != nil {
				select {
				case rebuilt <- err:
				case <-ctx.Done():
					return nil
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("watch events dropped", slog.Any("error", err))
				continue
			}
			return err
		}
	}
}

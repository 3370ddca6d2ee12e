// internal/app/run.go

// Package app wires configuration, data and observability to a drawing
// backend. The backend itself is chosen by the binaries under cmd/.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/waozixyz/volcanomap/dataset"
	httpadapter "github.com/waozixyz/volcanomap/internal/adapter/http"
	"github.com/waozixyz/volcanomap/internal/config"
	"github.com/waozixyz/volcanomap/internal/observability"
	"github.com/waozixyz/volcanomap/mapview"
	"github.com/waozixyz/volcanomap/render"
	"github.com/waozixyz/volcanomap/render/widget"
)

// Backend is a drawing backend as seen by the app: where textures are uploaded,
// how detail pages are opened and how the frame loop is run.
type Backend struct {
	Textures  render.TextureLoader
	Navigator render.Navigator
	Run       func(ctx context.Context, scene render.Scene, cfg render.WindowConfig, logger *slog.Logger) error
}

// BackendFactory builds a Backend once logging is configured.
type BackendFactory func(logger *slog.Logger) Backend

// RendererBackend adapts a loop-style render.Renderer (raylib) to a Backend.
func RendererBackend(renderer render.Renderer) Backend {
	return Backend{
		Textures:  renderer,
		Navigator: renderer,
		Run: func(ctx context.Context, scene render.Scene, cfg render.WindowConfig, logger *slog.Logger) error {
			return Loop(ctx, renderer, scene, cfg, logger)
		},
	}
}

// Loop is the renderer-agnostic main loop: poll, update, draw, until the window
// closes or ctx is cancelled.
func Loop(ctx context.Context, renderer render.Renderer, scene render.Scene, cfg render.WindowConfig, logger *slog.Logger) error {
	if err := renderer.Init(cfg); err != nil {
		renderer.Cleanup()
		return fmt.Errorf("initialize renderer: %w", err)
	}
	defer renderer.Cleanup()

	logger.Info("entering main loop")
	frames := 0
	for !renderer.ShouldClose() && ctx.Err() == nil {
		scene.HandleInput(renderer.PollEvents())
		renderer.SetPointerCursor(scene.WantsPointerCursor())

		renderer.BeginFrame()
		scene.Draw(renderer.Canvas())
		renderer.EndFrame()
		frames++
	}
	logger.Info("exiting main loop", "frames", frames)
	return nil
}

// newMetrics is swapped in tests to avoid registering twice on the default registry.
var newMetrics = observability.NewMetrics

// Start wires every component from cfg and blocks in the backend's frame loop.
func Start(ctx context.Context, cfg *config.Config, newBackend BackendFactory) error {
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := newMetrics()
	clock := clockwork.NewRealClock()

	table, report, err := loadTable(cfg.DataPath, logger, metrics)
	if err != nil {
		return err
	}

	theme := mapview.DefaultTheme()
	if cfg.ThemeFile != "" {
		if theme, err = mapview.LoadTheme(cfg.ThemeFile); err != nil {
			return err
		}
	}

	detail, err := ResolveDetailURL(cfg.DetailURL)
	if err != nil {
		return err
	}

	backend := newBackend(logger)
	images := mapview.NewImageLoader(cfg.ImagePath, logger, clock, metrics)
	scene := mapview.New(table, mapview.Options{
		Theme:     theme,
		DetailURL: detail,
		Logger:    logger,
		Clock:     clock,
		Metrics:   metrics,
		Images:    images,
		Widget:    widget.NewDropdown(theme.ControlFill, theme.Ink),
		Textures:  backend.Textures,
		Navigator: backend.Navigator,
	})
	scene.Resize(float32(cfg.WindowWidth), float32(cfg.WindowHeight))

	if cfg.MetricsAddr != "" {
		status := startupStatus{records: table.Len(), skipped: len(report.Skipped), images: images}
		srv := httpadapter.NewServer(cfg.MetricsAddr, status, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown error", "error", err)
			}
		}()
	}

	images.Start()
	return backend.Run(ctx, scene, windowConfig(cfg, theme), logger)
}

func windowConfig(cfg *config.Config, theme mapview.Theme) render.WindowConfig {
	wc := render.DefaultWindowConfig()
	wc.Width = cfg.WindowWidth
	wc.Height = cfg.WindowHeight
	wc.TargetFPS = cfg.TargetFPS
	wc.DefaultBg = theme.Background
	return wc
}

// loadTable reads the dataset and reports every skipped row.
func loadTable(path string, logger *slog.Logger, metrics *observability.Metrics) (*dataset.Table, *dataset.Report, error) {
	table, report, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}

	for _, skipped := range report.Skipped {
		logger.Warn("row skipped", "row", skipped.Row, "column", skipped.Column, "error", skipped.Err)
	}
	if metrics != nil {
		metrics.RecordsLoaded.Set(float64(table.Len()))
		metrics.RecordsSkipped.Add(float64(len(report.Skipped)))
	}
	logger.Info("volcano data loaded", "path", path, "records", table.Len(), "skipped", len(report.Skipped))
	return table, report, nil
}

var errMapLoading = errors.New("map image still loading")

// startupStatus feeds /readyz from the loaded table and the map image loader.
type startupStatus struct {
	records int
	skipped int
	images  *mapview.ImageLoader
}

func (s startupStatus) StartupStatus(_ context.Context) (httpadapter.StartupStatus, error) {
	st := httpadapter.StartupStatus{Records: s.records, Skipped: s.skipped, MapImage: s.images.State()}
	if st.MapImage == mapview.ImageLoading {
		return st, errMapLoading
	}
	return st, nil
}

// ResolveDetailURL turns a relative detail page path into an absolute file:// URL.
// URLs that already carry a scheme are returned unchanged.
func ResolveDetailURL(base string) (string, error) {
	if u, err := url.Parse(base); err == nil && len(u.Scheme) > 1 {
		return base, nil
	}

	path, query, hasQuery := strings.Cut(base, "?")
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve DETAIL_URL %q: %w", base, err)
	}

	out := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	if hasQuery {
		out += "?" + query
	}
	return out, nil
}

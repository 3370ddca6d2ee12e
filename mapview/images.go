package mapview

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/waozixyz/volcanomap/internal/observability"
	"github.com/waozixyz/volcanomap/render"
)

// Map image load states, as reported by ImageLoader.State.
const (
	ImageLoading  = "loading"
	ImageLoaded   = "loaded"
	ImageFallback = "fallback"
)

type imageResult struct {
	data []byte
	err  error
}

// ImageLoader reads the background map off the render thread and hands the
// bytes back to Poll, which uploads them on the render thread.
type ImageLoader struct {
	path    string
	logger  *slog.Logger
	clock   clockwork.Clock
	metrics *observability.Metrics

	result  chan imageResult
	started time.Time

	texture render.Texture
	settled atomic.Bool
	loaded  atomic.Bool
}

// NewImageLoader prepares a loader for path. Nothing is read until Start.
func NewImageLoader(path string, logger *slog.Logger, clock clockwork.Clock, metrics *observability.Metrics) *ImageLoader {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ImageLoader{
		path:    path,
		logger:  logger,
		clock:   clock,
		metrics: metrics,
		result:  make(chan imageResult, 1),
	}
}

// Start begins reading the file in the background.
func (l *ImageLoader) Start() {
	l.started = l.clock.Now()
	go func() {
		if l.path == "" {
			l.result <- imageResult{err: errors.New("no map image configured")}
			return
		}
		data, err := os.ReadFile(l.path)
		l.result <- imageResult{data: data, err: err}
	}()
}

// Poll checks for a finished read without blocking and, if one arrived,
// decodes it through tl. It is a no-op once the load has settled.
func (l *ImageLoader) Poll(tl render.TextureLoader) {
	if l.settled.Load() {
		return
	}

	select {
	case res := <-l.result:
		l.finish(tl, res)
	default:
	}
}

func (l *ImageLoader) finish(tl render.TextureLoader, res imageResult) {
	defer l.settled.Store(true)

	elapsed := l.clock.Since(l.started)
	tex, err := l.upload(tl, res)
	if err != nil {
		l.logger.Error("map image load failed", "path", l.path, "error", err, "elapsed", elapsed)
		l.setGauge(0)
		return
	}

	l.texture = tex
	l.loaded.Store(true)
	l.setGauge(1)
	l.logger.Info("map image loaded", "path", l.path, "width", tex.Width(), "height", tex.Height(), "elapsed", elapsed)
}

func (l *ImageLoader) upload(tl render.TextureLoader, res imageResult) (render.Texture, error) {
	if res.err != nil {
		return nil, res.err
	}
	if tl == nil {
		return nil, errors.New("no texture loader")
	}

	ext := strings.ToLower(filepath.Ext(l.path))
	tex, err := tl.LoadTexture(res.data, ext)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.path, err)
	}
	if tex == nil || tex.Width() <= 0 || tex.Height() <= 0 {
		return nil, fmt.Errorf("decode %s: empty image", l.path)
	}
	return tex, nil
}

func (l *ImageLoader) setGauge(v float64) {
	if l.metrics != nil {
		l.metrics.MapImageLoaded.Set(v)
	}
}

// Texture returns the uploaded map, or nil when not (yet) available.
func (l *ImageLoader) Texture() render.Texture {
	if !l.loaded.Load() {
		return nil
	}
	return l.texture
}

// Size returns the natural size of the loaded map, or the zero ImageSize.
func (l *ImageLoader) Size() ImageSize {
	tex := l.Texture()
	if tex == nil {
		return ImageSize{}
	}
	return ImageSize{W: tex.Width(), H: tex.Height()}
}

// Settled reports whether the load finished, successfully or not.
func (l *ImageLoader) Settled() bool { return l.settled.Load() }

// Loaded reports whether the map is available for drawing.
func (l *ImageLoader) Loaded() bool { return l.loaded.Load() }

// State is safe to call from any goroutine.
func (l *ImageLoader) State() string {
	switch {
	case !l.settled.Load():
		return ImageLoading
	case l.loaded.Load():
		return ImageLoaded
	default:
		return ImageFallback
	}
}

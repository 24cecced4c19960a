// Package app runs the gesture volume control loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/logging"
	"github.com/ayusman/mudra/internal/render"
)

// ErrInvalidRange is returned by New when the sink reports a range whose
// minimum exceeds its maximum.
var ErrInvalidRange = errors.New("invalid volume range")

// Config holds loop timing.
type Config struct {
	// TargetFPS caps the cycle rate; zero disables pacing.
	TargetFPS int
	// PollInterval bounds the quit-key wait at the end of each cycle.
	PollInterval time.Duration
}

// Recorder journals applied volume changes.
type Recorder interface {
	RecordVolume(level float64, percent int) error
}

// Deps are the resources the loop drives. The caller owns them and closes
// them after Run returns.
type Deps struct {
	Camera   capture.Camera
	Detector detector.Detector
	Sink     audio.Sink
	Renderer render.Renderer
	Logger   logrus.FieldLogger // optional
}

// Stats counts what the loop has done.
type Stats struct {
	Cycles      int
	Skipped     int
	Frames      int
	Hands       int
	Commands    int
	SetFailures int
}

// App sequences capture, detection, control and rendering.
type App struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	sink       audio.Sink
	renderer   render.Renderer
	recorder   Recorder
	controller *gesture.Controller
	limiter    *rate.Limiter
	log        *logrus.Entry

	mu            sync.RWMutex
	enabled       bool
	quitRequested bool
	onPercent     func(percent int)

	stats        Stats
	lastRecorded int
	lastShown    int
}

// New queries the volume range once and builds the loop. A range query
// failure is fatal.
func New(config Config, deps Deps) (*App, error) {
	if deps.Camera == nil || deps.Detector == nil || deps.Sink == nil || deps.Renderer == nil {
		return nil, errors.New("camera, detector, sink and renderer are required")
	}

	volumeRange, err := deps.Sink.Range()
	if err != nil {
		return nil, fmt.Errorf("query volume range: %w", err)
	}
	if volumeRange.Min > volumeRange.Max {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, volumeRange.Min, volumeRange.Max)
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	log := logging.Component(logger, "loop")
	if volumeRange.Degenerate() {
		log.WithField("volume", volumeRange.Min).Warn("volume range has zero width, gestures cannot change the level")
	}

	a := &App{
		config:       config,
		camera:       deps.Camera,
		detector:     deps.Detector,
		sink:         deps.Sink,
		renderer:     deps.Renderer,
		controller:   gesture.NewController(volumeRange),
		log:          log,
		enabled:      true,
		lastRecorded: -1,
		lastShown:    -1,
	}

	if config.TargetFPS > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(config.TargetFPS), 1)
	}

	return a, nil
}

// VolumeRange returns the range queried at construction.
func (a *App) VolumeRange() audio.Range {
	return a.controller.Range()
}

// SetRecorder attaches a journal for applied volume changes. Call it
// before Run.
func (a *App) SetRecorder(r Recorder) {
	a.recorder = r
}

// SetEnabled pauses or resumes applying volume commands. Feedback keeps
// being drawn while paused.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether volume commands are applied.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// RequestQuit ends the loop at the end of the current cycle.
func (a *App) RequestQuit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quitRequested = true
}

func (a *App) isQuitRequested() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.quitRequested
}

// OnPercent registers a callback for changes of the displayed volume
// percentage. It runs on the loop's goroutine.
func (a *App) OnPercent(fn func(percent int)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onPercent = fn
}

// Stats returns a snapshot of the loop counters.
func (a *App) Stats() Stats {
	return a.stats
}

// Run cycles until the user quits or ctx is cancelled. A quit returns nil;
// cancellation returns ctx.Err().
func (a *App) Run(ctx context.Context) error {
	r := a.controller.Range()
	a.log.WithFields(logrus.Fields{
		"volume_min": r.Min,
		"volume_max": r.Max,
		"target_fps": a.config.TargetFPS,
	}).Info("control loop started")

	defer func() {
		a.log.WithFields(logrus.Fields{
			"frames":       a.stats.Frames,
			"skipped":      a.stats.Skipped,
			"commands":     a.stats.Commands,
			"set_failures": a.stats.SetFailures,
		}).Info("control loop stopped")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if a.isQuitRequested() {
			return nil
		}

		shown, quit := a.Step()
		if quit {
			return nil
		}
		if !shown {
			// no frame this time; retry straight away
			continue
		}

		if a.limiter != nil {
			if err := a.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
		}
	}
}

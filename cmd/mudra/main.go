package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/audio"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/logging"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

// HighGUI and the tray need the main OS thread on macOS.
func init() {
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Mudra - Hand Gesture Volume Control")

	cfg := config.FromEnv(config.Default())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logFile := ""
	if cfg.LogToFile {
		logFile = cfg.LogPath()
	}
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		stop()
		logger.WithError(err).Fatal("mudra stopped")
	}
}

func run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	log := logging.Component(logger, "main")

	camera := capture.NewCamera(cfg.CameraID, cfg.FrameWidth, cfg.FrameHeight)
	if err := camera.Open(); err != nil {
		return err
	}
	defer camera.Close()
	camera.SetFPS(cfg.TargetFPS)

	width, height := camera.Size()
	log.WithFields(logging.Fields{"camera": cfg.CameraID, "width": width, "height": height}).Info("camera opened")

	sink, err := audio.Open()
	if err != nil {
		return fmt.Errorf("open volume control: %w", err)
	}

	det, err := detector.NewMediaPipeDetector(detector.Config{
		MaxHands:        cfg.MaxHands,
		MinConfidence:   cfg.DetectionConfidence,
		MinTrackingConf: cfg.TrackingConfidence,
	})
	if err != nil {
		return fmt.Errorf("start hand detector: %w", err)
	}
	defer det.Close()

	window := render.NewWindow(cfg.WindowTitle)
	defer window.Close()

	loop, err := app.New(app.Config{
		TargetFPS:    cfg.TargetFPS,
		PollInterval: cfg.PollInterval,
	}, app.Deps{
		Camera:   camera,
		Detector: det,
		Sink:     sink,
		Renderer: window,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if cfg.Journal {
		if closeJournal := openJournal(cfg, loop, log); closeJournal != nil {
			defer closeJournal()
		}
	}

	if cfg.Tray {
		t := tray.New()
		loop.SetEnabled(t.IsEnabled())
		t.OnToggle(func(enabled bool) {
			loop.SetEnabled(enabled)
			log.WithField("enabled", enabled).Info("gesture control toggled")
		})
		t.OnQuit(loop.RequestQuit)
		loop.OnPercent(t.SetVolume)
		t.Start()
		defer t.Stop()
	}

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openJournal starts a session and attaches its recorder to the loop. The
// journal is optional; failures are logged and nil is returned.
func openJournal(cfg config.Config, loop *app.App, log *logrus.Entry) func() {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.WithError(err).Warn("journal disabled: create data directory")
		return nil
	}

	st, err := store.New(cfg.DBPath())
	if err != nil {
		log.WithError(err).Warn("journal disabled: open database")
		return nil
	}

	if n, err := st.Sessions().EndAbandoned(); err != nil {
		log.WithError(err).Warn("end abandoned sessions")
	} else if n > 0 {
		log.WithField("sessions", n).Info("ended sessions left open by an earlier run")
	}

	r := loop.VolumeRange()
	session, err := st.Sessions().Start(r.Min, r.Max)
	if err != nil {
		st.Close()
		log.WithError(err).Warn("journal disabled: start session")
		return nil
	}

	loop.SetRecorder(st.Recorder(session.ID))
	log.WithFields(logging.Fields{"session": session.ID, "db": st.Path()}).Info("journal opened")

	return func() {
		if err := st.Sessions().End(session.ID); err != nil {
			log.WithError(err).Warn("end journal session")
		}
		if err := st.Close(); err != nil {
			log.WithError(err).Warn("close journal")
		}
	}
}

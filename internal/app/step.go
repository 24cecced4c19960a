package app

import (
	"github.com/sirupsen/logrus"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/overlay"
)

// Step runs one cycle. shown is false when no frame was available and the
// cycle was skipped; quit reports the user's quit request.
//
// Cycle:
// 1. Read a frame; on failure skip everything else
// 2. Mirror it; all coordinates below are in mirrored space
// 3. Detect hands and keep the first one
// 4. Map the pinch to a volume command and apply it unless paused
// 5. Draw hand feedback and the reference bar from the live volume
// 6. Show the frame and poll for quit
func (a *App) Step() (shown, quit bool) {
	a.stats.Cycles++

	frame, err := a.camera.ReadFrame()
	if err != nil {
		a.stats.Skipped++
		a.log.WithError(err).Trace("no frame, skipping cycle")
		return false, false
	}

	mirrored := capture.Mirror(frame)
	frame.Close()
	defer mirrored.Close()

	width, height := mirrored.Cols(), mirrored.Rows()

	hands, err := a.detector.Detect(&mirrored)
	if err != nil {
		a.log.WithError(err).Warn("hand detection failed")
		hands = nil
	}

	hand, _ := detector.SelectHand(hands)
	res := a.controller.Process(hand, width, height)
	if res.HandFound {
		a.stats.Hands++
	}

	if res.HasCommand && a.IsEnabled() {
		a.apply(res)
	}

	ops := append(res.Overlays, a.referenceBar()...)
	a.renderer.Draw(&mirrored, ops)
	a.renderer.Show(&mirrored)
	a.stats.Frames++

	a.notifyPercent(a.controller.LastPercent())

	quit = a.renderer.PollQuit(a.config.PollInterval) || a.isQuitRequested()
	return true, quit
}

// apply forwards a command to the sink. Failures are logged and the next
// cycle tries again.
func (a *App) apply(res gesture.Result) {
	fields := logrus.Fields{
		"distance": res.Distance,
		"volume":   res.Command,
	}

	if err := a.sink.SetCurrent(res.Command); err != nil {
		a.stats.SetFailures++
		a.log.WithFields(fields).WithError(err).Warn("set volume failed")
		return
	}
	a.stats.Commands++

	percent := gesture.PercentForVolume(res.Command, a.controller.Range())
	if percent == a.lastRecorded {
		return
	}
	a.lastRecorded = percent

	a.log.WithFields(fields).WithField("percent", percent).Debug("volume changed")

	if a.recorder != nil {
		if err := a.recorder.RecordVolume(res.Command, percent); err != nil {
			a.log.WithError(err).Warn("journal write failed")
		}
	}
}

// referenceBar reads the live volume so changes made by other programs show
// up too. When it cannot be read the last bar is drawn again.
func (a *App) referenceBar() []overlay.Instruction {
	current, err := a.sink.Current()
	if err != nil {
		a.log.WithError(err).Debug("read volume failed, showing last level")
		return a.controller.LastBar()
	}
	return a.controller.ReferenceBar(current)
}

func (a *App) notifyPercent(percent int) {
	if percent == a.lastShown {
		return
	}
	a.lastShown = percent

	a.mu.RLock()
	callback := a.onPercent
	a.mu.RUnlock()

	if callback != nil {
		callback(percent)
	}
}

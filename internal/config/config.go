// Package config holds the runtime settings of the control loop.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv. Only ambient concerns are
// overridable; control tuning is fixed in code.
const (
	EnvLogLevel = "MUDRA_LOG_LEVEL"
	EnvHome     = "MUDRA_HOME"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings of one run.
type Config struct {
	CameraID    int `validate:"gte=0"`
	FrameWidth  int `validate:"gt=0"`
	FrameHeight int `validate:"gt=0"`

	// TargetFPS paces the loop; PollInterval bounds the quit-key wait.
	TargetFPS    int           `validate:"gt=0,lte=120"`
	PollInterval time.Duration `validate:"gt=0,lte=1s"`

	MaxHands            int     `validate:"gte=1"`
	DetectionConfidence float64 `validate:"gte=0,lte=1"`
	TrackingConfidence  float64 `validate:"gte=0,lte=1"`

	WindowTitle string `validate:"required"`

	DataDir   string `validate:"required"`
	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogToFile bool
	Journal   bool
	Tray      bool
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CameraID:            0,
		FrameWidth:          640,
		FrameHeight:         480,
		TargetFPS:           30,
		PollInterval:        time.Millisecond,
		MaxHands:            1,
		DetectionConfidence: 0.7,
		TrackingConfidence:  0.7,
		WindowTitle:         "Mudra - Hand Gesture Volume Control",
		DataDir:             defaultDataDir(),
		LogLevel:            "info",
		LogToFile:           true,
		Journal:             true,
		Tray:                true,
	}
}

// FromEnv applies environment overrides to c.
func FromEnv(c Config) Config {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvHome); ok && v != "" {
		c.DataDir = v
	}
	return c
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// DBPath is the session journal location.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "mudra.db")
}

// LogPath is the rotated log file location.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "mudra.log")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mudra"
	}
	return filepath.Join(home, ".mudra")
}

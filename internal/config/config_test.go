package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.FrameWidth != 640 || c.FrameHeight != 480 {
		t.Errorf("frame = %dx%d, want 640x480", c.FrameWidth, c.FrameHeight)
	}
	if c.DetectionConfidence != 0.7 || c.TrackingConfidence != 0.7 {
		t.Errorf("confidence = (%v, %v), want (0.7, 0.7)", c.DetectionConfidence, c.TrackingConfidence)
	}
	if c.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", c.MaxHands)
	}
	if c.PollInterval != time.Millisecond {
		t.Errorf("PollInterval = %v, want 1ms", c.PollInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative camera", func(c *Config) { c.CameraID = -1 }, "CameraID"},
		{"zero width", func(c *Config) { c.FrameWidth = 0 }, "FrameWidth"},
		{"zero fps", func(c *Config) { c.TargetFPS = 0 }, "TargetFPS"},
		{"zero poll", func(c *Config) { c.PollInterval = 0 }, "PollInterval"},
		{"confidence above one", func(c *Config) { c.DetectionConfidence = 1.5 }, "DetectionConfidence"},
		{"negative tracking", func(c *Config) { c.TrackingConfidence = -0.1 }, "TrackingConfidence"},
		{"no hands", func(c *Config) { c.MaxHands = 0 }, "MaxHands"},
		{"empty title", func(c *Config) { c.WindowTitle = "" }, "WindowTitle"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)

			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, " DEBUG ")
	t.Setenv(EnvHome, "/tmp/mudra-test")

	c := FromEnv(Default())

	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
	if c.DataDir != "/tmp/mudra-test" {
		t.Errorf("DataDir = %q", c.DataDir)
	}
	if c.DBPath() != filepath.Join("/tmp/mudra-test", "mudra.db") {
		t.Errorf("DBPath() = %q", c.DBPath())
	}
	if c.LogPath() != filepath.Join("/tmp/mudra-test", "logs", "mudra.log") {
		t.Errorf("LogPath() = %q", c.LogPath())
	}
}

func TestFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	c := FromEnv(Default())
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}

// Package config loads the kiosk configuration from a TOML file with
// sensible defaults, so a bare device boots without any file present.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full kiosk configuration.
type Config struct {
	// StorePath is where intake data is persisted between steps.
	StorePath string `toml:"store_path"`
	// LogPath is the log file; empty logs to stdout only.
	LogPath string `toml:"log_path"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// ExportDir receives downloaded reports.
	ExportDir string `toml:"export_dir"`

	// CameraDevice is the V4L2 node for all photo captures.
	CameraDevice string `toml:"camera_device"`
	// AudioDevice names the SDL capture device; empty uses the default.
	AudioDevice string `toml:"audio_device"`
	// CascadePath is the pigo facefinder cascade for guided capture.
	CascadePath string `toml:"cascade_path"`
	// FontPath overrides the PDF font search.
	FontPath string `toml:"font_path"`
	// InputDevice is an optional evdev node for hardware buttons.
	InputDevice string `toml:"input_device"`

	// MirrorPreview flips the live camera preview horizontally, matching
	// what patients expect from a front-facing camera.
	MirrorPreview bool `toml:"mirror_preview"`
	// DefaultLanguage is used before a patient picks one.
	DefaultLanguage string `toml:"default_language"`
	// AccentColor is the hex UI accent, e.g. "#4F46E5".
	AccentColor string `toml:"accent_color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorePath:       "/var/lib/mediscan/intake.toml",
		LogPath:         "/var/log/mediscan/mediscan.log",
		LogLevel:        "info",
		ExportDir:       "/var/lib/mediscan/reports",
		CameraDevice:    "/dev/video0",
		CascadePath:     "/usr/share/mediscan/facefinder",
		MirrorPreview:   true,
		DefaultLanguage: "en",
		AccentColor:     "#4F46E5",
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

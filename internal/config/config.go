package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Metric selects how eye closure is scored.
type Metric string

const (
	// MetricLidGap scores closure as the distance between the first two
	// contour points, the historical baseline behavior.
	MetricLidGap Metric = "lid_gap"
	// MetricAspectRatio scores closure as the eye aspect ratio, which is
	// robust to head scale and tilt.
	MetricAspectRatio Metric = "aspect_ratio"
)

// AlarmMode selects how the alarm reacts once the eyes reopen.
type AlarmMode string

const (
	// AlarmModeLatch keeps the alarm sounding until the process stops.
	AlarmModeLatch AlarmMode = "latch"
	// AlarmModeAutoReset silences the alarm as soon as the eyes reopen.
	AlarmModeAutoReset AlarmMode = "auto_reset"
)

// Config holds runtime parameters shared by the monitor binaries.
type Config struct {
	// CameraDevice is the capture device index passed to the camera backend.
	CameraDevice int `yaml:"camera_device"`
	// FaceCascadeFile is the path to the Haar cascade used for face detection.
	FaceCascadeFile string `yaml:"face_cascade_file"`
	// LandmarkModelFile is the path to the 68-point facial landmark model.
	LandmarkModelFile string `yaml:"landmark_model_file"`
	// AlarmSoundFile is the path to the looped alarm audio file.
	AlarmSoundFile string `yaml:"alarm_sound_file"`
	// EyeMetric selects the closure scoring method.
	EyeMetric Metric `yaml:"metric"`
	// LidGapThreshold is the closed-eye cutoff for the lid-gap metric, in pixels.
	LidGapThreshold float64 `yaml:"lid_gap_threshold"`
	// AspectRatioThreshold is the closed-eye cutoff for the aspect-ratio metric.
	AspectRatioThreshold float64 `yaml:"aspect_ratio_threshold"`
	// Alarm selects whether the alarm latches or resets when the eyes reopen.
	Alarm AlarmMode `yaml:"alarm_mode"`
	// SessionFile is the path used to persist monitoring session state.
	SessionFile string `yaml:"session_file"`
	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile enables a rotated JSON log sink at the given path when non-empty.
	LogFile string `yaml:"log_file"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "drowse-monitor-settings.yaml"

	// DefaultSessionFilename is the default filename for session state JSON.
	DefaultSessionFilename = "drowse-monitor-session.json"

	// DefaultFaceCascadeFilename is the stock OpenCV frontal face cascade.
	DefaultFaceCascadeFilename = "haarcascade_frontalface_default.xml"

	// DefaultLandmarkModelFilename is the bundled 68-point landmark model.
	DefaultLandmarkModelFilename = "facemark68.onnx"

	// DefaultAlarmSoundFilename is the bundled alarm audio track.
	DefaultAlarmSoundFilename = "alarm.mp3"

	// DefaultLidGapThreshold is the closed-eye pixel cutoff for the lid-gap metric.
	DefaultLidGapThreshold = 15.0

	// DefaultAspectRatioThreshold is the closed-eye cutoff for the aspect-ratio metric.
	DefaultAspectRatioThreshold = 0.2

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errCameraDeviceNegative is returned for a negative capture device index.
	errCameraDeviceNegative = errors.New("camera device index must not be negative")
	// errUnknownMetric is returned for an unrecognized closure metric.
	errUnknownMetric = errors.New("unknown closure metric")
	// errUnknownAlarmMode is returned for an unrecognized alarm mode.
	errUnknownAlarmMode = errors.New("unknown alarm mode")
	// errThresholdNotPositive is returned for a non-positive closure threshold.
	errThresholdNotPositive = errors.New("closure threshold must be positive")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.CameraDevice < 0 {
		return errCameraDeviceNegative
	}

	if cfg.FaceCascadeFile == "" {
		cfg.FaceCascadeFile = DefaultFaceCascadeFilename
	}

	if cfg.LandmarkModelFile == "" {
		cfg.LandmarkModelFile = DefaultLandmarkModelFilename
	}

	if cfg.AlarmSoundFile == "" {
		cfg.AlarmSoundFile = DefaultAlarmSoundFilename
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = DefaultSessionFilename
	}

	switch cfg.EyeMetric {
	case MetricLidGap, MetricAspectRatio:
	case "":
		cfg.EyeMetric = MetricLidGap
	default:
		return fmt.Errorf("%w: %q", errUnknownMetric, cfg.EyeMetric)
	}

	switch cfg.Alarm {
	case AlarmModeLatch, AlarmModeAutoReset:
	case "":
		cfg.Alarm = AlarmModeLatch
	default:
		return fmt.Errorf("%w: %q", errUnknownAlarmMode, cfg.Alarm)
	}

	if cfg.LidGapThreshold == 0 {
		cfg.LidGapThreshold = DefaultLidGapThreshold
	}

	if cfg.AspectRatioThreshold == 0 {
		cfg.AspectRatioThreshold = DefaultAspectRatioThreshold
	}

	if cfg.LidGapThreshold < 0 || cfg.AspectRatioThreshold < 0 {
		return errThresholdNotPositive
	}

	return nil
}

// Threshold returns the closed-eye cutoff matching the configured metric.
func (c *Config) Threshold() float64 {
	if c.EyeMetric == MetricAspectRatio {
		return c.AspectRatioThreshold
	}

	return c.LidGapThreshold
}

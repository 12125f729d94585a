package calibrate

import (
	"context"
	"fmt"
	"time"

	"github.com/roadwatch/drowse-monitor/internal/config"
	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
	"github.com/roadwatch/drowse-monitor/internal/logger"
	"github.com/roadwatch/drowse-monitor/internal/vision"
)

// Options controls the calibration process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// CameraDevice overrides the capture device index when non-negative.
	CameraDevice int
	// Duration is the length of the sampling window.
	Duration time.Duration
	// Write persists the suggested threshold back to the settings file.
	Write bool
}

// DefaultDuration is the sampling window used when none is specified.
const DefaultDuration = 10 * time.Second

// Run samples open-eye closure scores from the live camera and reports a
// suggested threshold for the configured metric, optionally writing it back
// to the settings file.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "drowse-calibrate")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.CameraDevice >= 0 {
		cfg.CameraDevice = opts.CameraDevice
	}

	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}

	scorer := eyes.Scorer(eyes.LidGap)
	if cfg.EyeMetric == config.MetricAspectRatio {
		scorer = eyes.AspectRatio
	}

	camera, err := vision.OpenWebcam(cfg.CameraDevice)
	if err != nil {
		return fmt.Errorf("open camera: %w", err)
	}

	faces, err := vision.NewHaarFaceDetector(cfg.FaceCascadeFile)
	if err != nil {
		_ = camera.Close()

		return fmt.Errorf("initialise face detector: %w", err)
	}
	defer func() {
		_ = faces.Close()
	}()

	landmarks, err := vision.NewDNNLandmarkPredictor(cfg.LandmarkModelFile)
	if err != nil {
		_ = camera.Close()

		return fmt.Errorf("initialise landmark predictor: %w", err)
	}
	defer func() {
		_ = landmarks.Close()
	}()

	logger.InfoKV(ctx, "Calibrating, keep your eyes open",
		"metric", string(cfg.EyeMetric),
		"duration", opts.Duration.String(),
	)

	sampleCtx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	report, err := newSampler(camera, faces, landmarks, scorer).Run(sampleCtx)
	if err != nil {
		return fmt.Errorf("sample closure scores: %w", err)
	}

	logger.InfoKV(ctx, "Calibration finished",
		"samples", report.Samples,
		"min", report.Min,
		"mean", report.Mean,
		"max", report.Max,
		"suggested_threshold", report.Suggested,
	)

	if !opts.Write {
		return nil
	}

	if cfg.EyeMetric == config.MetricAspectRatio {
		cfg.AspectRatioThreshold = report.Suggested
	} else {
		cfg.LidGapThreshold = report.Suggested
	}

	if err = config.Save(opts.ConfigPath, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	logger.InfoKV(ctx, "Settings updated", "path", opts.ConfigPath)

	return nil
}

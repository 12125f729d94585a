package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roadwatch/drowse-monitor/internal/audio"
	"github.com/roadwatch/drowse-monitor/internal/config"
	"github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
	"github.com/roadwatch/drowse-monitor/internal/logger"
	repo "github.com/roadwatch/drowse-monitor/internal/repository/session"
	"github.com/roadwatch/drowse-monitor/internal/vision"
)

// Options controls the monitor process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// CameraDevice overrides the capture device index when non-negative.
	CameraDevice int
	// Metric overrides the configured closure metric when non-empty.
	Metric string
	// AlarmMode overrides the configured alarm latch behavior when non-empty.
	AlarmMode string
	// Threshold overrides the configured closed-eye cutoff when positive.
	Threshold float64
}

// Run wires the camera, detectors and alarm together and processes frames
// until the camera stream ends or the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "drowse-monitor")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err = applyOverrides(cfg, opts); err != nil {
		return err
	}

	configureLogging(cfg)

	// Open the external collaborators in dependency order, unwinding the
	// ones already open when a later one fails.
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

	engine := audio.NewBeepEngine()
	if err = engine.Load(cfg.AlarmSoundFile); err != nil {
		_ = camera.Close()

		return fmt.Errorf("load alarm track: %w", err)
	}
	defer func() {
		_ = engine.Close()
	}()

	sessions := repo.NewFileRepository(cfg.SessionFile)
	logPreviousSession(ctx, sessions)

	p := newPipeline(
		camera,
		faces,
		landmarks,
		audio.NewDriver(engine),
		drowsiness.NewMachine(cfg.Alarm == config.AlarmModeAutoReset),
		scorerFor(cfg.EyeMetric),
		cfg.Threshold(),
		sessions,
		drowsiness.NewSession(time.Now()),
	)

	logger.InfoKV(ctx, "Monitor configured",
		"camera_device", cfg.CameraDevice,
		"metric", string(cfg.EyeMetric),
		"alarm_mode", string(cfg.Alarm),
	)

	return p.Run(ctx)
}

// applyOverrides folds command-line overrides into the loaded settings and
// re-validates the result.
func applyOverrides(cfg *config.Config, opts *Options) error {
	if opts.CameraDevice >= 0 {
		cfg.CameraDevice = opts.CameraDevice
	}

	if opts.Metric != "" {
		cfg.EyeMetric = config.Metric(opts.Metric)
	}

	if opts.AlarmMode != "" {
		cfg.Alarm = config.AlarmMode(opts.AlarmMode)
	}

	if opts.Threshold > 0 {
		if cfg.EyeMetric == config.MetricAspectRatio {
			cfg.AspectRatioThreshold = opts.Threshold
		} else {
			cfg.LidGapThreshold = opts.Threshold
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate overrides: %w", err)
	}

	return nil
}

// configureLogging applies the configured log level and optional file sink.
func configureLogging(cfg *config.Config) {
	if cfg.LogFile != "" {
		logger.SetLogger(logger.New(nil, logger.WithFile(cfg.LogFile)))
	}

	if cfg.LogLevel == "" {
		return
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}
}

// logPreviousSession surfaces the outcome of the prior run, if any.
func logPreviousSession(ctx context.Context, sessions repo.Repository) {
	previous, err := sessions.Load(ctx)

	switch {
	case err == nil:
		logger.InfoKV(ctx, "Previous session found",
			"started_at", previous.StartedAt,
			"alarm_count", previous.AlarmCount,
		)
	case errors.Is(err, repo.ErrNotFound):
		// First run on this session file.
	default:
		logger.WarnKV(ctx, "Failed to read previous session", "error", err)
	}
}

// scorerFor maps the configured metric to its scoring function.
func scorerFor(metric config.Metric) eyes.Scorer {
	if metric == config.MetricAspectRatio {
		return eyes.AspectRatio
	}

	return eyes.LidGap
}

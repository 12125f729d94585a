package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roadwatch/drowse-monitor/internal/config"
	"github.com/roadwatch/drowse-monitor/internal/service/monitor"
	"github.com/roadwatch/drowse-monitor/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// cameraDevice overrides the capture device index, -1 keeps the configured one.
	cameraDevice int
	// metric overrides the configured closure metric.
	metric string
	// alarmMode overrides the configured alarm latch behavior.
	alarmMode string
	// threshold overrides the configured closed-eye cutoff.
	threshold float64

	// rootCmd represents the base command for running the drowsiness monitor.
	rootCmd = &cobra.Command{
		Use:   "drowse-monitor",
		Short: "Watch a camera feed and sound an alarm on sustained eye closure.",
		Long: `Starts the drowsiness monitor on a local camera.

Each frame is scanned for faces, facial landmarks are regressed per face and
the eye contours are scored for closure. When both eyes are classified closed
the alarm starts looping; by default it latches until the process is stopped,
or use --alarm-mode auto_reset to silence it once the eyes reopen.

Press Ctrl+C to stop. The alarm is silenced and the camera released on every
exit path.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return monitor.Run(ctx, &monitor.Options{
				ConfigPath:   configPath,
				CameraDevice: cameraDevice,
				Metric:       metric,
				AlarmMode:    alarmMode,
				Threshold:    threshold,
			})
		},
	}
)

// Execute runs the drowse-monitor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().IntVar(&cameraDevice, "camera", -1, "capture device index override")
	rootCmd.Flags().StringVarP(&metric, "metric", "m", "", "closure metric override (lid_gap, aspect_ratio)")
	rootCmd.Flags().StringVar(&alarmMode, "alarm-mode", "", "alarm behavior override (latch, auto_reset)")
	rootCmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "closed-eye cutoff override for the active metric")
}

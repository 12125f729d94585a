package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roadwatch/drowse-monitor/internal/config"
	"github.com/roadwatch/drowse-monitor/internal/service/calibrate"
	"github.com/roadwatch/drowse-monitor/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// cameraDevice overrides the capture device index, -1 keeps the configured one.
	cameraDevice int
	// duration is the length of the sampling window.
	duration time.Duration
	// write persists the suggested threshold back to the settings file.
	write bool

	// rootCmd represents the base command for calibrating the closure threshold.
	rootCmd = &cobra.Command{
		Use:   "drowse-calibrate",
		Short: "Sample open-eye scores and suggest a closure threshold.",
		Long: `Calibrates the closed-eye threshold for the local camera setup.

Keep your eyes open and look at the camera for the sampling window. The tool
scores every detected eye with the configured metric, prints the observed
distribution and suggests a threshold. Pass --write to store the suggestion
in the settings file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return calibrate.Run(ctx, &calibrate.Options{
				ConfigPath:   configPath,
				CameraDevice: cameraDevice,
				Duration:     duration,
				Write:        write,
			})
		},
	}
)

// Execute runs the drowse-calibrate CLI and exits with non-zero status on error.
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
	rootCmd.Flags().DurationVarP(&duration, "duration", "d", calibrate.DefaultDuration, "sampling window length")
	rootCmd.Flags().BoolVarP(&write, "write", "w", false, "write the suggested threshold to the settings file")
}

// Package cmd defines the CLI commands for imagegen.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/imagegen/internal/config"
)

var (
	verbose bool
	noColor bool
	cfgFile string
)

// rootCmd is the base command for the imagegen CLI.
var rootCmd = &cobra.Command{
	Use:   "imagegen",
	Short: "Generate FFmpeg Dockerfiles and CI matrices",
	Long: `imagegen fetches the list of upstream FFmpeg releases and renders one
Dockerfile per release line and image variant from a set of templates. It
also writes the GitLab pipeline and Azure matrix that build those images.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// ExecuteContext runs the root command with ctx, which is passed to every
// blocking operation such as the release fetch.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultFileName+")")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads --config, falling back to imagegen.yaml in the working
// directory. A missing file yields the built-in defaults.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultFileName
	}

	return config.Load(path)
}

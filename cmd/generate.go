package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/imagegen/internal/generate"
	"github.com/donaldgifford/imagegen/internal/ui"
)

var (
	generateOutputDir    string
	generateTemplatesDir string
	generateDryRun       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render Dockerfiles and CI files for every release",
	Long: `Fetch the upstream release list, render a Dockerfile for every compatible
(version, variant) pair and write the GitLab pipeline and Azure matrix.
Variant directories that are no longer compatible with their release line
are removed first.`,
	Aliases: []string{"gen"},
	Args:    cobra.NoArgs,
	RunE:    runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "output directory (overrides output_dir)")
	generateCmd.Flags().StringVarP(&generateTemplatesDir, "templates-dir", "t", "", "templates directory (overrides templates_dir)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "render everything without writing")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := generate.Run(cmd.Context(), &generate.Opts{
		Config:       cfg,
		OutputDir:    generateOutputDir,
		TemplatesDir: generateTemplatesDir,
		DryRun:       generateDryRun,
		Logger:       slog.Default(),
	})
	if err != nil {
		return err
	}

	w := ui.NewWriter(noColor)
	w.SetDryRun(generateDryRun)

	if len(result.Removed) > 0 {
		w.Warningf("removed %d stale variant directories", len(result.Removed))
		w.Items(result.Removed)
	}

	w.Successf("%d Dockerfiles for %d versions (%s)",
		len(result.Dockerfiles), len(result.Versions), w.Bold(result.OutputDir))

	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/imagegen/internal/generate"
	"github.com/donaldgifford/imagegen/internal/ui"
)

var flagsTemplatesDir string

var flagsCmd = &cobra.Command{
	Use:   "flags <version> <variant>",
	Short: "Print the configure flags for one version and variant",
	Long: `Resolve the FFmpeg configure flags for a single (version, variant) pair,
exactly as generate would place them in the Dockerfile. The version may be
any release such as "4.4.5" or "snapshot". No network access is needed.`,
	Args: cobra.ExactArgs(2),
	RunE: runFlags,
}

func init() {
	flagsCmd.Flags().StringVarP(&flagsTemplatesDir, "templates-dir", "t", "", "templates directory (overrides templates_dir)")
	rootCmd.AddCommand(flagsCmd)
}

func runFlags(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := generate.ResolveFlags(&generate.FlagsOpts{
		Config:       cfg,
		TemplatesDir: flagsTemplatesDir,
		Version:      args[0],
		Variant:      args[1],
	})
	if err != nil {
		return err
	}

	if !result.Compatible {
		ui.NewWriter(noColor).Warningf("%s is skipped for %s; no Dockerfile is generated", result.Variant.Name, result.Version)
	}

	for _, f := range result.Flags {
		fmt.Println(f)
	}

	return nil
}

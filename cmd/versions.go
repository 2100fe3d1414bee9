package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/imagegen/internal/list"
)

var versionsOutputFormat string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the release versions and the variants built for each",
	Long: `Fetch and reduce the upstream release list and show, per version, which
variants would be generated and which are skipped. Nothing is written.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runVersions,
}

func init() {
	versionsCmd.Flags().StringVarP(&versionsOutputFormat, "output", "o", list.FormatTable, "output format (table, json)")
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return list.Run(cmd.Context(), &list.Opts{
		Config:       cfg,
		OutputFormat: versionsOutputFormat,
		Writer:       os.Stdout,
		Logger:       slog.Default(),
	})
}

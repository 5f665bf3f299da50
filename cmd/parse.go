package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"assetlink.dev/pkg/assetlink/internal/domain"
	m "assetlink.dev/pkg/assetlink/internal/model"
)

var parseFileFlag string
var parseDryRunFlag bool
var parseReportFlag string

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Rewrite asset links of a built HTML file",
		Long:  parseLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := documentPath(viper.GetString(filenameKey))

			_, err := workflow.Parse(cmd.Context(), domain.ParseArgs{
				Source: target,
				Output: target,
				DryRun: parseDryRunFlag,
				Report: m.Path(parseReportFlag),
			})

			return err
		},
	}

	configureParseFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func configureParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&parseFileFlag, fileFlagName, viper.GetString(filenameKey), "HTML file name inside the frontend directory (default: index.html)")
	bindFlagToConfig(cmd.Flags().Lookup(fileFlagName), filenameKey)
	cmd.Flags().BoolVar(&parseDryRunFlag, dryRunFlagName, false, "print a diff instead of writing the file")
	cmd.Flags().StringVar(&parseReportFlag, reportFlagName, "", "write a YAML report of the rewrites to this path")
}

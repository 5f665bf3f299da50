// Package cmd provides the root command and CLI setup for assetlink.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"assetlink.dev/pkg/assetlink/internal/adapter"
	"assetlink.dev/pkg/assetlink/internal/controller"
	"assetlink.dev/pkg/assetlink/internal/domain"
)

var fileAdapter adapter.FileAdapter
var documentAdapter adapter.DocumentAdapter
var reportStore adapter.ReportStore
var rewriter domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

// frontendDirFlag is a root-level flag overriding the directory holding the document.
var frontendDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	cfg := rewriteConfig()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fileAdapter = adapter.NewLocalFileAdapter()
	documentAdapter = adapter.NewHTMLDocumentAdapter(cfg.TemplateOpen, cfg.TemplateClose)
	reportStore = adapter.NewYAMLReportStore()
	rewriter = domain.NewRewriter(cfg)
	workflow = domain.NewWorkflow(
		fileAdapter,
		documentAdapter,
		reportStore,
		ui,
		rewriter,
		cfg,
	)
}

const rootLongDescription = `Assetlink rewrites the asset links of a front-end build's HTML entry point
into static template tags, so the page can be served as a server-side template.

Every <link href>, <script src> and <img src> pointing at a local file becomes
{% static '<dir>/<file>' %}, with <dir> one of js, css or images.`

const parseLongDescription = `Parse <frontend dir>/<file> (default: templates/index.html), rewrite each local
asset reference into a {% static '...' %} tag and overwrite the file in place.

References starting with https:// and values already wrapped in {% ... %} are
left untouched. The output always starts with {% load static %}.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assetlink",
		Short: "Rewrite built HTML asset links into static template tags",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&frontendDirFlag, dirFlagName, viper.GetString(frontendDirKey), "directory holding the HTML file (default: <base_dir>/templates)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(dirFlagName), frontendDirKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

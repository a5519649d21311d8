package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/yadisk-grabber/internal/app"
	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Starts a local web interface for browsing public Yandex Disk resources.

Open the printed address in a browser, paste a public URL, pick the files
you want, and they will be downloaded to the output directory.`,
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		if flag := cmd.Flags().Lookup("address"); flag != nil && flag.Changed {
			appConfig.ServerAddress, _ = cmd.Flags().GetString("address")
		}

		if err := config.ValidateConfig(appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteServeCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	serveCmd.Flags().StringP(
		"address",
		"a",
		"",
		fmt.Sprintf("address to listen on (default is '%s').", config.DefaultServerAddress))

	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/yadisk-grabber/internal/config"
	"github.com/oshokin/yadisk-grabber/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes a configuration file with default values to the current directory
(or to the path given with --config). Existing files are never overwritten.`,
		Run: func(cmd *cobra.Command, _ []string) {
			path := configFilenameFromFlag
			if path == "" {
				path = config.DefaultConfigFilename
			}

			if err := config.WriteDefaultConfig(path); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to write configuration file: %v", err)
			}

			logger.Infof(cmd.Context(), "Configuration file written to '%s'", path)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

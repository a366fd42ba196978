package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
)

// initCmd: scover init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Long: `Writes the default configuration to the --config path. The --variant and
--no-color flags are applied to the written file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile, config); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return errReported
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", cfgFile)
		return nil
	},
}

func initConfigurationFile(configurationPath string, c analyzer.Config) error {
	if configurationPath == "" {
		configurationPath = analyzer.DefaultConfigFile
	}
	return analyzer.WriteConfig(configurationPath, c)
}

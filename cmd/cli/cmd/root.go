package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yshekhar/cliquecoloc/pkg/config"
	"github.com/yshekhar/cliquecoloc/pkg/utils"
)

var (
	// Global flags
	verbose    bool
	configFile string

	logger utils.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cliquecoloc",
	Short: "A spatial co-location pattern mining tool",
	Long: `cliquecoloc is a CLI tool for mining spatial co-location patterns.

It materializes neighborhood relationships over a set of spatial feature
instances, enumerates maximal cliques with either an instance-driven or
neighborhood-driven scheme, indexes them in a C-Hash, and reports the
patterns whose participation index clears a configurable threshold.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)

		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (when empty, config.yaml is searched in ., ./configs and /etc/cliquecoloc)")

	binName := BinName()
	rootCmd.Example = `  # Mine co-location patterns from a CSV instance table
  ` + binName + ` mine -i ./instances.csv --min-dist 10 --min-prev 0.5

  # Use the neighborhood-driven (Bron-Kerbosch) enumeration scheme
  ` + binName + ` mine -i ./instances.csv --scheme nds --persist

  # Generate a synthetic spatial dataset to mine against
  ` + binName + ` generate -o ./instances.csv --features 10 --total 5000`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	return logger
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

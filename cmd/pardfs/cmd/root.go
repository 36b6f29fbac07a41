package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pardfs/internal/rlog"
)

var (
	verbose bool
	logger  rlog.Logger
)

// rootCmd is the base pardfs command.
var rootCmd = &cobra.Command{
	Use:   "pardfs",
	Short: "Generate graphs and traverse them with a parallel DFS engine",
	Long: `pardfs drives the graph generators and DFS engines: it builds a
graph (adjacency-list or adjacency-matrix, directed or undirected),
optionally traverses it with the sequential oracle or one of the
parallel engines, and prints the resulting forest.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := rlog.LevelInfo
		if verbose {
			level = rlog.LevelDebug
		}
		logger = rlog.New(level, os.Stdout)
		return nil
	},
}

func init() {
	viper.SetEnvPrefix("PARDFS")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(genCmd)
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() rlog.Logger { return logger }

// BinName returns the base name of the current executable.
func BinName() string { return filepath.Base(os.Args[0]) }

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/barter"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
	flagDebug    = "debug"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "barterd",
		Short:         "Two-asset escrow node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".barter")
	root.PersistentFlags().String(flagHome, defaultHome, "directory for config and data")
	root.PersistentFlags().String(flagLogLevel, "info", "minimal log level (debug, info, error, none)")
	root.PersistentFlags().Bool(flagDebug, false, "return call stacks on error")

	root.AddCommand(
		initCmd(),
		startCmd(),
		indexCmd(),
		versionCmd(),
	)
	return root
}

// newLogger builds the logger configured by the persistent flags.
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, allow), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), barter.Version())
		},
	}
}

// Package cmd provides the command-line interface for Clarus.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCmd creates the base command when called without any subcommands.
// Every call builds a fresh command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clarus",
		Short: "Clarus CLI tool works with lists written as [e0, e1, ...].",
		Long: `Clarus CLI tool works with lists written as [e0, e1, ...]. ` +
			`It can sort, slice, and edit lists, record them into SQLite ` +
			`databases, post them over HTTP, plot them with gnuplot, and ` +
			`serve them for inspection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env")

			return loadEnv(envFile, cmd.Flags().Changed("env"))
		},
	}

	rootCmd.PersistentFlags().String("env", ".env",
		"File that sets CLARUS_* environment variables")

	rootCmd.AddCommand(
		newSortCmd(),
		newSliceCmd(),
		newRemoveCmd(),
		newRecordCmd(),
		newLoadCmd(),
		newPostCmd(),
		newPlotCmd(),
		newMonitorCmd(),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadEnv reads the env file without overriding variables that are already
// set. A missing default file is not an error.
func loadEnv(file string, required bool) error {
	err := godotenv.Load(file)
	if err == nil {
		return nil
	}

	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("loading %s: %w", file, err)
}

// Environment variables that provide flag defaults.
const (
	envHost        = "CLARUS_HOST"
	envDB          = "CLARUS_DB"
	envGnuplot     = "CLARUS_GNUPLOT"
	envMonitorPort = "CLARUS_MONITOR_PORT"
)

// stringFlag returns the flag value if it is set on the command line, then
// the environment variable, then the flag default.
func stringFlag(cmd *cobra.Command, name, env string) string {
	value, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) {
		return value
	}

	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}

	return value
}

func intFlag(cmd *cobra.Command, name, env string) (int, error) {
	value, _ := cmd.Flags().GetInt(name)
	if cmd.Flags().Changed(name) {
		return value, nil
	}

	if v, ok := os.LookupEnv(env); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", env, err)
		}

		return n, nil
	}

	return value, nil
}

// Package cli wires the probench commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "probench",
	Short:   "Black-box probe verification and load benchmarking for HTTP backends",
	Version: version,
	Long: `Probench discovers contract probes from YAML suite files and runs them
against a live backend: once each for functional verification, or repeatedly
under controlled concurrency to benchmark the backend under load.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It returns the process exit code.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(benchCmd)
}

// addSuiteFlags registers the flags shared by every command that loads a
// probe suite.
func addSuiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("suite", "s", "", "Suite file or directory of suite files (required)")
	cmd.Flags().String("base-url", "", "Override the suite's base URL")
	cmd.Flags().StringSlice("include", nil, "Only run probes whose name contains one of these substrings")
	cmd.Flags().StringSlice("exclude", nil, "Skip probes whose name contains one of these substrings")
	cmd.Flags().Duration("timeout", 0, "Per-request timeout (default 30s)")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("testing", true, "Signal testing mode to the backend's open call")
	cmd.MarkFlagRequired("suite")
}

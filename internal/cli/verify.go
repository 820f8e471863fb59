package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/probench/probench/internal/output"
	"github.com/probench/probench/internal/runner"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run every selected probe once against the backend",
	Long: `Verify runs each probe in the suite exactly once, in discovery order,
and reports every captured failure. A failing probe never stops its
siblings; the run as a whole fails if any probe failed.

Examples:
  probench verify --suite probes.yaml
  probench verify --suite probes/ --include articles --exclude search`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runVerify(cmd))
	},
}

func runVerify(cmd *cobra.Command) int {
	rc, err := buildRunContext(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := context.Background()
	formatter := output.NewFormatter(os.Stdout, rc.noColor)

	if err := rc.target.Open(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	validation := runner.Run(ctx, rc.selected, rc.params)

	if err := rc.target.Close(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	formatter.PrintValidation(validation)

	if validation.Failed() {
		return 1
	}
	return 0
}

func init() {
	addSuiteFlags(verifyCmd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the probes a suite and filter would run",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runList(cmd))
	},
}

func runList(cmd *cobra.Command) int {
	rc, err := buildRunContext(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, p := range rc.selected {
		fmt.Println(p.Name)
	}
	return 0
}

func init() {
	addSuiteFlags(listCmd)
}

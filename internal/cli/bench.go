package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/probench/probench/internal/bench"
	"github.com/probench/probench/internal/output"
	"github.com/probench/probench/internal/report"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the selected probes repeatedly as a load benchmark",
	Long: `Bench partitions a total invocation count across parallel workers, each
keeping a fixed number of probe invocations in flight, and aggregates
per-probe latency statistics from all workers into a report.

Examples:
  probench bench --suite probes.yaml --count 1024 --threads 4 --simultaneous 8
  probench bench --suite probes/ --count 10000 --threads 8 --simultaneous 16 \
    --policy random --out results/`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runBench(cmd))
	},
}

func runBench(cmd *cobra.Command) int {
	count, _ := cmd.Flags().GetInt("count")
	threads, _ := cmd.Flags().GetInt("threads")
	simultaneous, _ := cmd.Flags().GetInt("simultaneous")
	policy, _ := cmd.Flags().GetString("policy")
	outDir, _ := cmd.Flags().GetString("out")

	rc, err := buildRunContext(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	plan := bench.Plan{
		Count:        count,
		Threads:      threads,
		Simultaneous: simultaneous,
		Policy:       bench.SelectionPolicy(policy),
	}
	if err := plan.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := context.Background()
	formatter := output.NewFormatter(os.Stdout, rc.noColor)
	showProgress := output.IsTerminal(os.Stdout)

	if err := rc.target.Open(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	master := bench.NewMaster(rc.selected, rc.params)
	result, runErr := master.Run(ctx, plan, func(completed int) {
		if showProgress {
			formatter.PrintProgress(completed, count)
		}
	})
	if showProgress {
		formatter.EndProgress()
	}

	if err := rc.target.Close(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return 1
	}

	formatter.PrintBenchmark(result)

	if outDir != "" {
		path, err := report.Save(outDir, result)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("report written to %s\n", path)
	}

	if result.Errors > 0 {
		return 1
	}
	return 0
}

func init() {
	addSuiteFlags(benchCmd)
	benchCmd.Flags().IntP("count", "c", 1000, "Total number of probe invocations")
	benchCmd.Flags().IntP("threads", "t", 4, "Number of parallel workers")
	benchCmd.Flags().IntP("simultaneous", "n", 8, "Concurrent invocations kept in flight per worker")
	benchCmd.Flags().String("policy", string(bench.PolicyRoundRobin), "Probe selection policy: round-robin or random")
	benchCmd.Flags().StringP("out", "o", "", "Directory to write the markdown report into")
}

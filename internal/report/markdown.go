package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteMarkdown renders the benchmark report as a markdown document.
func WriteMarkdown(w io.Writer, b *Benchmark) error {
	var sb strings.Builder

	host := hostLabel()
	sb.WriteString(fmt.Sprintf("# Benchmark report (%s)\n\n", host))
	sb.WriteString(fmt.Sprintf("- Date: %s\n", time.Now().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- Invocations: %d\n", b.Total))
	sb.WriteString(fmt.Sprintf("- Errors: %d\n", b.Errors))
	sb.WriteString(fmt.Sprintf("- Elapsed: %s\n", b.Elapsed.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("- Throughput: %.1f req/s\n", b.Throughput()))
	sb.WriteString(fmt.Sprintf("- Latency: p50 %s, p90 %s, p95 %s, p99 %s\n\n",
		b.Percentiles.P50, b.Percentiles.P90, b.Percentiles.P95, b.Percentiles.P99))

	sb.WriteString("| Probe | Count | Mean | Median | StdDev | Min | Max | Errors |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, name := range b.ProbeNames() {
		s := b.Stats[name]
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %s | %s | %d |\n",
			name, s.Count, s.Mean, s.Median, s.StdDev, s.Min, s.Max, s.Errors))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Save writes the markdown report into dir, named after the host running
// the benchmark. It returns the path of the written file.
func Save(dir string, b *Benchmark) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	path := filepath.Join(dir, hostLabel()+".md")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, b); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func hostLabel() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "unknown-host"
	}
	return host
}

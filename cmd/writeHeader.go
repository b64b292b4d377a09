package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// writeHeader writes the run banner ahead of the outcome lines.
func writeHeader(w io.Writer, cfg *runConfig) {
	bw := bufio.NewWriter(w)
	if cfg.Name != "" {
		_, _ = fmt.Fprintf(bw, "Name: %s\n", cfg.Name)
	}
	_, _ = fmt.Fprintf(bw, "Target: %s\n", cfg.Target.String())
	_, _ = fmt.Fprintf(bw, "Source: %s\n", cfg.Root)
	_, _ = fmt.Fprintf(bw, "Started: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintln(bw, strings.Repeat("=", 60))
	_ = bw.Flush()
}

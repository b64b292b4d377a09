package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeOutcomes renders the provisioning result, when there is one, and
// then one line per outcome in execution order: the item (or [bulk]), a
// success marker and, on failure, the captured error text.
func writeOutcomes(w io.Writer, provision *transferOutcome, outcomes []transferOutcome) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 60))
	if provision != nil {
		writeOutcomeLine(bw, *provision)
	}
	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() && o.Phase == phaseItem {
			failed++
		}
		writeOutcomeLine(bw, o)
	}
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 60))
	if failed > 0 {
		_, _ = fmt.Fprintf(bw, "%d item(s) failed\n", failed)
	}
	return bw.Flush()
}

func writeOutcomeLine(w io.Writer, o transferOutcome) {
	if o.Succeeded() {
		_, _ = fmt.Fprintf(w, "✓ %s\n", o.label())
		return
	}
	_, _ = fmt.Fprintf(w, "✗ %s (exit %d): %s\n", o.label(), o.ExitCode, oneLine(o.errorText()))
}

// oneLine folds multi-line tool output into a single report line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

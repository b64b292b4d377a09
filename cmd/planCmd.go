package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// planCmd prints what a run would do without contacting the remote host.
// It is equivalent to running the root command with --noop.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the commands a deploy would run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureLogging(os.Stderr, cfgLogLevel); err != nil {
			return err
		}
		cfg, err := buildRunConfig()
		if err != nil {
			return err
		}
		return writePlan(cmd.OutOrStdout(), cfg)
	},
}

// writePlan renders the provisioning command, the bulk mirror and the
// itemized fallback for the items that currently exist on disk. Secrets are
// never part of a rendered command.
func writePlan(w io.Writer, cfg *runConfig) error {
	items, err := newPathSet(appFs, cfg.Exclude).resolve(cfg.Items, cfg.Root)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "# Target: %s (credential: %s)\n", cfg.Target.String(), cfg.Target.Credential.String())
	_, _ = fmt.Fprintf(bw, "# Provision (%s)\n", cfg.Provision)
	if cfg.Provision == provisionTool {
		_, _ = fmt.Fprintln(bw, sshCommand(cfg.Target, cfg.Transport, mkdirRemote(cfg.Target)).line())
	} else {
		_, _ = fmt.Fprintln(bw, mkdirRemote(cfg.Target).line())
	}
	_, _ = fmt.Fprintf(bw, "# Bulk mirror (in %s)\n", cfg.Root)
	_, _ = fmt.Fprintln(bw, mirrorCommand(cfg.Target, cfg.Transport, cfg.Root, cfg.Exclude, cfg.Prune).line())
	_, _ = fmt.Fprintf(bw, "# Itemized fallback (%d of %d items present)\n", len(items), len(cfg.Items))
	for _, it := range items {
		_, _ = fmt.Fprintln(bw, copyCommand(cfg.Target, cfg.Transport, cfg.Root, it).line())
	}
	return bw.Flush()
}

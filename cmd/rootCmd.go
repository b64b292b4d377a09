package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deploy-sync",
	Short: "Copy a local project directory to a remote server over SSH",
	Long: "Mirrors a local project directory to a remote server with rsync and, when the mirror fails, " +
		"falls back to copying the manifest's files and directories one by one with scp.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configureLogging(os.Stderr, cfgLogLevel); err != nil {
			return err
		}
		cfg, err := buildRunConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if cfgNoop {
			return writePlan(out, cfg)
		}

		provisioner, transfer := newExecutorsFunc(cfg.Provision, cfg.Transport, cfg.Timeout)
		driver := &transferDriver{
			provisioner: provisioner,
			transfer:    transfer,
			fs:          appFs,
			opts:        cfg.Transport,
			root:        cfg.Root,
			prune:       cfg.Prune,
			tools:       requiredTools(cfg.Target.Credential, cfg.Provision),
			out:         out,
		}

		writeHeader(out, cfg)
		code, runErr := driver.run(cfg.Target, cfg.Items, cfg.Exclude)

		if cfgReportPath != "" && driver.provision != nil {
			report := newYAMLReport(cfg)
			report.Mode = driver.mode()
			report.ExitCode = code
			if driver.provision != nil {
				report.setProvision(*driver.provision)
			}
			for _, o := range driver.outcomes {
				report.addOutcome(o)
			}
			if err := saveReport(cfgReportPath, report); err != nil {
				return fmt.Errorf("failed to write YAML report: %w", err)
			}
			log.WithField("report", cfgReportPath).Info("Report written")
		}
		if runErr != nil {
			return runErr
		}
		log.WithField("mode", driver.mode()).Info("Done")
		return nil
	},
}

// saveReport writes r to path, creating parent directories as needed.
func saveReport(path string, r *yamlReport) error {
	if err := appFs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	f, err := appFs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := writeYAMLReport(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

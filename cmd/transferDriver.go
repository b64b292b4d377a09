package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// transferDriver runs the whole deploy: pre-flight check, remote directory
// provisioning, bulk-or-itemized sync and the final report. It owns the
// append-only outcome sequence: the bulk outcome followed by one outcome per
// itemized copy. The provisioning result is kept apart in provision.
type transferDriver struct {
	provisioner executor
	transfer    executor
	fs          afero.Fs
	opts        transportOptions
	root        string
	prune       bool
	tools       []string
	out         io.Writer

	provision *transferOutcome
	outcomes  []transferOutcome
	itemized  bool
}

func (d *transferDriver) record(o transferOutcome) {
	d.outcomes = append(d.outcomes, o)
	logOutcome(o)
}

func logOutcome(o transferOutcome) {
	entry := log.WithField("item", o.label()).WithField("exit_code", o.ExitCode)
	if o.Succeeded() {
		entry.Info("Transfer step succeeded")
	} else {
		entry.Warn("Transfer step failed")
	}
}

// run executes the protocol and returns the process exit code. The error is
// non-nil for a failed pre-flight check (exitFatal) and for a protocol that
// did not complete (exitIncomplete); failed individual items are reported but
// do not fail the run.
func (d *transferDriver) run(target transferTarget, manifest []string, exclude exclusionPolicy) (int, error) {
	if err := checkTools(d.tools); err != nil {
		return exitFatal, err
	}

	log.WithField("target", target.String()).Info("Ensuring remote directory exists")
	prov := d.provisioner.Execute(mkdirRemote(target), target)
	prov.Phase = phaseProvision
	d.provision = &prov
	logOutcome(prov)

	planner := &syncPlanner{
		exec:     d.transfer,
		paths:    newPathSet(d.fs, exclude),
		target:   target,
		opts:     d.opts,
		root:     d.root,
		manifest: manifest,
		exclude:  exclude,
		prune:    d.prune,
		record:   d.record,
	}
	planErr := planner.run()
	d.itemized = planner.itemized

	if err := writeOutcomes(d.out, d.provision, d.outcomes); err != nil {
		return exitFatal, fmt.Errorf("failed writing report: %w", err)
	}

	if planErr != nil {
		return exitIncomplete, fmt.Errorf("%w: %v", errIncomplete, planErr)
	}
	if planner.bulk.Succeeded() || (planner.itemized && prov.Succeeded()) {
		return exitOK, nil
	}
	return exitIncomplete, fmt.Errorf("%w: remote directory %s could not be created", errIncomplete, target.Path)
}

// mode names the strategy that ran, for reports.
func (d *transferDriver) mode() string {
	if d.itemized {
		return "itemized"
	}
	return "bulk"
}

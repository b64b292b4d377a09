package cmd

import "time"

// executor runs one command against the target and captures the result. It
// never returns an error: every failure, from a missing local binary to a
// non-zero remote exit, ends up in the outcome's ExitCode, Stderr and Err.
// Callers fill in Phase and Item.
type executor interface {
	Execute(c command, t transferTarget) transferOutcome
}

// Provisioning transports for the remote directory creation step.
const (
	provisionNative = "native"
	provisionTool   = "tool"
)

// newExecutors builds the provisioning and transfer executors for a run.
// Transfers always go through the local ssh/scp/rsync tools; provisioning
// uses either a native SSH session or the local ssh client.
func newExecutors(provision string, o transportOptions, timeout time.Duration) (executor, executor) {
	transfer := &toolExecutor{opts: o, timeout: timeout}
	if provision == provisionTool {
		return &toolProvisioner{tool: transfer}, transfer
	}
	return &sshExecutor{opts: o, timeout: timeout}, transfer
}

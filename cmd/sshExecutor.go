package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// sshExecutor runs commands directly on the remote host over a native SSH
// session. Each call dials, runs one command and disconnects.
type sshExecutor struct {
	opts    transportOptions
	timeout time.Duration
}

// Execute implements executor.
func (e *sshExecutor) Execute(c command, t transferTarget) transferOutcome {
	line := c.line()
	out := transferOutcome{Command: line}

	client, err := dialSSHFunc(t, e.opts)
	if err != nil {
		out.ExitCode = -1
		out.Err = fmt.Errorf("ssh connection failed: %w", err)
		return out
	}
	defer func() {
		if client != nil {
			_ = client.Close()
		}
	}()

	log.WithField("command", line).WithField("target", t.String()).Debug("Running remote command")
	stdout, stderr, code, runErr := runRemoteCommandFunc(sshClientWrapper{client}, line, e.timeout)
	out.Stdout = string(stdout)
	out.Stderr = string(stderr)
	out.ExitCode = code
	// A remote exit status is the whole story; keep Err for local failures.
	if code < 0 {
		out.Err = runErr
	}
	return out
}

package cmd

import (
	"context"
	"errors"
	"os/exec"
	"time"

	toolexec "github.com/input-output-hk/catalyst-forge-libs/executor"
	log "github.com/sirupsen/logrus"
)

// shellPath is the local shell used to interpret rendered command lines.
var shellPath = "/bin/sh"

// toolExecutor runs rendered command lines on the local machine. When the
// credential carries a secret the line runs under "sshpass -e", which reads
// it from the child's SSHPASS variable, so the secret never shows up in argv
// or in the rendered command.
type toolExecutor struct {
	opts    transportOptions
	timeout time.Duration
}

// invocation returns the program, its arguments and the extra environment
// used to run line for credential c.
func (e *toolExecutor) invocation(line string, c credential) (string, []string, map[string]string) {
	prompt, secret, ok := c.sshpassSecret()
	if !ok {
		return shellPath, []string{"-c", line}, nil
	}
	args := []string{"-e"}
	if prompt != "" {
		args = []string{"-P", prompt, "-e"}
	}
	args = append(args, shellPath, "-c", line)
	return "sshpass", args, map[string]string{"SSHPASS": secret}
}

// Execute implements executor.
func (e *toolExecutor) Execute(c command, t transferTarget) transferOutcome {
	line := c.line()
	out := transferOutcome{Command: line}

	ctx := context.Background()
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	program, args, env := e.invocation(line, t.Credential)
	opts := []toolexec.Option{toolexec.WithCapture(true, true, false)}
	if c.Dir != "" {
		opts = append(opts, toolexec.WithWorkingDir(c.Dir))
	}
	if env != nil {
		opts = append(opts, toolexec.WithEnv(env))
	}

	log.WithField("command", line).Debug("Running local command")
	res, err := toolexec.New(program, args...).Execute(ctx, opts...)
	if res != nil {
		out.Stdout = res.Stdout
		out.Stderr = res.Stderr
	}

	var ee *exec.ExitError
	switch {
	case err == nil:
		out.ExitCode = 0
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.ExitCode = -1
		out.Err = context.DeadlineExceeded
	case errors.As(err, &ee) && res != nil && res.ExitCode >= 0:
		out.ExitCode = res.ExitCode
	default:
		out.ExitCode = -1
		out.Err = err
	}
	return out
}

// toolProvisioner runs remote shell commands through the local ssh client.
type toolProvisioner struct {
	tool *toolExecutor
}

// Execute implements executor by wrapping c in an ssh invocation.
func (p *toolProvisioner) Execute(c command, t transferTarget) transferOutcome {
	return p.tool.Execute(sshCommand(t, p.tool.opts, c), t)
}

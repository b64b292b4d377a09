package cmd

import (
	"bytes"
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command on a fresh session and returns
// its stdout, stderr and exit status. A non-positive timeout waits forever.
// Errors without a remote exit status (session, transport, timeout) report
// exit code -1.
func runRemoteCommand(client sessionClient, cmd string, timeout time.Duration) ([]byte, []byte, int, error) {
	type result struct {
		stdout   []byte
		stderr   []byte
		exitCode int
		err      error
	}

	run := func() result {
		sess, err := client.NewSession()
		if err != nil {
			return result{nil, nil, -1, err}
		}
		defer func() { _ = sess.Close() }()
		var stdout, stderr bytes.Buffer
		err = sess.Run(cmd, &stdout, &stderr)
		if err == nil {
			return result{stdout.Bytes(), stderr.Bytes(), 0, nil}
		}
		exit := -1
		var ee *ssh.ExitError
		if errors.As(err, &ee) {
			exit = ee.ExitStatus()
		}
		return result{stdout.Bytes(), stderr.Bytes(), exit, err}
	}

	if timeout <= 0 {
		r := run()
		return r.stdout, r.stderr, r.exitCode, r.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan result, 1)
	go func() { ch <- run() }()

	select {
	case r := <-ch:
		return r.stdout, r.stderr, r.exitCode, r.err
	case <-ctx.Done():
		return nil, nil, -1, context.DeadlineExceeded
	}
}

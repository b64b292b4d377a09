package cmd

import (
	"io"

	"golang.org/x/crypto/ssh"
)

// sshSessionWrapper adapts *ssh.Session to the session interface.
type sshSessionWrapper struct {
	s *ssh.Session
}

// Run executes cmd on the remote side, streaming stdout and stderr into the
// supplied writers, and waits for it to exit.
func (w sshSessionWrapper) Run(cmd string, stdout, stderr io.Writer) error {
	w.s.Stdout = stdout
	w.s.Stderr = stderr
	return w.s.Run(cmd)
}

// Close closes the underlying ssh.Session.
func (w sshSessionWrapper) Close() error {
	return w.s.Close()
}

package cmd

import "io"

// session is a minimal interface for running one remote command with its
// output streams captured separately.
type session interface {
	Run(cmd string, stdout, stderr io.Writer) error
	Close() error
}

// sessionClient is a minimal interface to obtain a command session.
type sessionClient interface {
	NewSession() (session, error)
}

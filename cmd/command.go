package cmd

import "strings"

// command is a program invocation rendered to a single shell line. Dir, when
// set, is the local working directory the line runs in.
type command struct {
	Name string
	Args []string
	Dir  string
}

// line builds the fully rendered command line by appending arguments with
// safe shell quoting. It does not include the sshpass wrapper; executors
// are responsible for wrapping according to their credential.
func (c command) line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	quoted := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		quoted = append(quoted, shellQuote(a))
	}
	return strings.TrimSpace(c.Name + " " + strings.Join(quoted, " "))
}

package cmd

import (
	"fmt"
	"strings"
	"time"
)

// transportOptions are the SSH client settings shared by the native dialer
// and the ssh/scp/rsync command lines.
type transportOptions struct {
	KnownHosts  string
	StrictHost  bool
	ConnTimeout time.Duration
}

// sshOptionArgs renders the -o/-i options understood by both ssh and scp.
func (o transportOptions) sshOptionArgs(t transferTarget) []string {
	var args []string
	if o.StrictHost {
		args = append(args, "-o", "StrictHostKeyChecking=yes")
		if o.KnownHosts != "" {
			args = append(args, "-o", "UserKnownHostsFile="+o.KnownHosts)
		}
	} else {
		args = append(args, "-o", "StrictHostKeyChecking=no")
	}
	if o.ConnTimeout > 0 {
		secs := int(o.ConnTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		args = append(args, "-o", fmt.Sprintf("ConnectTimeout=%d", secs))
	}
	if t.Credential.KeyPath != "" {
		args = append(args, "-i", t.Credential.KeyPath)
	}
	return args
}

// sshArgs renders options for the ssh client, which takes the port as -p.
func (o transportOptions) sshArgs(t transferTarget) []string {
	args := o.sshOptionArgs(t)
	if p := t.port(); p != "" {
		args = append(args, "-p", p)
	}
	return args
}

// scpArgs renders options for scp, which takes the port as -P.
func (o transportOptions) scpArgs(t transferTarget) []string {
	args := o.sshOptionArgs(t)
	if p := t.port(); p != "" {
		args = append(args, "-P", p)
	}
	return args
}

// rsyncShell renders the remote shell passed to rsync -e.
func (o transportOptions) rsyncShell(t transferTarget) string {
	return strings.TrimSpace(command{Name: "ssh", Args: o.sshArgs(t)}.line())
}

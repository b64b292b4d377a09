package cmd

import (
	"net"
	"strings"
)

// transferTarget is the remote host/path/credential tuple a run writes to. It
// is built once at startup and never mutated afterwards.
type transferTarget struct {
	Host       string
	User       string
	Path       string
	Credential credential
}

// Address returns host:port suitable for dialing, defaulting to port 22.
func (t transferTarget) Address() string {
	if _, _, err := net.SplitHostPort(t.Host); err == nil {
		return t.Host
	}
	return net.JoinHostPort(strings.Trim(t.Host, "[]"), "22")
}

// hostname returns the host without any port suffix.
func (t transferTarget) hostname() string {
	if h, _, err := net.SplitHostPort(t.Host); err == nil {
		return h
	}
	return strings.Trim(t.Host, "[]")
}

// port returns the explicit port, or "" when the default applies.
func (t transferTarget) port() string {
	if _, p, err := net.SplitHostPort(t.Host); err == nil && p != "22" {
		return p
	}
	return ""
}

// Remote renders the user@host prefix used by ssh, scp and rsync.
func (t transferTarget) Remote() string {
	h := t.hostname()
	if strings.Contains(h, ":") {
		h = "[" + h + "]"
	}
	if t.User == "" {
		return h
	}
	return t.User + "@" + h
}

// remoteSpec renders the copy destination "user@host:/path/".
func (t transferTarget) remoteSpec() string {
	return t.Remote() + ":" + strings.TrimRight(t.Path, "/") + "/"
}

// String describes the target for logs; the credential is never printed.
func (t transferTarget) String() string {
	return t.Remote() + ":" + t.Path
}

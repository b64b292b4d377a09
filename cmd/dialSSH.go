package cmd

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// dialSSH establishes an SSH client connection to the target using its
// credential: key file, password and, when available, the SSH agent.
func dialSSH(t transferTarget, o transportOptions) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if t.Credential.KeyPath != "" {
		signer, err := loadSigner(t.Credential.KeyPath, t.Credential.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if t.Credential.hasPassword() {
		auths = append(auths, ssh.Password(t.Credential.Password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	var hostKeyCB ssh.HostKeyCallback
	if o.StrictHost {
		if _, err := os.Stat(o.KnownHosts); err != nil {
			return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", o.KnownHosts)
		}
		cb, err := knownhosts.New(o.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
		hostKeyCB = cb
	} else {
		hostKeyCB = ssh.InsecureIgnoreHostKey()
	}

	user := t.User
	if user == "" {
		user = os.Getenv("USER")
	}
	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         o.ConnTimeout,
	}

	addr := t.Address()
	d := net.Dialer{Timeout: o.ConnTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}

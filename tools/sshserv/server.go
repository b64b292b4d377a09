// Package sshserv is an in-process SSH server for exercising deploy-sync's
// native provisioning path without a real remote host.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"net"
	"strings"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Server accepts exec requests and emulates a tiny POSIX shell: "mkdir -p"
// records directories (succeeding whether or not they exist), "echo" writes
// its arguments and "exit N" returns N. Anything else fails with 127.
type Server struct {
	Addr string

	ln   net.Listener
	done chan struct{}

	mu       sync.Mutex
	commands []string
	dirs     map[string]int
}

// Start listens on listenAddr (e.g. 127.0.0.1:0). An empty password accepts
// any client without authentication.
func Start(listenAddr, password string) (*Server, error) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		return nil, err
	}
	cfg := &ssh.ServerConfig{NoClientAuth: password == ""}
	if password != "" {
		cfg.PasswordCallback = func(_ ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if subtle.ConstantTimeCompare(pass, []byte(password)) == 1 {
				return nil, nil
			}
			return nil, errors.New("password rejected")
		}
	}
	cfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}
	s := &Server{Addr: ln.Addr().String(), ln: ln, done: make(chan struct{}), dirs: map[string]int{}}
	go func() {
		defer close(s.done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.handleConn(conn, cfg)
		}
	}()
	return s, nil
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	_ = s.ln.Close()
	<-s.done
}

// Commands returns every exec command received, in order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// MkdirCount reports how many times path was created or re-created.
func (s *Server) MkdirCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirs[path]
}

func (s *Server) handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	_, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, in, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, in)
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer ch.Close()
	for req := range in {
		if req.Type != "exec" {
			_ = req.Reply(false, nil)
			continue
		}
		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			_ = req.Reply(false, nil)
			continue
		}
		_ = req.Reply(true, nil)
		stdout, stderr, status := s.exec(payload.Command)
		_, _ = ch.Write([]byte(stdout))
		_, _ = ch.Stderr().Write([]byte(stderr))
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{status}))
		return
	}
}

func (s *Server) exec(line string) (string, string, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, line)

	args := splitArgs(line)
	if len(args) == 0 {
		return "", "", 0
	}
	switch args[0] {
	case "mkdir":
		paths := args[1:]
		if len(paths) > 0 && paths[0] == "-p" {
			paths = paths[1:]
		}
		if len(paths) == 0 {
			return "", "mkdir: missing operand\n", 1
		}
		for _, p := range paths {
			s.dirs[p]++
		}
		return "", "", 0
	case "echo":
		return strings.Join(args[1:], " ") + "\n", "", 0
	case "exit":
		if len(args) > 1 && len(args[1]) == 1 && args[1][0] >= '0' && args[1][0] <= '9' {
			return "", "", uint32(args[1][0] - '0')
		}
		return "", "", 0
	}
	return "", "sh: " + args[0] + ": not found\n", 127
}

// splitArgs splits a command line on blanks, honoring single quotes and
// backslash escapes outside quotes, which covers POSIX '\'' quoting.
func splitArgs(line string) []string {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		escaped bool
		have    bool
	)
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && !inQuote:
			escaped = true
			have = true
		case r == '\'':
			inQuote = !inQuote
			have = true
		case (r == ' ' || r == '\t') && !inQuote:
			if have {
				args = append(args, cur.String())
				cur.Reset()
				have = false
			}
		default:
			cur.WriteRune(r)
			have = true
		}
	}
	if have {
		args = append(args, cur.String())
	}
	return args
}

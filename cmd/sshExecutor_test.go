package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"

	srv "deploy-sync/tools/sshserv"
)

func startServer(t *testing.T, password string) *srv.Server {
	t.Helper()
	t.Setenv("SSH_AUTH_SOCK", "")
	s, err := srv.Start("127.0.0.1:0", password)
	require.NoError(t, err)
	t.Cleanup(s.Stop)
	return s
}

func serverTarget(s *srv.Server, password string) transferTarget {
	return transferTarget{
		Host:       s.Addr,
		User:       "deploy",
		Path:       "/opt/order-system-backend",
		Credential: credential{Ref: "env:TEST", Password: password},
	}
}

var testTransport = transportOptions{ConnTimeout: 5 * time.Second}

// TestSSHExecutor_Mkdir_Idempotent verifies that creating the remote
// directory twice succeeds both times.
func TestSSHExecutor_Mkdir_Idempotent(t *testing.T) {
	s := startServer(t, "s3cr3t")
	target := serverTarget(s, "s3cr3t")
	e := &sshExecutor{opts: testTransport}

	first := e.Execute(mkdirRemote(target), target)
	second := e.Execute(mkdirRemote(target), target)
	require.True(t, first.Succeeded(), "first: %v %s", first.Err, first.Stderr)
	require.True(t, second.Succeeded(), "second: %v %s", second.Err, second.Stderr)
	require.Equal(t, 2, s.MkdirCount("/opt/order-system-backend"))
	require.Equal(t, "mkdir -p /opt/order-system-backend", first.Command)
	require.NotContains(t, first.Command, "s3cr3t")
}

func TestSSHExecutor_QuotedPathReachesRemote(t *testing.T) {
	s := startServer(t, "")
	target := serverTarget(s, "")
	target.Path = "/srv/it's here"
	out := (&sshExecutor{opts: testTransport}).Execute(mkdirRemote(target), target)
	require.True(t, out.Succeeded())
	require.Equal(t, 1, s.MkdirCount("/srv/it's here"))
}

func TestSSHExecutor_RemoteExitStatusCaptured(t *testing.T) {
	s := startServer(t, "")
	target := serverTarget(s, "")
	e := &sshExecutor{opts: testTransport}

	out := e.Execute(command{Name: "exit", Args: []string{"3"}}, target)
	require.Equal(t, 3, out.ExitCode)
	require.NoError(t, out.Err)
	require.False(t, out.Succeeded())

	out = e.Execute(command{Name: "rsync", Args: []string{"--version"}}, target)
	require.Equal(t, 127, out.ExitCode)
	require.Contains(t, out.Stderr, "not found")

	out = e.Execute(command{Name: "echo", Args: []string{"hello"}}, target)
	require.True(t, out.Succeeded())
	require.Equal(t, "hello\n", out.Stdout)
}

func TestSSHExecutor_WrongPassword_CapturedNotRaised(t *testing.T) {
	s := startServer(t, "right")
	target := serverTarget(s, "wrong")
	out := (&sshExecutor{opts: testTransport}).Execute(mkdirRemote(target), target)
	require.Equal(t, -1, out.ExitCode)
	require.Error(t, out.Err)
	require.Contains(t, out.Err.Error(), "ssh connection failed")
	require.NotContains(t, out.Err.Error(), "wrong")
	require.Equal(t, 0, s.MkdirCount(target.Path))
}

func TestSSHExecutor_DialFailureStubbed(t *testing.T) {
	orig := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = orig })
	dialSSHFunc = func(transferTarget, transportOptions) (*ssh.Client, error) {
		return nil, errors.New("no route to host")
	}
	target := transferTarget{Host: "10.255.255.1", Path: "/opt/x"}
	out := (&sshExecutor{}).Execute(mkdirRemote(target), target)
	require.Equal(t, -1, out.ExitCode)
	require.ErrorContains(t, out.Err, "no route to host")
}

func TestSSHExecutor_RunStubbed_TimeoutPassedThrough(t *testing.T) {
	s := startServer(t, "")
	origRun := runRemoteCommandFunc
	t.Cleanup(func() { runRemoteCommandFunc = origRun })
	var gotTimeout time.Duration
	runRemoteCommandFunc = func(c sessionClient, cmd string, timeout time.Duration) ([]byte, []byte, int, error) {
		gotTimeout = timeout
		return nil, nil, -1, errors.New("context deadline exceeded")
	}
	target := serverTarget(s, "")
	out := (&sshExecutor{opts: testTransport, timeout: 7 * time.Second}).Execute(mkdirRemote(target), target)
	require.Equal(t, 7*time.Second, gotTimeout)
	require.Equal(t, -1, out.ExitCode)
	require.ErrorContains(t, out.Err, "deadline")
}

func TestDialSSH_StrictHostKeyRequiresKnownHosts(t *testing.T) {
	target := transferTarget{Host: "127.0.0.1:1", User: "x"}
	_, err := dialSSH(target, transportOptions{StrictHost: true, KnownHosts: "/nonexistent/known_hosts"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "known_hosts file not found")
}

func TestDialSSH_BadKeyPath(t *testing.T) {
	target := transferTarget{Host: "127.0.0.1:1", Credential: credential{KeyPath: "/nonexistent/id_rsa"}}
	_, err := dialSSH(target, transportOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load key")
}

func TestDialSSH_ConnectionRefused(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")
	// Grab a free port and close it so nothing is listening there.
	s, err := srv.Start("127.0.0.1:0", "")
	require.NoError(t, err)
	addr := s.Addr
	s.Stop()
	_, err = dialSSH(transferTarget{Host: addr, User: "x"}, transportOptions{ConnTimeout: time.Second})
	require.Error(t, err)
}

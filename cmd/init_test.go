package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	resetConfig()
	t.Setenv("DEPLOY_SYNC_DELETE", "true")
	t.Setenv("DEPLOY_SYNC_CMD_TIMEOUT", "30s")
	t.Setenv("DEPLOY_SYNC_KNOWN_HOSTS", "/etc/ssh/ssh_known_hosts")
	t.Setenv("DEPLOY_SYNC_CREDENTIAL", "env:OTHER")
	applyEnvOverrides()
	require.True(t, cfgDelete)
	require.Equal(t, 30*time.Second, cfgTimeout)
	require.Equal(t, "/etc/ssh/ssh_known_hosts", cfgKnownHosts)
	require.Equal(t, "env:OTHER", cfgCredential)
	require.False(t, cfgNoop)
}

func TestApplyEnvOverrides_BadDurationIgnored(t *testing.T) {
	resetConfig()
	t.Setenv("DEPLOY_SYNC_CONN_TIMEOUT", "whenever")
	applyEnvOverrides()
	require.Equal(t, 15*time.Second, cfgConnTimeout)
}

func TestConfigureLogging_RejectsUnknownLevel(t *testing.T) {
	require.Error(t, configureLogging(os.Stderr, "chatty"))
	require.NoError(t, configureLogging(os.Stderr, ""))
}

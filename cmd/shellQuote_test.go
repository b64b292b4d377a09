package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShellQuote(t *testing.T) {
	require.Equal(t, "simple", shellQuote("simple"))
	require.Equal(t, "''", shellQuote(""))
	require.Equal(t, "'two words'", shellQuote("two words"))
	require.Equal(t, `'a'\''b'`, shellQuote("a'b"))
	require.Equal(t, "/path/ok", shellQuote("/path/ok"))
	require.Equal(t, "abc+123", shellQuote("abc+123"))
	require.Equal(t, "--exclude=node_modules", shellQuote("--exclude=node_modules"))
	require.Equal(t, "root@10.0.0.5:/opt/app/", shellQuote("root@10.0.0.5:/opt/app/"))
	require.Equal(t, "'--exclude=*.log'", shellQuote("--exclude=*.log"))
	require.Equal(t, "'$HOME'", shellQuote("$HOME"))
}

func TestCommandLine_QuotesArgs(t *testing.T) {
	require.Equal(t, "mkdir", command{Name: "mkdir"}.line())
	c := command{Name: "mkdir", Args: []string{"-p", "/opt/my app"}}
	require.Equal(t, "mkdir -p '/opt/my app'", c.line())
}

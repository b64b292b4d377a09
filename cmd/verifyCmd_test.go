package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify_OK(t *testing.T) {
	resetConfig()
	_, mf := projectDir(t, "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"verify", "--manifest", mf})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Manifest OK")
}

func TestVerify_TargetFromFlags(t *testing.T) {
	resetConfig()
	p := writeTemp(t, t.TempDir(), "deploy.yaml", "name: x\nitems: [a]\n")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"verify", "-m", p})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "target.host is required")

	resetConfig()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"verify", "-m", p, "--host", "h", "--path", "/opt/x"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Manifest OK")
}

func TestVerify_NoItemsWarns(t *testing.T) {
	resetConfig()
	p := writeTemp(t, t.TempDir(), "deploy.yaml", "name: x\ntarget: {host: h, path: /p}\n")
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"verify", "-m", p})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, errOut.String(), "no items listed")
}

func TestVerify_InvalidManifest(t *testing.T) {
	resetConfig()
	p := writeTemp(t, t.TempDir(), "deploy.yaml", "description: nameless\n")
	rootCmd.SetArgs([]string{"verify", "-m", p})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid manifest: manifest.name is required")
}

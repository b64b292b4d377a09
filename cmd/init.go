package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init configures the root command's persistent flags, binds them to
// DEPLOY_SYNC_* environment variables via Viper and registers subcommands.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgManifest, "manifest", "m", "", "Path to deploy manifest YAML (default ./"+defaultManifestPath+" when present)")
	flags.StringVar(&cfgRoot, "root", "", "Local project directory to transfer (default: manifest root or .)")
	flags.StringVarP(&cfgHost, "host", "t", "", "Remote host, optionally host:port")
	flags.StringVarP(&cfgUser, "user", "u", "", "Remote SSH username")
	flags.StringVarP(&cfgPath, "path", "p", "", "Absolute destination directory on the remote host")
	flags.StringVar(&cfgCredential, "credential", "", "Password reference: env:NAME or file:PATH")
	flags.StringVar(&cfgKeyPath, "key", "", "Path to SSH private key (PEM, OpenSSH)")
	flags.StringVar(&cfgPassphrase, "passphrase", "", "Private key passphrase (or set DEPLOY_SYNC_PASSPHRASE)")
	flags.StringVar(&cfgKnownHosts, "known-hosts", filepath.Join(os.Getenv("HOME"), ".ssh", "known_hosts"), "Path to known_hosts file")
	flags.BoolVar(&cfgStrictHost, "strict-host-key", false, "Require host key verification against known_hosts")
	flags.StringVar(&cfgProvision, "provision", provisionNative, "How to create the remote directory: native (SSH session) or tool (ssh client)")
	flags.BoolVar(&cfgDelete, "delete", false, "Let the bulk mirror delete remote files missing locally")
	flags.DurationVar(&cfgTimeout, "cmd-timeout", 0, "Per-command timeout (e.g., 10m). 0 disables")
	flags.DurationVar(&cfgConnTimeout, "conn-timeout", 15*time.Second, "Connection timeout")
	flags.StringVar(&cfgReportPath, "report", "", "Also write a YAML report to this path")
	flags.BoolVar(&cfgNoop, "noop", false, "Print planned commands without contacting the remote host")
	flags.StringVar(&cfgLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	bindFlags()

	// Pull in environment overrides on init
	cobra.OnInitialize(applyEnvOverrides)

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(planCmd)
}

// bindFlags binds every persistent flag to Viper and enables DEPLOY_SYNC_*
// environment lookups.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{
		"manifest", "root", "host", "user", "path", "credential", "key", "passphrase",
		"known-hosts", "strict-host-key", "provision", "delete", "cmd-timeout",
		"conn-timeout", "report", "noop", "log-level",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("DEPLOY_SYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// applyEnvOverrides copies Viper values (flag or environment) into the cfg*
// globals. Flags win over environment because Viper reports a changed flag
// first.
func applyEnvOverrides() {
	strs := map[string]*string{
		"manifest":    &cfgManifest,
		"root":        &cfgRoot,
		"host":        &cfgHost,
		"user":        &cfgUser,
		"path":        &cfgPath,
		"credential":  &cfgCredential,
		"key":         &cfgKeyPath,
		"passphrase":  &cfgPassphrase,
		"known-hosts": &cfgKnownHosts,
		"provision":   &cfgProvision,
		"report":      &cfgReportPath,
		"log-level":   &cfgLogLevel,
	}
	for key, dst := range strs {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	if v := viper.GetString("cmd-timeout"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfgTimeout = d
		}
	}
	if v := viper.GetString("conn-timeout"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfgConnTimeout = d
		}
	}
	// Booleans
	if viper.IsSet("strict-host-key") {
		cfgStrictHost = viper.GetBool("strict-host-key")
	}
	if viper.IsSet("delete") {
		cfgDelete = viper.GetBool("delete")
	}
	if viper.IsSet("noop") {
		cfgNoop = viper.GetBool("noop")
	}
}

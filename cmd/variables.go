package cmd

import (
	"errors"
	"os/exec"
	"time"

	"github.com/spf13/afero"
)

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

var (
	// errMissingDependency marks a fatal pre-flight failure: a required local
	// client tool is not installed. No network activity happens after it.
	errMissingDependency = errors.New("missing dependency")
	// errIncomplete reports that neither the bulk mirror nor a provisioned
	// itemized fallback completed.
	errIncomplete = errors.New("transfer protocol did not complete")
)

// Exit codes returned by Execute.
const (
	exitOK         = 0
	exitFatal      = 1
	exitIncomplete = 2
)

const defaultManifestPath = "deploy.yaml"

var (
	// Global configuration populated by flags and/or environment variables.
	// Values left empty fall back to the deploy manifest.
	cfgManifest    string
	cfgRoot        string
	cfgHost        string
	cfgUser        string
	cfgPath        string
	cfgCredential  string
	cfgKeyPath     string
	cfgPassphrase  string
	cfgKnownHosts  string
	cfgStrictHost  bool
	cfgProvision   string
	cfgDelete      bool
	cfgTimeout     time.Duration
	cfgConnTimeout time.Duration
	cfgReportPath  string
	cfgNoop        bool
	cfgLogLevel    string
)

// Allow tests to stub dialing, tool lookup and the filesystem
var (
	dialSSHFunc          = dialSSH
	runRemoteCommandFunc = runRemoteCommand
	lookPathFunc         = exec.LookPath
	newExecutorsFunc     = newExecutors
	appFs                = afero.NewOsFs()
)

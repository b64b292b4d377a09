package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// runConfig is the merged view of flags, environment, manifest and
// built-in defaults for one run.
type runConfig struct {
	Name        string
	Description string
	Root        string
	Target      transferTarget
	Transport   transportOptions
	Items       []string
	Exclude     exclusionPolicy
	Prune       bool
	Provision   string
	Timeout     time.Duration
}

// buildRunConfig loads the manifest (the default path may be absent) and
// applies flag and environment overrides on top of it.
func buildRunConfig() (*runConfig, error) {
	mfPath := cfgManifest
	if mfPath == "" {
		mfPath = defaultManifestPath
	}
	mf, err := loadManifest(mfPath)
	if err != nil {
		if cfgManifest == "" && errors.Is(err, fs.ErrNotExist) {
			log.WithField("manifest", mfPath).Debug("No deploy manifest found; using flags and defaults")
			mf = &manifest{}
		} else {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
	}

	cfg := &runConfig{
		Name:        mf.Name,
		Description: mf.Description,
		Items:       mf.Items,
		Exclude:     mf.exclusions(),
		Prune:       mf.Mirror.Delete || cfgDelete,
		Provision:   firstNonEmpty(cfgProvision, provisionNative),
		Timeout:     mf.commandTimeout(0),
	}
	// An explicit --cmd-timeout, including 0, replaces the manifest value.
	if viper.IsSet("cmd-timeout") {
		cfg.Timeout = cfgTimeout
	}

	root := firstNonEmpty(cfgRoot, mf.Root, ".")
	if cfgRoot == "" && !filepath.IsAbs(root) {
		// Without --root, paths are relative to the manifest's directory.
		root = filepath.Join(filepath.Dir(mfPath), root)
	}
	cfg.Root = filepath.Clean(root)

	host := strings.TrimSpace(firstNonEmpty(cfgHost, mf.Target.Host))
	if host == "" {
		return nil, errors.New("target host is required (--host or target.host)")
	}
	dest := strings.TrimSpace(firstNonEmpty(cfgPath, mf.Target.Path))
	if dest == "" {
		return nil, errors.New("target path is required (--path or target.path)")
	}
	if !path.IsAbs(dest) {
		return nil, fmt.Errorf("target path must be absolute, got %q", dest)
	}
	switch cfg.Provision {
	case provisionNative, provisionTool:
	default:
		return nil, fmt.Errorf("--provision must be %q or %q", provisionNative, provisionTool)
	}

	cred, err := resolveCredential(firstNonEmpty(cfgCredential, mf.Credential), cfgKeyPath, cfgPassphrase)
	if err != nil {
		return nil, err
	}
	cfg.Target = transferTarget{
		Host:       host,
		User:       strings.TrimSpace(firstNonEmpty(cfgUser, mf.Target.User)),
		Path:       dest,
		Credential: cred,
	}
	cfg.Transport = transportOptions{
		KnownHosts:  cfgKnownHosts,
		StrictHost:  cfgStrictHost,
		ConnTimeout: cfgConnTimeout,
	}
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

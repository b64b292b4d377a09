package cmd

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// loadManifest reads and validates the deploy manifest. Target fields may be
// left empty here because flags and environment can still supply them;
// runConfig validation checks the merged result.
func loadManifest(file string) (*manifest, error) {
	b, err := afero.ReadFile(appFs, file)
	if err != nil {
		return nil, err
	}
	mf := &manifest{}
	if err := yamlUnmarshal(b, mf); err != nil {
		return nil, err
	}
	if err := mf.validate(); err != nil {
		return nil, err
	}
	return mf, nil
}

// validate checks the fields that do not depend on flag overrides.
func (m *manifest) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("manifest.name is required")
	}
	if p := strings.TrimSpace(m.Target.Path); p != "" && !path.IsAbs(p) {
		return fmt.Errorf("target.path must be absolute, got %q", p)
	}
	for i, it := range m.Items {
		if _, ok := cleanManifestEntry(it); !ok {
			return fmt.Errorf("items[%d] %q must be a relative path inside the project root", i, it)
		}
	}
	if err := m.exclusions().validate(); err != nil {
		return err
	}
	if m.Timeout != "" {
		if _, err := time.ParseDuration(m.Timeout); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
	}
	return nil
}

// commandTimeout returns the manifest timeout, or defaultTimeout when unset.
func (m *manifest) commandTimeout(defaultTimeout time.Duration) time.Duration {
	if m.Timeout == "" {
		return defaultTimeout
	}
	d, err := time.ParseDuration(m.Timeout)
	if err != nil {
		return defaultTimeout
	}
	return d
}

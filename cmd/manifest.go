package cmd

// manifest models the deploy YAML consumed by deploy-sync: report metadata,
// the default target, the credential reference, the item list used by the
// itemized fallback and the exclusion patterns used by the bulk mirror.
type manifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Root        string     `yaml:"root,omitempty"`
	Target      targetSpec `yaml:"target"`
	Credential  string     `yaml:"credential,omitempty"`
	Mirror      mirrorSpec `yaml:"mirror,omitempty"`
	// Optional per-command timeout like "30s"; unset means wait forever
	Timeout string   `yaml:"timeout,omitempty"`
	Items   []string `yaml:"items"`
	// Nil means "use the built-in exclusions"; an explicit empty list
	// disables them.
	Exclude []string `yaml:"exclude"`
}

// targetSpec describes the remote side when not provided via CLI flags. CLI
// flags take precedence over these defaults when set.
type targetSpec struct {
	Host string `yaml:"host"`
	User string `yaml:"user,omitempty"`
	Path string `yaml:"path"`
}

// mirrorSpec tunes the bulk rsync.
type mirrorSpec struct {
	Delete bool `yaml:"delete,omitempty"`
}

// exclusions returns the effective exclusion policy.
func (m *manifest) exclusions() exclusionPolicy {
	if m.Exclude == nil {
		return append(exclusionPolicy(nil), defaultExclusions...)
	}
	return exclusionPolicy(m.Exclude)
}

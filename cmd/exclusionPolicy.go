package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultExclusions are applied when the deploy manifest does not list any.
var defaultExclusions = exclusionPolicy{
	"database.db*",
	"node_modules",
	".claude",
	"*.pid",
	"*.log",
	"temp",
	"logs",
	"backups",
	"transfer_*",
}

// exclusionPolicy is an ordered set of rsync-style glob patterns. A pattern
// without a slash matches any path component, a pattern with a slash is
// anchored at the project root, and "**" spans directories.
type exclusionPolicy []string

// validate checks every pattern with doublestar and reports the first bad one.
func (p exclusionPolicy) validate() error {
	for i, pat := range p {
		trimmed := strings.TrimSuffix(strings.TrimPrefix(pat, "/"), "/")
		if trimmed == "" {
			return fmt.Errorf("exclude[%d] is empty", i)
		}
		if !doublestar.ValidatePattern(trimmed) {
			return fmt.Errorf("exclude[%d] %q is not a valid glob", i, pat)
		}
	}
	return nil
}

// matches reports whether relPath (slash separated, relative to the project
// root) is excluded by any pattern.
func (p exclusionPolicy) matches(relPath string) bool {
	relPath = strings.Trim(path.Clean("/"+relPath), "/")
	if relPath == "" {
		return false
	}
	parts := strings.Split(relPath, "/")
	for _, pat := range p {
		anchored := strings.Contains(strings.TrimSuffix(pat, "/"), "/")
		pat = strings.TrimSuffix(strings.TrimPrefix(pat, "/"), "/")
		if pat == "" {
			continue
		}
		if anchored {
			if ok, _ := doublestar.Match(pat, relPath); ok {
				return true
			}
			continue
		}
		for _, part := range parts {
			if ok, _ := doublestar.Match(pat, part); ok {
				return true
			}
		}
	}
	return false
}

// rsyncArgs renders one --exclude argument per pattern, in order.
func (p exclusionPolicy) rsyncArgs() []string {
	args := make([]string, 0, len(p))
	for _, pat := range p {
		args = append(args, "--exclude="+pat)
	}
	return args
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// pathSet resolves manifest entries against the filesystem at call time.
type pathSet struct {
	fs      afero.Fs
	exclude exclusionPolicy
}

func newPathSet(fsys afero.Fs, exclude exclusionPolicy) *pathSet {
	return &pathSet{fs: fsys, exclude: exclude}
}

// resolve returns, in manifest order, one transferItem for every entry that
// exists under root. Missing entries, duplicates and entries matched by the
// exclusion policy are skipped. Nothing is cached: each call inspects the
// filesystem again.
func (p *pathSet) resolve(manifest []string, root string) ([]transferItem, error) {
	seen := make(map[string]struct{}, len(manifest))
	items := make([]transferItem, 0, len(manifest))
	for _, entry := range manifest {
		rel, ok := cleanManifestEntry(entry)
		if !ok {
			log.WithField("entry", entry).Debug("Skipping manifest entry outside the project root")
			continue
		}
		if _, dup := seen[rel]; dup {
			continue
		}
		seen[rel] = struct{}{}
		if p.exclude.matches(rel) {
			log.WithField("entry", rel).Debug("Skipping excluded manifest entry")
			continue
		}
		fi, err := p.fs.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("entry", rel).Debug("Manifest entry not found; skipping")
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", rel, err)
		}
		kind := kindFile
		if fi.IsDir() {
			kind = kindDirectory
		}
		items = append(items, transferItem{Path: rel, Kind: kind})
	}
	return items, nil
}

// cleanManifestEntry normalizes an entry to a slash separated path relative
// to the root. It rejects empty entries, absolute paths and paths escaping
// the root.
func cleanManifestEntry(entry string) (string, bool) {
	entry = strings.TrimSpace(filepath.ToSlash(entry))
	if entry == "" || path.IsAbs(entry) {
		return "", false
	}
	rel := path.Clean(entry)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

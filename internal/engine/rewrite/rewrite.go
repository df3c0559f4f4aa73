// Package rewrite produces versioned artifacts by renaming files and
// retargeting their import specifiers to the versions they resolved to.
package rewrite

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Replacement retargets one import specifier to a pinned version.
type Replacement struct {
	Specifier string
	Version   int
}

// Rewriter builds versioned artifacts from source files.
type Rewriter struct{}

// New creates a new Rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// VersionedName inserts the version before the file extension, so index.js at
// version 3 becomes index-3.js. A name without an extension gets the version
// appended.
func VersionedName(name string, version int) string {
	ext := path.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), version, ext)
}

// VersionedSpecifier applies VersionedName to the last element of a
// specifier, keeping its directory prefix.
func VersionedSpecifier(specifier string, version int) string {
	dir, base := path.Split(specifier)
	return dir + VersionedName(base, version)
}

// Rewrite replaces every occurrence of each specifier's exact text with its
// versioned form. Longer specifiers are replaced first so that a specifier
// that is a prefix of another cannot clobber it.
func Rewrite(content []byte, replacements []Replacement) []byte {
	distinct := make(map[string]int, len(replacements))
	for _, r := range replacements {
		distinct[r.Specifier] = r.Version
	}

	ordered := make([]Replacement, 0, len(distinct))
	for spec, version := range distinct {
		ordered = append(ordered, Replacement{Specifier: spec, Version: version})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].Specifier) != len(ordered[j].Specifier) {
			return len(ordered[i].Specifier) > len(ordered[j].Specifier)
		}
		return ordered[i].Specifier < ordered[j].Specifier
	})

	out := string(content)
	for _, r := range ordered {
		out = strings.ReplaceAll(out, r.Specifier, VersionedSpecifier(r.Specifier, r.Version))
	}
	return []byte(out)
}

// Build reads the source file, rewrites its specifiers and writes the
// versioned artifact into a scratch directory. The caller removes the
// directory of the returned path once the artifact is stored.
func (r *Rewriter) Build(root, identity string, version int, replacements []Replacement) (string, error) {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(identity)))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDeployFailed.Error()), "file", identity)
	}

	scratch, err := os.MkdirTemp("", "shipit-*")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrDeployFailed.Error())
	}

	artifact := filepath.Join(scratch, VersionedName(path.Base(identity), version))
	if err := os.WriteFile(artifact, Rewrite(content, replacements), 0o644); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDeployFailed.Error()), "file", identity)
	}
	return artifact, nil
}

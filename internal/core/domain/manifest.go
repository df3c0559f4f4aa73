// Package domain contains the core domain models for the deploy pipeline.
package domain

// FileRecord is the persisted per-file ledger entry: the version assigned at
// the last deploy, the content hash observed then, and a snapshot of each
// dependency's version as of that deploy.
type FileRecord struct {
	Version      int            `json:"version"`
	Hash         string         `json:"hash"`
	Dependencies map[string]int `json:"dependencies,omitempty"`
	URL          string         `json:"url,omitempty"`
}

// Changed reports whether the file must be re-deployed given its current
// content hash and the final versions of its resolved dependencies.
// A dependency absent from the stored snapshot counts as a version mismatch.
func (r *FileRecord) Changed(hash string, deps map[string]int) bool {
	if r.Hash != hash {
		return true
	}
	for path, version := range deps {
		if r.Dependencies[path] != version {
			return true
		}
	}
	return false
}

// Snapshot replaces the record's dependency snapshot with the given final
// versions. The snapshot must only be taken after every dependency has
// finished resolving for the current run.
func (r *FileRecord) Snapshot(deps map[string]int) {
	r.Dependencies = make(map[string]int, len(deps))
	for path, version := range deps {
		r.Dependencies[path] = version
	}
}

// Manifest is the single persisted source of truth: the run configuration
// plus the ledger of deployed files keyed by identity (canonical path
// relative to the repository root).
type Manifest struct {
	// Entry is the identity of the root file the graph walk starts from.
	Entry string `json:"entry"`
	// Target is the object-store destination prefix, e.g. "gs://bucket/assets".
	Target string `json:"target"`
	// TargetURL optionally replaces the destination's scheme and host in
	// returned public URLs.
	TargetURL string `json:"targetUrl,omitempty"`
	// Base is an optional subdirectory of the repository that all identities
	// are relative to.
	Base string `json:"base,omitempty"`
	// Files maps file identity to its ledger entry.
	Files map[string]*FileRecord `json:"files"`
}

// Record returns the ledger entry for the given identity, lazily creating a
// zero record (version 0, empty hash) on first visit. Records are never
// deleted.
func (m *Manifest) Record(identity string) *FileRecord {
	if m.Files == nil {
		m.Files = make(map[string]*FileRecord)
	}
	rec, ok := m.Files[identity]
	if !ok {
		rec = &FileRecord{Dependencies: make(map[string]int)}
		m.Files[identity] = rec
	}
	return rec
}

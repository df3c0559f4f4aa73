package domain

// HashMode selects how a file's content identity is derived.
type HashMode string

const (
	// HashModeCommit derives the hash from the last committed revision
	// touching the file, so uncommitted edits never trigger a redeploy.
	HashModeCommit HashMode = "commit"
	// HashModeContent hashes the live worktree bytes. Intended for
	// repositories without usable history.
	HashModeContent HashMode = "content"
)

const (
	// DefaultGateCapacity bounds how many external commands run at once.
	DefaultGateCapacity = 40
	// DefaultManifestName is the manifest filename inside the worktree.
	DefaultManifestName = "deploy.json"
	// DefaultCacheControl is the metadata set on uploaded artifacts.
	// Versioned filenames make artifacts immutable, so caches may hold them
	// for a year.
	DefaultCacheControl = "public, max-age=31536000"
)

// Settings is the tool configuration loaded from shipit.yaml. It configures
// the run environment; per-deploy state lives in the Manifest.
type Settings struct {
	// Repository is the git URL or local path of the source repository.
	Repository string
	// Branch overrides the deployed branch. Empty means the current branch.
	Branch string
	// Worktree is the directory holding the checked-out working copy.
	Worktree string
	// ManifestName is the manifest filename relative to the worktree root.
	ManifestName string
	// Hash selects the content hash mode.
	Hash HashMode
	// GateCapacity bounds concurrent external commands.
	GateCapacity int
	// CacheControl is the Cache-Control header set on uploaded artifacts.
	CacheControl string
	// ContentTypes maps file extensions to MIME types, merged over defaults.
	ContentTypes map[string]string
	// PushManifest commits and pushes the updated manifest after a run.
	PushManifest bool
}

// ContentType returns the MIME type for a filename extension (including the
// leading dot), falling back to a generic binary type.
func (s *Settings) ContentType(ext string) string {
	if ct, ok := s.ContentTypes[ext]; ok {
		return ct
	}
	switch ext {
	case ".js", ".mjs":
		return "application/javascript"
	case ".css":
		return "text/css"
	case ".html":
		return "text/html"
	case ".json", ".map":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrCycleDetected is returned when a file is reachable from itself
	// through its own import chain. It is fatal for the run.
	ErrCycleDetected = zerr.New("import cycle detected")

	// ErrImportNotFound is returned when an import specifier does not resolve
	// to a file inside the repository.
	ErrImportNotFound = zerr.New("import does not resolve to a file")

	// ErrImportOutsideRoot is returned when a specifier escapes the
	// repository root after canonicalization.
	ErrImportOutsideRoot = zerr.New("import resolves outside repository root")

	// ErrEntryNotFound is returned when the manifest's entry file does not
	// exist in the checked-out worktree.
	ErrEntryNotFound = zerr.New("entry file not found")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestUnmarshalFailed is returned when the manifest cannot be parsed.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrManifestMarshalFailed is returned when the manifest cannot be serialized.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be persisted.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrMissingEntry is returned when the manifest declares no entry file.
	ErrMissingEntry = zerr.New("manifest declares no entry file")

	// ErrMissingTarget is returned when the manifest declares no destination prefix.
	ErrMissingTarget = zerr.New("manifest declares no destination prefix")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrCommandFailed is returned when an external command exits non-zero
	// and the failure has no more specific classification.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUploadFailed is returned when storing an artifact in the object
	// store fails for a reason other than a benign pre-existing object.
	ErrUploadFailed = zerr.New("upload failed")

	// ErrWorktreeFailed is returned when the repository worktree cannot be
	// checked out or reset.
	ErrWorktreeFailed = zerr.New("failed to prepare worktree")

	// ErrDeployFailed is returned by the app layer when the deploy run aborts.
	ErrDeployFailed = zerr.New("deploy failed")
)

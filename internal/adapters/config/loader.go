// Package config provides the settings loader for shipit.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file at path and applies defaults. A missing file
// yields pure defaults: a local repository in the working directory.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	var dto settingsDTO

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
		}
	} else if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	settings := &domain.Settings{
		Repository:   dto.Repository,
		Branch:       dto.Branch,
		Worktree:     dto.Worktree,
		ManifestName: dto.Manifest,
		Hash:         domain.HashMode(dto.Hash),
		GateCapacity: dto.Concurrency,
		CacheControl: dto.CacheControl,
		ContentTypes: dto.ContentTypes,
		PushManifest: dto.PushManifest,
	}
	applyDefaults(settings)

	if settings.Hash != domain.HashModeCommit && settings.Hash != domain.HashModeContent {
		return nil, zerr.With(domain.ErrSettingsParseFailed, "hash", string(settings.Hash))
	}

	return settings, nil
}

func applyDefaults(s *domain.Settings) {
	if s.Worktree == "" {
		s.Worktree = "."
	}
	if s.ManifestName == "" {
		s.ManifestName = domain.DefaultManifestName
	}
	if s.Hash == "" {
		s.Hash = domain.HashModeCommit
	}
	if s.GateCapacity <= 0 {
		s.GateCapacity = domain.DefaultGateCapacity
	}
	if s.CacheControl == "" {
		s.CacheControl = domain.DefaultCacheControl
	}
}

package ports

import "go.trai.ch/shipit/internal/core/domain"

// SettingsLoader loads the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path and applies defaults.
	Load(path string) (*domain.Settings, error)
}

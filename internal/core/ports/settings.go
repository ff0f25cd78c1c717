package ports

import "go.trai.ch/ship/internal/core/domain"

// SettingsLoader loads operator settings for a suite.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings of the suite rooted at root, falling back to defaults.
	Load(root string) (domain.Settings, error)
}

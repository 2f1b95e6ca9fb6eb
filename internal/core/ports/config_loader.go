package ports

import "go.trai.ch/domx/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file by walking up from cwd and resolves it.
	// When no file exists the defaults rooted at cwd are returned.
	Load(cwd string) (*domain.Config, error)
}

package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct{}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the local configuration file.
// Returns domain.ErrConfigExists if it is already present.
func (uc *InitConfig) Execute(_ context.Context, _ InitConfigInput) (*InitConfigOutput, error) {
	path, err := uc.configManager.InitLocal()
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}

package interfaces

import (
	"context"

	"github.com/WietRob/ai-router-system/pkg/domain/model"
)

// SetupUseCase defines the interface for the bootstrap flow
type SetupUseCase interface {
	// Run creates the workspace directories, downloads the manifest scripts,
	// and marks them executable
	Run(ctx context.Context, manifest *model.Manifest) (*model.SetupReport, error)
}

// StatusUseCase defines the interface for install verification
type StatusUseCase interface {
	// Check inspects the workspace described by the manifest
	Check(ctx context.Context, manifest *model.Manifest) (*model.InstallStatus, error)
}

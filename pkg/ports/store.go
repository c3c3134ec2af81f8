package ports

import (
	"context"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

// ProjectStore defines the interface for persisting drawings.
// Implementations own the encoding; the engine only sees domain.Project.
type ProjectStore interface {
	// Save persists the project under key, replacing any previous version.
	Save(ctx context.Context, key string, project *domain.Project) error

	// Load retrieves the project stored under key.
	// Returns domain.ErrProjectNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Project, error)

	// Delete removes the project. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the stored keys.
	List(ctx context.Context) ([]string, error)
}

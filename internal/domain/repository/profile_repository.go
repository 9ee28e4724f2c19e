package repository

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	// Create creates a new profile
	Create(ctx context.Context, profile *entity.Profile) error

	// GetByID retrieves a profile by ID, with all embedded sub-entities
	GetByID(ctx context.Context, id string) (*entity.Profile, error)

	// GetByEmail retrieves a profile by email
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Save persists the full current state of a profile
	Save(ctx context.Context, profile *entity.Profile) error

	// Patch applies a partial update of top-level fields and returns
	// the updated profile
	Patch(ctx context.Context, id string, fields map[string]any) (*entity.Profile, error)

	// Delete removes a profile by ID
	Delete(ctx context.Context, id string) error

	// IncrementViews bumps the profile view counter
	IncrementViews(ctx context.Context, id string) error

	// List retrieves profiles matching the query
	List(ctx context.Context, query dao.ProfileQuery) ([]*entity.Profile, error)

	// ExistsByEmail checks if an email is taken
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of profiles
	Count(ctx context.Context) (int64, error)
}

// Package impl provides repository implementations that delegate to the DAO layer.
// This separation allows repositories to focus on business logic while DAOs handle
// database-specific operations.
package impl

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
)

// profileRepository implements repository.ProfileRepository by delegating to
// ProfileDAO.
type profileRepository struct {
	dao dao.ProfileDAO
}

// NewProfileRepository creates a new ProfileRepository instance.
func NewProfileRepository(profileDAO dao.ProfileDAO) repository.ProfileRepository {
	return &profileRepository{dao: profileDAO}
}

// Create inserts a new profile.
func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return r.dao.Insert(ctx, profile)
}

// GetByID retrieves a profile by its ID.
func (r *profileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.dao.FindByID(ctx, id)
}

// GetByEmail retrieves a profile by its email.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.dao.FindByEmail(ctx, email)
}

// Save persists the full current state of a profile.
func (r *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	return r.dao.Replace(ctx, profile)
}

// Patch applies a partial update of top-level fields.
func (r *profileRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Profile, error) {
	return r.dao.UpdateFields(ctx, id, fields)
}

// Delete removes a profile by ID.
func (r *profileRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

// IncrementViews bumps the profile view counter.
func (r *profileRepository) IncrementViews(ctx context.Context, id string) error {
	return r.dao.IncrementViews(ctx, id)
}

// List retrieves profiles matching the query.
func (r *profileRepository) List(ctx context.Context, query dao.ProfileQuery) ([]*entity.Profile, error) {
	return r.dao.FindMany(ctx, query)
}

// ExistsByEmail checks if a profile with the given email exists.
func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.dao.ExistsByEmail(ctx, email)
}

// Count returns the total number of profiles.
func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

// Package dao defines data access object interfaces for database abstraction.
// The DAO layer provides a clean separation between repository business logic
// and the MongoDB-specific implementation.
package dao

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

// ProfileQuery carries the optional filters for profile listing and search.
// Zero-valued fields do not constrain the result set.
type ProfileQuery struct {
	// Search matches name, job title or department, case-insensitively.
	Search string

	// Name, Skill, Project and Location are case-insensitive partial matches.
	Name     string
	Skill    string
	Project  string
	Location string

	// Department and SkillLevel are exact matches.
	Department string
	SkillLevel string

	// Limit caps the result set; zero means unbounded.
	Limit int64
}

// ProfileDAO defines the data access operations for profiles. Sub-entities
// (skills, projects, experiences, education, certifications, connections)
// are embedded in the profile document and travel with it.
type ProfileDAO interface {
	// Insert stores a new profile, assigning its ID and timestamps.
	Insert(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile with all embedded data.
	// Returns nil, nil if the profile is not found.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// FindByEmail retrieves a profile by its normalized email address.
	// Returns nil, nil if the profile is not found.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Replace persists the full current state of the profile, bumping
	// its updated-at timestamp.
	Replace(ctx context.Context, profile *entity.Profile) error

	// UpdateFields applies a partial update of top-level fields and
	// returns the updated profile. Returns nil, nil if the profile is
	// not found.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*entity.Profile, error)

	// Delete removes a profile permanently.
	Delete(ctx context.Context, id string) error

	// IncrementViews bumps the profile view counter atomically.
	IncrementViews(ctx context.Context, id string) error

	// FindMany retrieves profiles matching the query, newest first. The
	// password and connections fields are never part of the result.
	FindMany(ctx context.Context, query ProfileQuery) ([]*entity.Profile, error)

	// ExistsByEmail checks if a profile with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of profiles.
	Count(ctx context.Context) (int64, error)

	// EnsureIndexes creates the collection indexes, including the unique
	// email index the registration flow relies on.
	EnsureIndexes(ctx context.Context) error
}

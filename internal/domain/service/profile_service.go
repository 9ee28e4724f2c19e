package service

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// ProfileService defines profile CRUD and embedded sub-entity operations.
// Sub-entity mutations load the parent profile, mutate the embedded record
// and persist the whole profile, so a profile is always internally
// consistent.
type ProfileService interface {
	// Create creates a profile without a credential (administrative path)
	Create(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error)

	// Get retrieves a profile by ID, connections excluded
	Get(ctx context.Context, id string) (*response.ProfileResponse, error)

	// List retrieves profiles matching the filters, newest first
	List(ctx context.Context, q *request.ListProfilesQuery) ([]response.ProfileResponse, error)

	// Update applies a whitelisted partial update
	Update(ctx context.Context, id string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)

	// Delete removes a profile permanently. Connection entries on other
	// profiles referencing it are resolved lazily at read time.
	Delete(ctx context.Context, id string) error

	// RecordView bumps the profile view counter
	RecordView(ctx context.Context, id string) error

	// Skills
	AddSkill(ctx context.Context, profileID string, req *request.AddSkillRequest) (*response.ProfileResponse, error)
	UpdateSkill(ctx context.Context, profileID, skillID string, req *request.UpdateSkillRequest) (*response.ProfileResponse, error)
	DeleteSkill(ctx context.Context, profileID, skillID string) (*response.ProfileResponse, error)
	EndorseSkill(ctx context.Context, profileID, skillID string, req *request.EndorseSkillRequest) (*response.ProfileResponse, error)

	// Projects
	AddProject(ctx context.Context, profileID string, req *request.AddProjectRequest) (*response.ProfileResponse, error)
	UpdateProject(ctx context.Context, profileID, projectID string, req *request.UpdateProjectRequest) (*response.ProfileResponse, error)
	DeleteProject(ctx context.Context, profileID, projectID string) (*response.ProfileResponse, error)

	// Experiences
	AddExperience(ctx context.Context, profileID string, req *request.AddExperienceRequest) (*response.ProfileResponse, error)
	UpdateExperience(ctx context.Context, profileID, experienceID string, req *request.UpdateExperienceRequest) (*response.ProfileResponse, error)
	DeleteExperience(ctx context.Context, profileID, experienceID string) (*response.ProfileResponse, error)

	// Education
	AddEducation(ctx context.Context, profileID string, req *request.AddEducationRequest) (*response.ProfileResponse, error)
	UpdateEducation(ctx context.Context, profileID, educationID string, req *request.UpdateEducationRequest) (*response.ProfileResponse, error)
	DeleteEducation(ctx context.Context, profileID, educationID string) (*response.ProfileResponse, error)

	// Certifications
	AddCertification(ctx context.Context, profileID string, req *request.AddCertificationRequest) (*response.ProfileResponse, error)
	UpdateCertification(ctx context.Context, profileID, certificationID string, req *request.UpdateCertificationRequest) (*response.ProfileResponse, error)
	DeleteCertification(ctx context.Context, profileID, certificationID string) (*response.ProfileResponse, error)
}

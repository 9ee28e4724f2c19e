package impl

import (
	"context"
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

// profileService implements service.ProfileService
type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(profileRepo repository.ProfileRepository) service.ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// load fetches a profile or fails with the not-found sentinel.
func (s *profileService) load(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, service.ErrProfileNotFound
	}
	return profile, nil
}

// save persists the mutated profile and returns its owner projection.
func (s *profileService) save(ctx context.Context, profile *entity.Profile) (*response.ProfileResponse, error) {
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return response.NewProfileResponse(profile), nil
}

func (s *profileService) Create(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error) {
	email := entity.NormalizeEmail(req.Email)

	exists, err := s.profileRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, service.ErrEmailExists
	}

	profile := &entity.Profile{
		Name:           req.Name,
		Email:          email,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Department:     req.Department,
		Location:       req.Location,
		Bio:            req.Bio,
		Website:        req.Website,
		ProfilePicture: req.ProfilePicture,
		CoverPicture:   req.CoverPicture,
		Skills:         []entity.Skill{},
		Projects:       []entity.Project{},
		Experiences:    []entity.Experience{},
		Education:      []entity.Education{},
		Certifications: []entity.Certification{},
		Connections:    []entity.Connection{},
	}
	if req.OpenForWork != nil {
		profile.OpenForWork = *req.OpenForWork
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if apperrors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, service.ErrEmailExists
		}
		return nil, err
	}
	return response.NewPublicProfileResponse(profile), nil
}

func (s *profileService) Get(ctx context.Context, id string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return response.NewPublicProfileResponse(profile), nil
}

func (s *profileService) List(ctx context.Context, q *request.ListProfilesQuery) ([]response.ProfileResponse, error) {
	query := dao.ProfileQuery{
		Search:     normalizeParam(q.Search),
		Name:       normalizeParam(q.Name),
		Department: normalizeParam(q.Department),
		Skill:      normalizeParam(q.Skill),
		SkillLevel: normalizeParam(q.SkillLevel),
		Project:    normalizeParam(q.Project),
	}

	profiles, err := s.profileRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return response.NewPublicProfileResponses(profiles), nil
}

func (s *profileService) Update(ctx context.Context, id string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if req.IsEmpty() {
		return nil, service.ErrEmptyUpdate
	}

	updated, err := s.profileRepo.Patch(ctx, id, profilePatchFields(req))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, service.ErrProfileNotFound
	}
	return response.NewPublicProfileResponse(updated), nil
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, id)
}

func (s *profileService) RecordView(ctx context.Context, id string) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.profileRepo.IncrementViews(ctx, id)
}

// Skills

func (s *profileService) AddSkill(ctx context.Context, profileID string, req *request.AddSkillRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Skills = append(profile.Skills, entity.Skill{
		ID:                entity.NewID(),
		Name:              req.Name,
		Level:             entity.SkillLevel(req.Level),
		Description:       req.Description,
		YearsOfExperience: req.YearsOfExperience,
		Endorsements:      []entity.Endorsement{},
	})
	return s.save(ctx, profile)
}

func (s *profileService) UpdateSkill(ctx context.Context, profileID, skillID string, req *request.UpdateSkillRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	skill := profile.FindSkill(skillID)
	if skill == nil {
		return nil, service.ErrSkillNotFound
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Level != nil {
		skill.Level = entity.SkillLevel(*req.Level)
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.YearsOfExperience != nil {
		skill.YearsOfExperience = *req.YearsOfExperience
	}
	return s.save(ctx, profile)
}

func (s *profileService) DeleteSkill(ctx context.Context, profileID, skillID string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.FindSkill(skillID) == nil {
		return nil, service.ErrSkillNotFound
	}

	kept := profile.Skills[:0]
	for _, sk := range profile.Skills {
		if sk.ID != skillID {
			kept = append(kept, sk)
		}
	}
	profile.Skills = kept
	return s.save(ctx, profile)
}

func (s *profileService) EndorseSkill(ctx context.Context, profileID, skillID string, req *request.EndorseSkillRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if _, err := s.load(ctx, req.EndorserID); err != nil {
		return nil, err
	}

	skill := profile.FindSkill(skillID)
	if skill == nil {
		return nil, service.ErrSkillNotFound
	}
	if skill.IsEndorsedBy(req.EndorserID) {
		return nil, service.ErrAlreadyEndorsed
	}

	skill.Endorsements = append(skill.Endorsements, entity.Endorsement{
		EndorsedBy: req.EndorserID,
		EndorsedAt: time.Now(),
	})
	return s.save(ctx, profile)
}

// Projects

func (s *profileService) AddProject(ctx context.Context, profileID string, req *request.AddProjectRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	endDate := req.EndDate
	if req.IsCurrent {
		endDate = nil
	}
	profile.Projects = append(profile.Projects, entity.Project{
		ID:           entity.NewID(),
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		RepoURL:      req.RepoURL,
		StartDate:    req.StartDate,
		EndDate:      endDate,
		IsCurrent:    req.IsCurrent,
		Role:         req.Role,
	})
	return s.save(ctx, profile)
}

func (s *profileService) UpdateProject(ctx context.Context, profileID, projectID string, req *request.UpdateProjectRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	project := profile.FindProject(projectID)
	if project == nil {
		return nil, service.ErrProjectNotFound
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
	}
	if req.RepoURL != nil {
		project.RepoURL = *req.RepoURL
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		project.IsCurrent = *req.IsCurrent
	}
	if req.Role != nil {
		project.Role = *req.Role
	}
	if project.IsCurrent {
		// an ongoing project carries no end date
		project.EndDate = nil
	}
	return s.save(ctx, profile)
}

func (s *profileService) DeleteProject(ctx context.Context, profileID, projectID string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.FindProject(projectID) == nil {
		return nil, service.ErrProjectNotFound
	}

	kept := profile.Projects[:0]
	for _, p := range profile.Projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	profile.Projects = kept
	return s.save(ctx, profile)
}

// Experiences

func (s *profileService) AddExperience(ctx context.Context, profileID string, req *request.AddExperienceRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	endDate := req.EndDate
	if req.IsCurrent {
		endDate = nil
	}
	profile.Experiences = append(profile.Experiences, entity.Experience{
		ID:          entity.NewID(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     endDate,
		IsCurrent:   req.IsCurrent,
		Description: req.Description,
	})
	return s.save(ctx, profile)
}

func (s *profileService) UpdateExperience(ctx context.Context, profileID, experienceID string, req *request.UpdateExperienceRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	exp := profile.FindExperience(experienceID)
	if exp == nil {
		return nil, service.ErrExperienceNotFound
	}

	if req.Title != nil {
		exp.Title = *req.Title
	}
	if req.Company != nil {
		exp.Company = *req.Company
	}
	if req.Location != nil {
		exp.Location = *req.Location
	}
	if req.StartDate != nil {
		exp.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		exp.EndDate = req.EndDate
	}
	if req.IsCurrent != nil {
		exp.IsCurrent = *req.IsCurrent
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if exp.IsCurrent {
		// a current role carries no end date
		exp.EndDate = nil
	}
	return s.save(ctx, profile)
}

func (s *profileService) DeleteExperience(ctx context.Context, profileID, experienceID string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.FindExperience(experienceID) == nil {
		return nil, service.ErrExperienceNotFound
	}

	kept := profile.Experiences[:0]
	for _, e := range profile.Experiences {
		if e.ID != experienceID {
			kept = append(kept, e)
		}
	}
	profile.Experiences = kept
	return s.save(ctx, profile)
}

// Education

func (s *profileService) AddEducation(ctx context.Context, profileID string, req *request.AddEducationRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Education = append(profile.Education, entity.Education{
		ID:          entity.NewID(),
		Institution: req.Institution,
		Degree:      req.Degree,
		Field:       req.Field,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	return s.save(ctx, profile)
}

func (s *profileService) UpdateEducation(ctx context.Context, profileID, educationID string, req *request.UpdateEducationRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	edu := profile.FindEducation(educationID)
	if edu == nil {
		return nil, service.ErrEducationNotFound
	}

	if req.Institution != nil {
		edu.Institution = *req.Institution
	}
	if req.Degree != nil {
		edu.Degree = *req.Degree
	}
	if req.Field != nil {
		edu.Field = *req.Field
	}
	if req.StartDate != nil {
		edu.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		edu.EndDate = req.EndDate
	}
	return s.save(ctx, profile)
}

func (s *profileService) DeleteEducation(ctx context.Context, profileID, educationID string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.FindEducation(educationID) == nil {
		return nil, service.ErrEducationNotFound
	}

	kept := profile.Education[:0]
	for _, e := range profile.Education {
		if e.ID != educationID {
			kept = append(kept, e)
		}
	}
	profile.Education = kept
	return s.save(ctx, profile)
}

// Certifications

func (s *profileService) AddCertification(ctx context.Context, profileID string, req *request.AddCertificationRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.Certifications = append(profile.Certifications, entity.Certification{
		ID:            entity.NewID(),
		Name:          req.Name,
		Issuer:        req.Issuer,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
	})
	return s.save(ctx, profile)
}

func (s *profileService) UpdateCertification(ctx context.Context, profileID, certificationID string, req *request.UpdateCertificationRequest) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	cert := profile.FindCertification(certificationID)
	if cert == nil {
		return nil, service.ErrCertificationNotFound
	}

	if req.Name != nil {
		cert.Name = *req.Name
	}
	if req.Issuer != nil {
		cert.Issuer = *req.Issuer
	}
	if req.CredentialID != nil {
		cert.CredentialID = *req.CredentialID
	}
	if req.CredentialURL != nil {
		cert.CredentialURL = *req.CredentialURL
	}
	if req.IssueDate != nil {
		cert.IssueDate = req.IssueDate
	}
	if req.ExpiryDate != nil {
		cert.ExpiryDate = req.ExpiryDate
	}
	return s.save(ctx, profile)
}

func (s *profileService) DeleteCertification(ctx context.Context, profileID, certificationID string) (*response.ProfileResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if profile.FindCertification(certificationID) == nil {
		return nil, service.ErrCertificationNotFound
	}

	kept := profile.Certifications[:0]
	for _, c := range profile.Certifications {
		if c.ID != certificationID {
			kept = append(kept, c)
		}
	}
	profile.Certifications = kept
	return s.save(ctx, profile)
}

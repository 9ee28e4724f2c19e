// Package mocks provides hand-rolled test doubles for the repository and
// service interfaces.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.Profile

	// Error injection
	CreateErr         error
	GetByIDErr        error
	GetByEmailErr     error
	SaveErr           error
	PatchErr          error
	DeleteErr         error
	IncrementViewsErr error
	ListErr           error
	ExistsByEmailErr  error
	CountErr          error
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]*entity.Profile),
	}
}

// clone keeps callers from mutating stored state through returned pointers,
// mirroring the decode-per-read behavior of the real DAO.
func clone(p *entity.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Skills = make([]entity.Skill, len(p.Skills))
	for i, s := range p.Skills {
		cp.Skills[i] = s
		cp.Skills[i].Endorsements = append([]entity.Endorsement(nil), s.Endorsements...)
	}
	cp.Projects = make([]entity.Project, len(p.Projects))
	copy(cp.Projects, p.Projects)
	cp.Experiences = make([]entity.Experience, len(p.Experiences))
	copy(cp.Experiences, p.Experiences)
	cp.Education = make([]entity.Education, len(p.Education))
	copy(cp.Education, p.Education)
	cp.Certifications = make([]entity.Certification, len(p.Certifications))
	copy(cp.Certifications, p.Certifications)
	cp.Connections = make([]entity.Connection, len(p.Connections))
	copy(cp.Connections, p.Connections)
	return &cp
}

func (r *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.profiles {
		if existing.Email == profile.Email {
			return apperrors.ErrDuplicateKey
		}
	}
	if profile.ID == "" {
		profile.ID = entity.NewID()
	}
	r.profiles[profile.ID] = clone(profile)
	return nil
}

func (r *MockProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.profiles[id]), nil
}

func (r *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.Email == entity.NormalizeEmail(email) {
			return clone(p), nil
		}
	}
	return nil, nil
}

func (r *MockProfileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.profiles[profile.ID] = clone(profile)
	return nil
}

func (r *MockProfileRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Profile, error) {
	if r.PatchErr != nil {
		return nil, r.PatchErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "name":
			p.Name = s
		case "job_title":
			p.JobTitle = s
		case "company":
			p.Company = s
		case "location":
			p.Location = s
		case "bio":
			p.Bio = s
		case "profile_picture":
			p.ProfilePicture = s
		case "cover_picture":
			p.CoverPicture = s
		case "website":
			p.Website = s
		case "department":
			p.Department = s
		}
	}
	return clone(p), nil
}

func (r *MockProfileRepository) Delete(ctx context.Context, id string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
	return nil
}

func (r *MockProfileRepository) IncrementViews(ctx context.Context, id string) error {
	if r.IncrementViewsErr != nil {
		return r.IncrementViewsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		p.ProfileViews++
	}
	return nil
}

func (r *MockProfileRepository) List(ctx context.Context, query dao.ProfileQuery) ([]*entity.Profile, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*entity.Profile
	for _, p := range r.profiles {
		if !matches(p, query) {
			continue
		}
		cp := clone(p)
		cp.Password = ""
		cp.Connections = nil
		results = append(results, cp)
		if query.Limit > 0 && int64(len(results)) >= query.Limit {
			break
		}
	}
	return results, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matches(p *entity.Profile, q dao.ProfileQuery) bool {
	if q.Search != "" &&
		!containsFold(p.Name, q.Search) &&
		!containsFold(p.JobTitle, q.Search) &&
		!containsFold(p.Department, q.Search) {
		return false
	}
	if q.Name != "" && !containsFold(p.Name, q.Name) {
		return false
	}
	if q.Department != "" && p.Department != q.Department {
		return false
	}
	if q.Location != "" && !containsFold(p.Location, q.Location) {
		return false
	}
	if q.Skill != "" {
		found := false
		for _, s := range p.Skills {
			if containsFold(s.Name, q.Skill) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.SkillLevel != "" {
		found := false
		for _, s := range p.Skills {
			if string(s.Level) == q.SkillLevel {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Project != "" {
		found := false
		for _, pr := range p.Projects {
			if containsFold(pr.Title, q.Project) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *MockProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.ExistsByEmailErr != nil {
		return false, r.ExistsByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.Email == entity.NormalizeEmail(email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	if r.CountErr != nil {
		return 0, r.CountErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}

// Seed stores a profile directly, bypassing uniqueness checks.
func (r *MockProfileRepository) Seed(profile *entity.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = entity.NewID()
	}
	r.profiles[profile.ID] = clone(profile)
}

// Stored returns the stored state of a profile, or nil.
func (r *MockProfileRepository) Stored(id string) *entity.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.profiles[id])
}

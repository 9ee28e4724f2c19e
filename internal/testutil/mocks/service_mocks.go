package mocks

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

var (
	_ service.AuthService       = (*MockAuthService)(nil)
	_ service.ProfileService    = (*MockProfileService)(nil)
	_ service.ConnectionService = (*MockConnectionService)(nil)
	_ service.DiscoveryService  = (*MockDiscoveryService)(nil)
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc         func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	LoginFunc            func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetMeFunc            func(ctx context.Context, profileID string) (*response.ProfileResponse, error)
	UpdateOwnProfileFunc func(ctx context.Context, profileID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	ChangePasswordFunc   func(ctx context.Context, profileID string, req *request.ChangePasswordRequest) error
	LogoutFunc           func(ctx context.Context, tokenID string, secondsToExpiry int64) error
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &response.AuthResponse{
		Token: "mock-token",
		Profile: response.ProfileResponse{
			ID:    "68b00000000000000000000a",
			Name:  req.Name,
			Email: req.Email,
		},
	}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &response.AuthResponse{
		Token: "mock-token",
		Profile: response.ProfileResponse{
			ID:    "68b00000000000000000000a",
			Email: req.Email,
		},
	}, nil
}

func (m *MockAuthService) GetMe(ctx context.Context, profileID string) (*response.ProfileResponse, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc(ctx, profileID)
	}
	return &response.ProfileResponse{ID: profileID, Name: "Mock Profile"}, nil
}

func (m *MockAuthService) UpdateOwnProfile(ctx context.Context, profileID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if m.UpdateOwnProfileFunc != nil {
		return m.UpdateOwnProfileFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, profileID string, req *request.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, profileID, req)
	}
	return nil
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, secondsToExpiry int64) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenID, secondsToExpiry)
	}
	return nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	CreateFunc     func(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error)
	GetFunc        func(ctx context.Context, id string) (*response.ProfileResponse, error)
	ListFunc       func(ctx context.Context, q *request.ListProfilesQuery) ([]response.ProfileResponse, error)
	UpdateFunc     func(ctx context.Context, id string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	DeleteFunc     func(ctx context.Context, id string) error
	RecordViewFunc func(ctx context.Context, id string) error

	AddSkillFunc     func(ctx context.Context, profileID string, req *request.AddSkillRequest) (*response.ProfileResponse, error)
	UpdateSkillFunc  func(ctx context.Context, profileID, skillID string, req *request.UpdateSkillRequest) (*response.ProfileResponse, error)
	DeleteSkillFunc  func(ctx context.Context, profileID, skillID string) (*response.ProfileResponse, error)
	EndorseSkillFunc func(ctx context.Context, profileID, skillID string, req *request.EndorseSkillRequest) (*response.ProfileResponse, error)

	AddProjectFunc    func(ctx context.Context, profileID string, req *request.AddProjectRequest) (*response.ProfileResponse, error)
	UpdateProjectFunc func(ctx context.Context, profileID, projectID string, req *request.UpdateProjectRequest) (*response.ProfileResponse, error)
	DeleteProjectFunc func(ctx context.Context, profileID, projectID string) (*response.ProfileResponse, error)

	AddExperienceFunc    func(ctx context.Context, profileID string, req *request.AddExperienceRequest) (*response.ProfileResponse, error)
	UpdateExperienceFunc func(ctx context.Context, profileID, experienceID string, req *request.UpdateExperienceRequest) (*response.ProfileResponse, error)
	DeleteExperienceFunc func(ctx context.Context, profileID, experienceID string) (*response.ProfileResponse, error)

	AddEducationFunc    func(ctx context.Context, profileID string, req *request.AddEducationRequest) (*response.ProfileResponse, error)
	UpdateEducationFunc func(ctx context.Context, profileID, educationID string, req *request.UpdateEducationRequest) (*response.ProfileResponse, error)
	DeleteEducationFunc func(ctx context.Context, profileID, educationID string) (*response.ProfileResponse, error)

	AddCertificationFunc    func(ctx context.Context, profileID string, req *request.AddCertificationRequest) (*response.ProfileResponse, error)
	UpdateCertificationFunc func(ctx context.Context, profileID, certificationID string, req *request.UpdateCertificationRequest) (*response.ProfileResponse, error)
	DeleteCertificationFunc func(ctx context.Context, profileID, certificationID string) (*response.ProfileResponse, error)
}

func NewMockProfileService() *MockProfileService {
	return &MockProfileService{}
}

func (m *MockProfileService) Create(ctx context.Context, req *request.CreateProfileRequest) (*response.ProfileResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &response.ProfileResponse{ID: "68b00000000000000000000a", Name: req.Name, Email: req.Email}, nil
}

func (m *MockProfileService) Get(ctx context.Context, id string) (*response.ProfileResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &response.ProfileResponse{ID: id, Name: "Mock Profile"}, nil
}

func (m *MockProfileService) List(ctx context.Context, q *request.ListProfilesQuery) ([]response.ProfileResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return []response.ProfileResponse{}, nil
}

func (m *MockProfileService) Update(ctx context.Context, id string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return &response.ProfileResponse{ID: id}, nil
}

func (m *MockProfileService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProfileService) RecordView(ctx context.Context, id string) error {
	if m.RecordViewFunc != nil {
		return m.RecordViewFunc(ctx, id)
	}
	return nil
}

func (m *MockProfileService) AddSkill(ctx context.Context, profileID string, req *request.AddSkillRequest) (*response.ProfileResponse, error) {
	if m.AddSkillFunc != nil {
		return m.AddSkillFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) UpdateSkill(ctx context.Context, profileID, skillID string, req *request.UpdateSkillRequest) (*response.ProfileResponse, error) {
	if m.UpdateSkillFunc != nil {
		return m.UpdateSkillFunc(ctx, profileID, skillID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) DeleteSkill(ctx context.Context, profileID, skillID string) (*response.ProfileResponse, error) {
	if m.DeleteSkillFunc != nil {
		return m.DeleteSkillFunc(ctx, profileID, skillID)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) EndorseSkill(ctx context.Context, profileID, skillID string, req *request.EndorseSkillRequest) (*response.ProfileResponse, error) {
	if m.EndorseSkillFunc != nil {
		return m.EndorseSkillFunc(ctx, profileID, skillID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) AddProject(ctx context.Context, profileID string, req *request.AddProjectRequest) (*response.ProfileResponse, error) {
	if m.AddProjectFunc != nil {
		return m.AddProjectFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) UpdateProject(ctx context.Context, profileID, projectID string, req *request.UpdateProjectRequest) (*response.ProfileResponse, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, profileID, projectID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) DeleteProject(ctx context.Context, profileID, projectID string) (*response.ProfileResponse, error) {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, profileID, projectID)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) AddExperience(ctx context.Context, profileID string, req *request.AddExperienceRequest) (*response.ProfileResponse, error) {
	if m.AddExperienceFunc != nil {
		return m.AddExperienceFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) UpdateExperience(ctx context.Context, profileID, experienceID string, req *request.UpdateExperienceRequest) (*response.ProfileResponse, error) {
	if m.UpdateExperienceFunc != nil {
		return m.UpdateExperienceFunc(ctx, profileID, experienceID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) DeleteExperience(ctx context.Context, profileID, experienceID string) (*response.ProfileResponse, error) {
	if m.DeleteExperienceFunc != nil {
		return m.DeleteExperienceFunc(ctx, profileID, experienceID)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) AddEducation(ctx context.Context, profileID string, req *request.AddEducationRequest) (*response.ProfileResponse, error) {
	if m.AddEducationFunc != nil {
		return m.AddEducationFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) UpdateEducation(ctx context.Context, profileID, educationID string, req *request.UpdateEducationRequest) (*response.ProfileResponse, error) {
	if m.UpdateEducationFunc != nil {
		return m.UpdateEducationFunc(ctx, profileID, educationID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) DeleteEducation(ctx context.Context, profileID, educationID string) (*response.ProfileResponse, error) {
	if m.DeleteEducationFunc != nil {
		return m.DeleteEducationFunc(ctx, profileID, educationID)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) AddCertification(ctx context.Context, profileID string, req *request.AddCertificationRequest) (*response.ProfileResponse, error) {
	if m.AddCertificationFunc != nil {
		return m.AddCertificationFunc(ctx, profileID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) UpdateCertification(ctx context.Context, profileID, certificationID string, req *request.UpdateCertificationRequest) (*response.ProfileResponse, error) {
	if m.UpdateCertificationFunc != nil {
		return m.UpdateCertificationFunc(ctx, profileID, certificationID, req)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

func (m *MockProfileService) DeleteCertification(ctx context.Context, profileID, certificationID string) (*response.ProfileResponse, error) {
	if m.DeleteCertificationFunc != nil {
		return m.DeleteCertificationFunc(ctx, profileID, certificationID)
	}
	return &response.ProfileResponse{ID: profileID}, nil
}

// MockConnectionService is a mock implementation of ConnectionService
type MockConnectionService struct {
	RequestFunc func(ctx context.Context, requesterID, targetID string) error
	AcceptFunc  func(ctx context.Context, acceptorID, requesterID string) error
	RejectFunc  func(ctx context.Context, profileID, peerID string) error
	RemoveFunc  func(ctx context.Context, profileID, peerID string) error
	ListFunc    func(ctx context.Context, profileID string) ([]response.ConnectionResponse, error)
}

func NewMockConnectionService() *MockConnectionService {
	return &MockConnectionService{}
}

func (m *MockConnectionService) Request(ctx context.Context, requesterID, targetID string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, requesterID, targetID)
	}
	return nil
}

func (m *MockConnectionService) Accept(ctx context.Context, acceptorID, requesterID string) error {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, acceptorID, requesterID)
	}
	return nil
}

func (m *MockConnectionService) Reject(ctx context.Context, profileID, peerID string) error {
	if m.RejectFunc != nil {
		return m.RejectFunc(ctx, profileID, peerID)
	}
	return nil
}

func (m *MockConnectionService) Remove(ctx context.Context, profileID, peerID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, profileID, peerID)
	}
	return nil
}

func (m *MockConnectionService) List(ctx context.Context, profileID string) ([]response.ConnectionResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, profileID)
	}
	return []response.ConnectionResponse{}, nil
}

// MockDiscoveryService is a mock implementation of DiscoveryService
type MockDiscoveryService struct {
	SearchFunc func(ctx context.Context, term string, filters *request.SearchQuery) ([]response.ProfileResponse, error)
}

func NewMockDiscoveryService() *MockDiscoveryService {
	return &MockDiscoveryService{}
}

func (m *MockDiscoveryService) Search(ctx context.Context, term string, filters *request.SearchQuery) ([]response.ProfileResponse, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, filters)
	}
	return []response.ProfileResponse{}, nil
}

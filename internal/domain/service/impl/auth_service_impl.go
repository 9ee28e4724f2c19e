package impl

import (
	"context"
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	"github.com/connecthub/connecthub-go/internal/security"
	apperrors "github.com/connecthub/connecthub-go/pkg/errors"
)

// authService implements service.AuthService
type authService struct {
	profileRepo    repository.ProfileRepository
	jwtProvider    *security.JWTProvider
	passwordHasher *security.PasswordHasher
	tokenDenylist  security.TokenDenylist
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	profileRepo repository.ProfileRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	tokenDenylist security.TokenDenylist,
) service.AuthService {
	return &authService{
		profileRepo:    profileRepo,
		jwtProvider:    jwtProvider,
		passwordHasher: passwordHasher,
		tokenDenylist:  tokenDenylist,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	email := entity.NormalizeEmail(req.Email)

	exists, err := s.profileRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, service.ErrEmailExists
	}

	hashedPassword, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		Name:           req.Name,
		Email:          email,
		Password:       hashedPassword,
		Role:           entity.RoleUser,
		Department:     req.Department,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		LastLoginAt:    &now,
		Skills:         []entity.Skill{},
		Projects:       []entity.Project{},
		Experiences:    []entity.Experience{},
		Education:      []entity.Education{},
		Certifications: []entity.Certification{},
		Connections:    []entity.Connection{},
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// The unique email index closes the check-then-create race.
		if apperrors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, service.ErrEmailExists
		}
		return nil, err
	}

	return s.generateAuthResponse(profile)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.HasCredential() {
		return nil, service.ErrInvalidCredentials
	}

	if !s.passwordHasher.Verify(req.Password, profile.Password) {
		return nil, service.ErrInvalidCredentials
	}

	now := time.Now()
	profile.LastLoginAt = &now
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(profile)
}

func (s *authService) GetMe(ctx context.Context, profileID string) (*response.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, service.ErrProfileNotFound
	}
	return response.NewProfileResponse(profile), nil
}

func (s *authService) UpdateOwnProfile(ctx context.Context, profileID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if req.IsEmpty() {
		return nil, service.ErrEmptyUpdate
	}

	updated, err := s.profileRepo.Patch(ctx, profileID, profilePatchFields(req))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, service.ErrProfileNotFound
	}
	return response.NewProfileResponse(updated), nil
}

func (s *authService) ChangePassword(ctx context.Context, profileID string, req *request.ChangePasswordRequest) error {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile == nil {
		return service.ErrProfileNotFound
	}

	if !profile.HasCredential() || !s.passwordHasher.Verify(req.CurrentPassword, profile.Password) {
		return service.ErrIncorrectPassword
	}

	hashed, err := s.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	profile.Password = hashed
	return s.profileRepo.Save(ctx, profile)
}

func (s *authService) Logout(ctx context.Context, tokenID string, secondsToExpiry int64) error {
	return s.tokenDenylist.Revoke(ctx, tokenID, time.Duration(secondsToExpiry)*time.Second)
}

func (s *authService) generateAuthResponse(profile *entity.Profile) (*response.AuthResponse, error) {
	token, err := s.jwtProvider.GenerateToken(profile)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		Token:   token,
		Profile: *response.NewPublicProfileResponse(profile),
	}, nil
}

// profilePatchFields maps the whitelisted request fields to their storage
// names. Only non-nil fields are included.
func profilePatchFields(req *request.UpdateProfileRequest) map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ProfilePicture != nil {
		fields["profile_picture"] = *req.ProfilePicture
	}
	if req.CoverPicture != nil {
		fields["cover_picture"] = *req.CoverPicture
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	return fields
}

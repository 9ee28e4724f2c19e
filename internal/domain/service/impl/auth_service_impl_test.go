package impl

import (
	"context"
	"testing"
	"time"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/security"
	"github.com/connecthub/connecthub-go/internal/testutil/mocks"
)

func newTestAuthService(repo *mocks.MockProfileRepository) service.AuthService {
	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:        "test-secret",
		TokenDuration: time.Hour,
		Issuer:        "test",
	})
	return NewAuthService(repo, jwtProvider, security.NewPasswordHasher(), security.NewMemoryTokenDenylist())
}

func TestAuthService_Register(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Dana Smith",
		Email:    "  Dana@Example.COM ",
		Password: "password123",
		JobTitle: "Engineer",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if resp.Token == "" {
		t.Error("Register() should issue a token")
	}
	if resp.Profile.Email != "dana@example.com" {
		t.Errorf("email should be normalized, got %v", resp.Profile.Email)
	}

	stored := repo.Stored(resp.Profile.ID)
	if stored == nil {
		t.Fatal("profile was not persisted")
	}
	if stored.Password == "password123" || stored.Password == "" {
		t.Error("password should be stored hashed")
	}
	if stored.Role != entity.RoleUser {
		t.Errorf("Role = %v, want user", stored.Role)
	}
	if stored.Skills == nil || stored.Connections == nil {
		t.Error("embedded collections should be initialized empty")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	req := &request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "B", Email: "A@EXAMPLE.COM", Password: "password456",
	})
	if err != service.ErrEmailExists {
		t.Errorf("error = %v, want %v", err, service.ErrEmailExists)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "dana@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() should issue a token")
	}
	if resp.Profile.LastLoginAt == nil {
		t.Error("Login() should record the login time")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "dana@example.com", Password: "wrong",
	})
	if err != service.ErrInvalidCredentials {
		t.Errorf("error = %v, want %v", err, service.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})
	if err != service.ErrInvalidCredentials {
		t.Errorf("error = %v, want %v", err, service.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_ProfileWithoutCredential(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	// Administratively created profiles carry no password hash.
	repo.Seed(&entity.Profile{
		ID: entity.NewID(), Name: "No Cred", Email: "nocred@example.com",
	})

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "nocred@example.com", Password: "anything",
	})
	if err != service.ErrInvalidCredentials {
		t.Errorf("error = %v, want %v", err, service.ErrInvalidCredentials)
	}
}

func TestAuthService_GetMe(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	now := time.Now()
	id := entity.NewID()
	repo.Seed(&entity.Profile{
		ID: id, Name: "Dana", Email: "dana@example.com",
		Connections: []entity.Connection{
			{PeerID: entity.NewID(), Status: entity.ConnectionAccepted, ConnectedAt: &now},
		},
	})

	resp, err := svc.GetMe(context.Background(), id)
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if len(resp.Connections) != 1 {
		t.Error("GetMe() should include the connections list")
	}
}

func TestAuthService_GetMe_NotFound(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	_, err := svc.GetMe(context.Background(), entity.NewID())
	if err != service.ErrProfileNotFound {
		t.Errorf("error = %v, want %v", err, service.ErrProfileNotFound)
	}
}

func TestAuthService_UpdateOwnProfile(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	id := entity.NewID()
	repo.Seed(&entity.Profile{ID: id, Name: "Dana", Email: "dana@example.com"})

	bio := "Platform engineer"
	resp, err := svc.UpdateOwnProfile(context.Background(), id, &request.UpdateProfileRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateOwnProfile() error = %v", err)
	}
	if resp.Bio != bio {
		t.Errorf("Bio = %v, want %v", resp.Bio, bio)
	}
	if resp.Name != "Dana" {
		t.Error("fields not in the patch should be unchanged")
	}
}

func TestAuthService_UpdateOwnProfile_Empty(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	id := entity.NewID()
	repo.Seed(&entity.Profile{ID: id, Name: "Dana", Email: "dana@example.com"})

	_, err := svc.UpdateOwnProfile(context.Background(), id, &request.UpdateProfileRequest{})
	if err != service.ErrEmptyUpdate {
		t.Errorf("error = %v, want %v", err, service.ErrEmptyUpdate)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "oldpassword",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	profile, _ := repo.GetByEmail(context.Background(), "dana@example.com")

	err := svc.ChangePassword(context.Background(), profile.ID, &request.ChangePasswordRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "dana@example.com", Password: "newpassword",
	}); err != nil {
		t.Errorf("login with the new password failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "dana@example.com", Password: "oldpassword",
	}); err != service.ErrInvalidCredentials {
		t.Error("login with the old password should fail")
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := mocks.NewMockProfileRepository()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Dana", Email: "dana@example.com", Password: "oldpassword",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	profile, _ := repo.GetByEmail(context.Background(), "dana@example.com")

	err := svc.ChangePassword(context.Background(), profile.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	if err != service.ErrIncorrectPassword {
		t.Errorf("error = %v, want %v", err, service.ErrIncorrectPassword)
	}
}

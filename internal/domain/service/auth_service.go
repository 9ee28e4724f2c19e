package service

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new profile with a credential and returns a token
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)

	// Login authenticates a profile and returns a token
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)

	// GetMe returns the authenticated profile, connections included
	GetMe(ctx context.Context, profileID string) (*response.ProfileResponse, error)

	// UpdateOwnProfile applies a whitelisted partial update to the
	// authenticated profile
	UpdateOwnProfile(ctx context.Context, profileID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)

	// ChangePassword replaces the credential after verifying the current one
	ChangePassword(ctx context.Context, profileID string, req *request.ChangePasswordRequest) error

	// Logout revokes the presented token until its natural expiry
	Logout(ctx context.Context, tokenID string, secondsToExpiry int64) error
}

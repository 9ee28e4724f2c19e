package security

import (
	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

const (
	// ContextKeyProfile is the key for storing the profile in context
	ContextKeyProfile = "current_profile"
	// ContextKeyClaims is the key for storing claims in context
	ContextKeyClaims = "current_claims"
)

// SecurityService provides security-related utilities
type SecurityService struct {
	jwtProvider *JWTProvider
}

// NewSecurityService creates a new SecurityService instance
func NewSecurityService(jwtProvider *JWTProvider) *SecurityService {
	return &SecurityService{jwtProvider: jwtProvider}
}

// GetCurrentProfile retrieves the current profile from the context
func (s *SecurityService) GetCurrentProfile(c *gin.Context) *entity.Profile {
	profile, exists := c.Get(ContextKeyProfile)
	if !exists {
		return nil
	}
	if p, ok := profile.(*entity.Profile); ok {
		return p
	}
	return nil
}

// GetCurrentProfileID retrieves the current profile's ID from the context
func (s *SecurityService) GetCurrentProfileID(c *gin.Context) string {
	claims := s.GetCurrentClaims(c)
	if claims != nil {
		return claims.ProfileID
	}
	return ""
}

// GetCurrentClaims retrieves the current JWT claims from the context
func (s *SecurityService) GetCurrentClaims(c *gin.Context) *ProfileClaims {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	if cl, ok := claims.(*ProfileClaims); ok {
		return cl
	}
	return nil
}

// SetCurrentProfile sets the current profile in the context
func (s *SecurityService) SetCurrentProfile(c *gin.Context, profile *entity.Profile) {
	c.Set(ContextKeyProfile, profile)
}

// SetCurrentClaims sets the current claims in the context
func (s *SecurityService) SetCurrentClaims(c *gin.Context, claims *ProfileClaims) {
	c.Set(ContextKeyClaims, claims)
}

// IsAuthenticated checks if the current request is authenticated
func (s *SecurityService) IsAuthenticated(c *gin.Context) bool {
	return s.GetCurrentClaims(c) != nil
}

// HasRole checks if the current profile has the specified role
func (s *SecurityService) HasRole(c *gin.Context, role entity.Role) bool {
	claims := s.GetCurrentClaims(c)
	if claims == nil {
		return false
	}
	return claims.Role == role
}

// IsAdmin checks if the current profile is an admin
func (s *SecurityService) IsAdmin(c *gin.Context) bool {
	return s.HasRole(c, entity.RoleAdmin)
}

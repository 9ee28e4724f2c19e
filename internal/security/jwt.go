package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// ProfileClaims represents the JWT claims for an authenticated profile
type ProfileClaims struct {
	ProfileID string      `json:"profile_id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider handles JWT token generation and validation
type JWTProvider struct {
	secret        []byte
	tokenDuration time.Duration
	issuer        string
}

// NewJWTProvider creates a new JWTProvider instance
func NewJWTProvider(cfg *config.JWTConfig) *JWTProvider {
	return &JWTProvider{
		secret:        []byte(cfg.Secret),
		tokenDuration: cfg.TokenDuration,
		issuer:        cfg.Issuer,
	}
}

// GenerateToken generates a new access token for a profile. The token ID is
// unique per issuance so individual tokens can be revoked on logout.
func (p *JWTProvider) GenerateToken(profile *entity.Profile) (string, error) {
	now := time.Now()
	claims := ProfileClaims{
		ProfileID: profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    p.issuer,
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ValidateToken validates a token and returns the claims
func (p *JWTProvider) ValidateToken(tokenString string) (*ProfileClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ProfileClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return p.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ProfileClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetTokenDuration returns the token duration in seconds
func (p *JWTProvider) GetTokenDuration() int64 {
	return int64(p.tokenDuration.Seconds())
}

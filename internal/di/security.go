package di

import (
	"go.uber.org/fx"

	"github.com/connecthub/connecthub-go/internal/config"
	"github.com/connecthub/connecthub-go/internal/security"
)

// SecurityModule provides security-related dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		provideJWTProvider,
		providePasswordHasher,
		provideSecurityService,
		provideTokenDenylist,
	),
)

func provideJWTProvider(cfg *config.JWTConfig) *security.JWTProvider {
	return security.NewJWTProvider(cfg)
}

func providePasswordHasher() *security.PasswordHasher {
	return security.NewPasswordHasher()
}

func provideSecurityService(jwtProvider *security.JWTProvider) *security.SecurityService {
	return security.NewSecurityService(jwtProvider)
}

func provideTokenDenylist(redisDB *RedisDatabase) security.TokenDenylist {
	if redisDB.Client != nil {
		return security.NewRedisTokenDenylist(redisDB.Client)
	}
	return security.NewMemoryTokenDenylist()
}

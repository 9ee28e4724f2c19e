package di

import (
	"go.uber.org/fx"

	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	serviceimpl "github.com/connecthub/connecthub-go/internal/domain/service/impl"
	"github.com/connecthub/connecthub-go/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideAuthService,
		provideProfileService,
		provideConnectionService,
		provideDiscoveryService,
	),
)

func provideAuthService(
	profileRepo repository.ProfileRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	tokenDenylist security.TokenDenylist,
) service.AuthService {
	return serviceimpl.NewAuthService(profileRepo, jwtProvider, passwordHasher, tokenDenylist)
}

func provideProfileService(profileRepo repository.ProfileRepository) service.ProfileService {
	return serviceimpl.NewProfileService(profileRepo)
}

func provideConnectionService(profileRepo repository.ProfileRepository) service.ConnectionService {
	return serviceimpl.NewConnectionService(profileRepo)
}

func provideDiscoveryService(profileRepo repository.ProfileRepository) service.DiscoveryService {
	return serviceimpl.NewDiscoveryService(profileRepo)
}

package di

import (
	"go.uber.org/fx"

	"github.com/connecthub/connecthub-go/internal/middleware"
	"github.com/connecthub/connecthub-go/internal/security"
)

// MiddlewareModule provides middleware dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(provideAuthMiddleware),
)

func provideAuthMiddleware(
	jwtProvider *security.JWTProvider,
	securityService *security.SecurityService,
	tokenDenylist security.TokenDenylist,
) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtProvider, securityService, tokenDenylist)
}

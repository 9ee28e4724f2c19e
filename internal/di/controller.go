package di

import (
	"go.uber.org/fx"

	httpctrl "github.com/connecthub/connecthub-go/internal/controller/http"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/middleware"
	"github.com/connecthub/connecthub-go/internal/security"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideAuthController,
		provideProfileController,
		provideConnectionController,
		provideDiscoveryController,
	),
)

func provideAuthController(
	authService service.AuthService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.AuthController {
	return httpctrl.NewAuthController(authService, securityService, authMiddleware)
}

func provideProfileController(
	profileService service.ProfileService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.ProfileController {
	return httpctrl.NewProfileController(profileService, securityService, authMiddleware)
}

func provideConnectionController(
	connectionService service.ConnectionService,
	securityService *security.SecurityService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.ConnectionController {
	return httpctrl.NewConnectionController(connectionService, securityService, authMiddleware)
}

func provideDiscoveryController(
	discoveryService service.DiscoveryService,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.DiscoveryController {
	return httpctrl.NewDiscoveryController(discoveryService, authMiddleware)
}

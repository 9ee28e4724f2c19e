package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	"github.com/connecthub/connecthub-go/internal/middleware"
	"github.com/connecthub/connecthub-go/internal/security"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService     service.AuthService
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService service.AuthService, securityService *security.SecurityService, authMiddleware *middleware.AuthMiddleware) *AuthController {
	return &AuthController{
		authService:     authService,
		securityService: securityService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
		auth.GET("/me", c.authMiddleware.Authenticate(), c.Me)
		auth.PUT("/profile", c.authMiddleware.Authenticate(), c.UpdateProfile)
		auth.PUT("/change-password", c.authMiddleware.Authenticate(), c.ChangePassword)
		auth.POST("/logout", c.authMiddleware.Authenticate(), c.Logout)
	}
}

// Register handles profile registration
// @Summary Register a new profile
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration request"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	auth, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccessWithToken(auth.Profile, auth.Token))
}

// Login handles profile login
// @Summary Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	auth, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithToken(auth.Profile, auth.Token))
}

// Me returns the authenticated profile
// @Summary Get current profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	profileID := c.securityService.GetCurrentProfileID(ctx)

	profile, err := c.authService.GetMe(ctx.Request.Context(), profileID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// UpdateProfile applies a partial update to the authenticated profile
// @Summary Update current profile
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Router /api/auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profileID := c.securityService.GetCurrentProfileID(ctx)

	profile, err := c.authService.UpdateOwnProfile(ctx.Request.Context(), profileID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// ChangePassword replaces the credential of the authenticated profile
// @Summary Change password
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ChangePasswordRequest true "Password change"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/auth/change-password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req request.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profileID := c.securityService.GetCurrentProfileID(ctx)

	if err := c.authService.ChangePassword(ctx.Request.Context(), profileID, &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("password changed successfully"))
}

// Logout revokes the presented token until its natural expiry
// @Summary Logout current session
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ApiResponse[any]
// @Failure 500 {object} response.ApiResponse[any]
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := c.securityService.GetCurrentClaims(ctx)
	if claims != nil && claims.ExpiresAt != nil {
		remaining := int64(time.Until(claims.ExpiresAt.Time).Seconds())
		// a token is only revoked once the denylist write lands, so a
		// failed write must not report a successful logout
		if err := c.authService.Logout(ctx.Request.Context(), claims.ID, remaining); err != nil {
			_ = ctx.Error(err)
			respondError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, response.NewMessage("logged out successfully"))
}

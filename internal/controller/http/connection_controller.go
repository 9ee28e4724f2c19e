package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	"github.com/connecthub/connecthub-go/internal/middleware"
	"github.com/connecthub/connecthub-go/internal/security"
)

// ConnectionController handles the connection lifecycle between profiles
type ConnectionController struct {
	connectionService service.ConnectionService
	securityService   *security.SecurityService
	authMiddleware    *middleware.AuthMiddleware
}

// NewConnectionController creates a new ConnectionController instance
func NewConnectionController(connectionService service.ConnectionService, securityService *security.SecurityService, authMiddleware *middleware.AuthMiddleware) *ConnectionController {
	return &ConnectionController{
		connectionService: connectionService,
		securityService:   securityService,
		authMiddleware:    authMiddleware,
	}
}

// RegisterRoutes registers the connection routes
func (c *ConnectionController) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.Use(c.authMiddleware.Authenticate())
	{
		acting := c.authMiddleware.RequireSelfOrAdmin("id")

		profiles.POST("/:id/connect/:targetId", acting, c.Request)
		profiles.PUT("/:id/connect/:targetId/accept", acting, c.Accept)
		profiles.PUT("/:id/connect/:targetId/reject", acting, c.Reject)
		profiles.DELETE("/:id/connect/:targetId", acting, c.Remove)
		profiles.GET("/:id/connections", c.List)
	}
}

// Request records a pending connection request
// @Summary Request a connection
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Requester profile ID"
// @Param targetId path string true "Target profile ID"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 400 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/connect/{targetId} [post]
func (c *ConnectionController) Request(ctx *gin.Context) {
	if err := c.connectionService.Request(ctx.Request.Context(), ctx.Param("id"), ctx.Param("targetId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("connection request sent"))
}

// Accept accepts a pending connection request
// @Summary Accept a connection request
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Accepting profile ID"
// @Param targetId path string true "Requester profile ID"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/connect/{targetId}/accept [put]
func (c *ConnectionController) Accept(ctx *gin.Context) {
	if err := c.connectionService.Accept(ctx.Request.Context(), ctx.Param("id"), ctx.Param("targetId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("connection accepted"))
}

// Reject strips the profile's connection entry referencing the peer,
// whatever its status; an absent entry is tolerated
// @Summary Reject a connection
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID holding the entry"
// @Param targetId path string true "Peer profile ID being rejected"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/connect/{targetId}/reject [put]
func (c *ConnectionController) Reject(ctx *gin.Context) {
	if err := c.connectionService.Reject(ctx.Request.Context(), ctx.Param("id"), ctx.Param("targetId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("connection request rejected"))
}

// Remove deletes an existing connection on both sides
// @Summary Remove a connection
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param targetId path string true "Peer profile ID"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/connect/{targetId} [delete]
func (c *ConnectionController) Remove(ctx *gin.Context) {
	if err := c.connectionService.Remove(ctx.Request.Context(), ctx.Param("id"), ctx.Param("targetId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("connection removed"))
}

// List returns the accepted connections of a profile
// @Summary List connections
// @Tags Connections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} response.ApiResponse[[]response.ConnectionResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/connections [get]
func (c *ConnectionController) List(ctx *gin.Context) {
	connections, err := c.connectionService.List(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithCount(connections, len(connections)))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	"github.com/connecthub/connecthub-go/internal/middleware"
)

// DiscoveryController handles the free-text profile search
type DiscoveryController struct {
	discoveryService service.DiscoveryService
	authMiddleware   *middleware.AuthMiddleware
}

// NewDiscoveryController creates a new DiscoveryController instance
func NewDiscoveryController(discoveryService service.DiscoveryService, authMiddleware *middleware.AuthMiddleware) *DiscoveryController {
	return &DiscoveryController{
		discoveryService: discoveryService,
		authMiddleware:   authMiddleware,
	}
}

// RegisterRoutes registers the discovery routes
func (c *DiscoveryController) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.Use(c.authMiddleware.Authenticate())
	{
		profiles.GET("/search/:query", c.Search)
	}
}

// Search matches profiles against a free-text term plus optional filters
// @Summary Search profiles
// @Tags Discovery
// @Produce json
// @Security BearerAuth
// @Param query path string true "Search term"
// @Param department query string false "Department filter"
// @Param skill query string false "Skill name filter"
// @Param location query string false "Location filter"
// @Success 200 {object} response.ApiResponse[[]response.ProfileResponse]
// @Router /api/profiles/search/{query} [get]
func (c *DiscoveryController) Search(ctx *gin.Context) {
	var filters request.SearchQuery
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		respondValidation(ctx, err)
		return
	}

	profiles, err := c.discoveryService.Search(ctx.Request.Context(), ctx.Param("query"), &filters)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithCount(profiles, len(profiles)))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
	"github.com/connecthub/connecthub-go/internal/middleware"
	"github.com/connecthub/connecthub-go/internal/security"
)

// ProfileController handles profile CRUD and the embedded sub-entity
// collections (skills, projects, experiences, education, certifications).
type ProfileController struct {
	profileService  service.ProfileService
	securityService *security.SecurityService
	authMiddleware  *middleware.AuthMiddleware
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService service.ProfileService, securityService *security.SecurityService, authMiddleware *middleware.AuthMiddleware) *ProfileController {
	return &ProfileController{
		profileService:  profileService,
		securityService: securityService,
		authMiddleware:  authMiddleware,
	}
}

// RegisterRoutes registers the profile routes
func (c *ProfileController) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	profiles.Use(c.authMiddleware.Authenticate())
	{
		profiles.GET("", c.List)
		profiles.POST("", c.authMiddleware.RequireAdmin(), c.Create)
		profiles.GET("/:id", c.GetByID)
		profiles.PUT("/:id", c.authMiddleware.RequireAdmin(), c.Update)
		profiles.DELETE("/:id", c.authMiddleware.RequireAdmin(), c.Delete)
		profiles.POST("/:id/view", c.RecordView)

		owner := c.authMiddleware.RequireSelfOrAdmin("id")

		profiles.POST("/:id/skills", owner, c.AddSkill)
		profiles.PUT("/:id/skills/:skillId", owner, c.UpdateSkill)
		profiles.DELETE("/:id/skills/:skillId", owner, c.DeleteSkill)
		profiles.POST("/:id/skills/:skillId/endorse", c.EndorseSkill)

		profiles.POST("/:id/projects", owner, c.AddProject)
		profiles.PUT("/:id/projects/:projectId", owner, c.UpdateProject)
		profiles.DELETE("/:id/projects/:projectId", owner, c.DeleteProject)

		profiles.POST("/:id/experiences", owner, c.AddExperience)
		profiles.PUT("/:id/experiences/:experienceId", owner, c.UpdateExperience)
		profiles.DELETE("/:id/experiences/:experienceId", owner, c.DeleteExperience)

		profiles.POST("/:id/education", owner, c.AddEducation)
		profiles.PUT("/:id/education/:educationId", owner, c.UpdateEducation)
		profiles.DELETE("/:id/education/:educationId", owner, c.DeleteEducation)

		profiles.POST("/:id/certifications", owner, c.AddCertification)
		profiles.PUT("/:id/certifications/:certificationId", owner, c.UpdateCertification)
		profiles.DELETE("/:id/certifications/:certificationId", owner, c.DeleteCertification)
	}
}

// List retrieves profiles matching the optional filters
// @Summary List profiles
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search"
// @Param department query string false "Department filter"
// @Param skill query string false "Skill name filter"
// @Success 200 {object} response.ApiResponse[[]response.ProfileResponse]
// @Router /api/profiles [get]
func (c *ProfileController) List(ctx *gin.Context) {
	var q request.ListProfilesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondValidation(ctx, err)
		return
	}

	profiles, err := c.profileService.List(ctx.Request.Context(), &q)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccessWithCount(profiles, len(profiles)))
}

// Create handles administrative profile creation
// @Summary Create a profile without a credential
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateProfileRequest true "Profile creation request"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 400 {object} response.ApiResponse[any]
// @Router /api/profiles [post]
func (c *ProfileController) Create(ctx *gin.Context) {
	var req request.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// GetByID retrieves a single profile. Reading a profile counts as a view;
// the returned snapshot predates the increment.
// @Summary Get a profile by ID
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id} [get]
func (c *ProfileController) GetByID(ctx *gin.Context) {
	profile, err := c.profileService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	// the view bump is best-effort: a failure is logged with the request
	// but never blocks the read
	if err := c.profileService.RecordView(ctx.Request.Context(), ctx.Param("id")); err != nil {
		_ = ctx.Error(err)
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// Update applies a whitelisted partial update to a profile
// @Summary Update a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id} [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// Delete removes a profile permanently
// @Summary Delete a profile
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} response.ApiResponse[any]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id} [delete]
func (c *ProfileController) Delete(ctx *gin.Context) {
	if err := c.profileService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage("profile deleted successfully"))
}

// RecordView explicitly increments a profile's view counter
// @Summary Record a profile view
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Failure 404 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/view [post]
func (c *ProfileController) RecordView(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.profileService.RecordView(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	profile, err := c.profileService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// AddSkill adds a skill to a profile
// @Summary Add a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.AddSkillRequest true "Skill"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/skills [post]
func (c *ProfileController) AddSkill(ctx *gin.Context) {
	var req request.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.AddSkill(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// UpdateSkill applies a partial update to a skill
// @Summary Update a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param skillId path string true "Skill ID"
// @Param request body request.UpdateSkillRequest true "Skill patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/skills/{skillId} [put]
func (c *ProfileController) UpdateSkill(ctx *gin.Context) {
	var req request.UpdateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateSkill(ctx.Request.Context(), ctx.Param("id"), ctx.Param("skillId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// DeleteSkill removes a skill from a profile
// @Summary Delete a skill
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param skillId path string true "Skill ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/skills/{skillId} [delete]
func (c *ProfileController) DeleteSkill(ctx *gin.Context) {
	profile, err := c.profileService.DeleteSkill(ctx.Request.Context(), ctx.Param("id"), ctx.Param("skillId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// EndorseSkill records an endorsement on a skill and returns the updated skill
// @Summary Endorse a skill
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param skillId path string true "Skill ID"
// @Param request body request.EndorseSkillRequest true "Endorsement"
// @Success 200 {object} response.ApiResponse[entity.Skill]
// @Failure 400 {object} response.ApiResponse[any]
// @Router /api/profiles/{id}/skills/{skillId}/endorse [post]
func (c *ProfileController) EndorseSkill(ctx *gin.Context) {
	var req request.EndorseSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	skillID := ctx.Param("skillId")
	profile, err := c.profileService.EndorseSkill(ctx.Request.Context(), ctx.Param("id"), skillID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var skill *entity.Skill
	for i := range profile.Skills {
		if profile.Skills[i].ID == skillID {
			skill = &profile.Skills[i]
			break
		}
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(skill))
}

// AddProject adds a project to a profile
// @Summary Add a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.AddProjectRequest true "Project"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/projects [post]
func (c *ProfileController) AddProject(ctx *gin.Context) {
	var req request.AddProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.AddProject(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// UpdateProject applies a partial update to a project
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param projectId path string true "Project ID"
// @Param request body request.UpdateProjectRequest true "Project patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/projects/{projectId} [put]
func (c *ProfileController) UpdateProject(ctx *gin.Context) {
	var req request.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateProject(ctx.Request.Context(), ctx.Param("id"), ctx.Param("projectId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// DeleteProject removes a project from a profile
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param projectId path string true "Project ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/projects/{projectId} [delete]
func (c *ProfileController) DeleteProject(ctx *gin.Context) {
	profile, err := c.profileService.DeleteProject(ctx.Request.Context(), ctx.Param("id"), ctx.Param("projectId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// AddExperience adds a work experience to a profile
// @Summary Add an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.AddExperienceRequest true "Experience"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/experiences [post]
func (c *ProfileController) AddExperience(ctx *gin.Context) {
	var req request.AddExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.AddExperience(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// UpdateExperience applies a partial update to an experience
// @Summary Update an experience
// @Tags Experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param experienceId path string true "Experience ID"
// @Param request body request.UpdateExperienceRequest true "Experience patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/experiences/{experienceId} [put]
func (c *ProfileController) UpdateExperience(ctx *gin.Context) {
	var req request.UpdateExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateExperience(ctx.Request.Context(), ctx.Param("id"), ctx.Param("experienceId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// DeleteExperience removes an experience from a profile
// @Summary Delete an experience
// @Tags Experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param experienceId path string true "Experience ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/experiences/{experienceId} [delete]
func (c *ProfileController) DeleteExperience(ctx *gin.Context) {
	profile, err := c.profileService.DeleteExperience(ctx.Request.Context(), ctx.Param("id"), ctx.Param("experienceId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// AddEducation adds an education record to a profile
// @Summary Add an education record
// @Tags Education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.AddEducationRequest true "Education"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/education [post]
func (c *ProfileController) AddEducation(ctx *gin.Context) {
	var req request.AddEducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.AddEducation(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// UpdateEducation applies a partial update to an education record
// @Summary Update an education record
// @Tags Education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param educationId path string true "Education ID"
// @Param request body request.UpdateEducationRequest true "Education patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/education/{educationId} [put]
func (c *ProfileController) UpdateEducation(ctx *gin.Context) {
	var req request.UpdateEducationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateEducation(ctx.Request.Context(), ctx.Param("id"), ctx.Param("educationId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// DeleteEducation removes an education record from a profile
// @Summary Delete an education record
// @Tags Education
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param educationId path string true "Education ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/education/{educationId} [delete]
func (c *ProfileController) DeleteEducation(ctx *gin.Context) {
	profile, err := c.profileService.DeleteEducation(ctx.Request.Context(), ctx.Param("id"), ctx.Param("educationId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// AddCertification adds a certification to a profile
// @Summary Add a certification
// @Tags Certifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body request.AddCertificationRequest true "Certification"
// @Success 201 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/certifications [post]
func (c *ProfileController) AddCertification(ctx *gin.Context) {
	var req request.AddCertificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.AddCertification(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSuccess(profile))
}

// UpdateCertification applies a partial update to a certification
// @Summary Update a certification
// @Tags Certifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param certificationId path string true "Certification ID"
// @Param request body request.UpdateCertificationRequest true "Certification patch"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/certifications/{certificationId} [put]
func (c *ProfileController) UpdateCertification(ctx *gin.Context) {
	var req request.UpdateCertificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidation(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateCertification(ctx.Request.Context(), ctx.Param("id"), ctx.Param("certificationId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

// DeleteCertification removes a certification from a profile
// @Summary Delete a certification
// @Tags Certifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param certificationId path string true "Certification ID"
// @Success 200 {object} response.ApiResponse[response.ProfileResponse]
// @Router /api/profiles/{id}/certifications/{certificationId} [delete]
func (c *ProfileController) DeleteCertification(ctx *gin.Context) {
	profile, err := c.profileService.DeleteCertification(ctx.Request.Context(), ctx.Param("id"), ctx.Param("certificationId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSuccess(profile))
}

package api

import (
	"net/http"

	"github.com/cityherald/content-api/internal/auth"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles registration, login, profile and role endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.services.User.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Login handles POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.services.User.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /api/user-profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return
	}

	profile, err := h.services.User.GetProfile(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/user-profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return
	}

	var req models.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.services.User.UpdateProfile(c.Request.Context(), actor.ID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateBiography handles PUT /api/user-profile/biography
func (h *UserHandler) UpdateBiography(c *gin.Context) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return
	}

	var req models.UpdateBiographyRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.User.UpdateBiography(c.Request.Context(), actor.ID, req.Biography); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "biography updated"})
}

// AssignRole handles POST /api/admin/roles
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req models.AssignRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.User.AssignRole(c.Request.Context(), &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role assigned"})
}

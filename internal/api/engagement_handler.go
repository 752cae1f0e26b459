package api

import (
	"net/http"

	"github.com/cityherald/content-api/internal/auth"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EngagementHandler handles preference, read-tracking and keyword endpoints
type EngagementHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(services *service.Services, log zerolog.Logger) *EngagementHandler {
	return &EngagementHandler{
		services: services,
		log:      log.With().Str("handler", "engagement").Logger(),
	}
}

// AddMembership returns the handler for POST /api/user/{interests,dislikes,subscriptions}
func (h *EngagementHandler) AddMembership(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.ActorFrom(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
			return
		}

		var req models.MembershipRequest
		if !bindJSON(c, &req) {
			return
		}

		if err := h.services.Engagement.AddMembership(c.Request.Context(), actor.ID, kind, req.Topic); err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "added"})
	}
}

// RemoveMembership returns the handler for DELETE /api/user/{interests,dislikes,subscriptions}
func (h *EngagementHandler) RemoveMembership(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := auth.ActorFrom(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
			return
		}

		var req models.MembershipRequest
		if !bindJSON(c, &req) {
			return
		}

		if err := h.services.Engagement.RemoveMembership(c.Request.Context(), actor.ID, kind, req.Topic); err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "removed"})
	}
}

// TrackRead handles POST /api/user/read-article
func (h *EngagementHandler) TrackRead(c *gin.Context) {
	var req models.ReadArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Engagement.TrackRead(c.Request.Context(), &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}

// ListKeywords handles GET /api/admin/keywords
func (h *EngagementHandler) ListKeywords(c *gin.Context) {
	keywords, err := h.services.Engagement.Keywords(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if keywords == nil {
		keywords = []*models.Keyword{}
	}
	c.JSON(http.StatusOK, keywords)
}

// CreateKeyword handles POST /api/admin/keywords
func (h *EngagementHandler) CreateKeyword(c *gin.Context) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return
	}

	var req models.CreateKeywordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Engagement.CreateKeyword(c.Request.Context(), actor.Username, req.Name); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "keyword created"})
}

// DeleteKeyword handles DELETE /api/admin/keywords/:keyword
func (h *EngagementHandler) DeleteKeyword(c *gin.Context) {
	if err := h.services.Engagement.DeleteKeyword(c.Request.Context(), c.Param("keyword")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "keyword deleted"})
}

// AttachKeywords handles POST /api/admin/articles/:id/keywords
func (h *EngagementHandler) AttachKeywords(c *gin.Context) {
	var req models.AttachKeywordsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Engagement.AttachKeywords(c.Request.Context(), c.Param("id"), req.Keywords); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "keywords attached"})
}

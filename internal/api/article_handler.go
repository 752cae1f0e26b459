package api

import (
	"net/http"

	"github.com/cityherald/content-api/internal/auth"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article and media endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetAll handles GET /api/articles
func (h *ArticleHandler) GetAll(c *gin.Context) {
	articles, err := h.services.Article.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	c.JSON(http.StatusOK, articles)
}

// GetByID handles GET /api/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	article, err := h.services.Article.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create handles POST /api/articles and POST /api/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/articles/:id and PUT /api/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req models.UpdateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Article.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article updated"})
}

// Delete handles DELETE /api/articles/:id and DELETE /api/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// Like handles POST /api/articles/:id/like
func (h *ArticleHandler) Like(c *gin.Context) {
	var req models.LikeRequest
	if !bindJSON(c, &req) {
		return
	}

	likes, err := h.services.Article.Like(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// GetMedia handles GET /api/media/:id
func (h *ArticleHandler) GetMedia(c *gin.Context) {
	media, err := h.services.Media.GetByArticleID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, media)
}

// Feed handles GET /api/user/articles
func (h *ArticleHandler) Feed(c *gin.Context) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return
	}

	feed, err := h.services.Article.Feed(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

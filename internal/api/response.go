package api

import (
	"errors"
	"net/http"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps a service error onto the HTTP error taxonomy:
// validation 400, forbidden 403, not found 404, anything else is a store
// failure answered as 500 and logged. Failure bodies are always {error}.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var dup *service.DuplicateUserError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          dup.Error(),
			"usernameExists": dup.UsernameExists,
			"emailExists":    dup.EmailExists,
		})
	case errs.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

package models

import (
	"strings"
	"time"
)

// ArticleIDWidth is the width of the canonical zero-padded article identifier.
const ArticleIDWidth = 3

// Article represents an article row in the system. The ID is stored in its
// canonical zero-padded form so cache keys and store lookups always agree.
type Article struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Content     string    `json:"content" db:"content"`
	Author      string    `json:"author" db:"author"`
	Date        time.Time `json:"date" db:"date"`
	Category    string    `json:"category" db:"category"`
	Likes       int       `json:"likes" db:"likes"`
	City        string    `json:"city" db:"city"`
	Ads         string    `json:"ads,omitempty" db:"ads"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ArticleResponse is the external projection of an article. Field names are
// part of the API contract and must not change.
type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	City        string `json:"city"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Likes       int    `json:"likes"`
}

// ToResponse maps an article row onto its external shape.
func (a *Article) ToResponse() *ArticleResponse {
	return &ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		City:        a.City,
		Author:      a.Author,
		Date:        a.Date.Format("2006-01-02"),
		Category:    a.Category,
		Likes:       a.Likes,
	}
}

// NormalizeArticleID converts a raw path or payload identifier into the
// canonical zero-padded form. Identifiers are numeric; anything else is
// rejected by the caller as a validation error.
func NormalizeArticleID(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	// Strip redundant leading zeros before padding so every numeric spelling
	// of the same id maps to one key.
	id = strings.TrimLeft(id, "0")
	if id == "" {
		id = "0"
	}
	if len(id) < ArticleIDWidth {
		id = strings.Repeat("0", ArticleIDWidth-len(id)) + id
	}
	return id, true
}

// CreateArticleRequest is the payload for article creation
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Date        string `json:"date"`
	Category    string `json:"category" validate:"required"`
	City        string `json:"city"`
	Ads         string `json:"ads"`
}

// UpdateArticleRequest is the payload for article updates. All fields are
// optional; only the ones present are written.
type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	City        *string `json:"city"`
	Ads         *string `json:"ads"`
}

// LikeRequest is the payload for POST /api/articles/:id/like
type LikeRequest struct {
	Action string `json:"action" validate:"required,oneof=like unlike"`
}

// LikeActions defines the accepted like actions
var LikeActions = map[string]bool{
	"like":   true,
	"unlike": true,
}

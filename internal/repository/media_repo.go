package repository

import (
	"context"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
)

// mediaRepo is the concrete implementation of MediaRepository
type mediaRepo struct {
	db *database.DB
}

// NewMediaRepo creates a new media repository
func NewMediaRepo(db *database.DB) MediaRepository {
	return &mediaRepo{db: db}
}

const mediaColumns = "id, article_id, name, description, file_type, css_class, filepath"

// GetAll retrieves every media row, used by the startup prefetch scan
func (r *mediaRepo) GetAll(ctx context.Context) ([]*models.MediaItem, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+mediaColumns+" FROM media ORDER BY article_id, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MediaItem
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.ID, &m.ArticleID, &m.Name, &m.Description, &m.FileType, &m.CSSClass, &m.Filepath); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

// GetByArticleID retrieves the media rows attached to one article.
// An article with no media returns an empty slice, not an error.
func (r *mediaRepo) GetByArticleID(ctx context.Context, articleID string) ([]*models.MediaItem, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+mediaColumns+" FROM media WHERE article_id = $1 ORDER BY id", articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MediaItem
	for rows.Next() {
		var m models.MediaItem
		if err := rows.Scan(&m.ID, &m.ArticleID, &m.Name, &m.Description, &m.FileType, &m.CSSClass, &m.Filepath); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

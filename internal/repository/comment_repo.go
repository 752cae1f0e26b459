package repository

import (
	"context"
	"time"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

const commentColumns = "id, article_id, author, content, created_at"

// GetAll retrieves every comment, used by the startup prefetch scan
func (r *commentRepo) GetAll(ctx context.Context) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+commentColumns+" FROM comments ORDER BY article_id, created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// GetByArticleID retrieves one article's comments, oldest first
func (r *commentRepo) GetByArticleID(ctx context.Context, articleID string) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE article_id = $1 ORDER BY created_at", articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (id, article_id, author, content, created_at) VALUES ($1, $2, $3, $4, $5)",
		comment.ID, comment.ArticleID, comment.Author, comment.Content, comment.CreatedAt,
	)
	return err
}

// Delete removes a comment scoped to its article, so a comment id paired
// with the wrong article matches no row. Returns false when nothing matched.
func (r *commentRepo) Delete(ctx context.Context, articleID, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1 AND article_id = $2", id, articleID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

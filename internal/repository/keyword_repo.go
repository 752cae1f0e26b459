package repository

import (
	"context"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
	"github.com/lib/pq"
)

// keywordRepo is the concrete implementation of KeywordRepository
type keywordRepo struct {
	db *database.DB
}

// NewKeywordRepo creates a new keyword repository
func NewKeywordRepo(db *database.DB) KeywordRepository {
	return &keywordRepo{db: db}
}

// List returns the keyword pool
func (r *keywordRepo) List(ctx context.Context) ([]*models.Keyword, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, created_by FROM keywords ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []*models.Keyword
	for rows.Next() {
		var k models.Keyword
		if err := rows.Scan(&k.Name, &k.CreatedBy); err != nil {
			return nil, err
		}
		keywords = append(keywords, &k)
	}
	return keywords, rows.Err()
}

// Create adds a keyword to the pool. Adding an existing keyword is a no-op.
func (r *keywordRepo) Create(ctx context.Context, keyword *models.Keyword) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO keywords (name, created_by) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		keyword.Name, keyword.CreatedBy)
	return err
}

// Delete removes a keyword from the pool.
// Returns false when the name matched no row.
func (r *keywordRepo) Delete(ctx context.Context, name string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM keywords WHERE name = $1", name)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AttachToArticle attaches keywords to an article as an idempotent set insert
func (r *keywordRepo) AttachToArticle(ctx context.Context, articleID string, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}
	query := `
		INSERT INTO article_keywords (article_id, keyword)
		SELECT $1, UNNEST($2::text[])
		ON CONFLICT (article_id, keyword) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, articleID, pq.Array(keywords))
	return err
}

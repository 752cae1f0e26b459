package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = "id, title, description, content, author, date, category, likes, city, ads, created_at, updated_at"

func scanArticle(row interface{ Scan(...interface{}) error }) (*models.Article, error) {
	var a models.Article
	var ads sql.NullString
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Content, &a.Author,
		&a.Date, &a.Category, &a.Likes, &a.City, &ads,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Ads = ads.String
	return &a, nil
}

// GetAll retrieves all articles ordered by publish date, newest first
func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles ORDER BY date DESC, id", articleColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by its canonical identifier.
// Returns nil without error when no row matches.
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleColumns)

	a, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new article and returns the store-assigned identifier
// already in canonical zero-padded form.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (string, error) {
	query := `
		INSERT INTO articles (title, description, content, author, date, category, likes, city, ads, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $9)
		RETURNING id
	`
	now := time.Now()
	var id string
	err := r.db.QueryRowContext(ctx, query,
		article.Title, article.Description, article.Content, article.Author,
		article.Date, article.Category, article.City, nullable(article.Ads), now,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update writes the fields present in the request. Returns false when the
// identifier matched no row.
func (r *articleRepo) Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (bool, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.Date != nil {
		add("date", *req.Date)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.City != nil {
		add("city", *req.City)
	}
	if req.Ads != nil {
		add("ads", *req.Ads)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes an article. Returns false when the identifier matched no row.
func (r *articleRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AdjustLikes applies a like delta with a floor of zero in a single atomic
// statement and returns the new count. The second return is false when the
// identifier matched no row.
func (r *articleRepo) AdjustLikes(ctx context.Context, id string, delta int) (int, bool, error) {
	query := `
		UPDATE articles
		SET likes = GREATEST(likes + $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING likes
	`
	var likes int
	err := r.db.QueryRowContext(ctx, query, id, delta).Scan(&likes)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return likes, true, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// nullable maps an empty string to SQL NULL
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

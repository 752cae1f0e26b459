package repository

import (
	"context"

	"github.com/cityherald/content-api/internal/database"
	"github.com/cityherald/content-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) (string, error)
	Update(ctx context.Context, id string, req *models.UpdateArticleRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AdjustLikes(ctx context.Context, id string, delta int) (int, bool, error)
	Count(ctx context.Context) (int, error)
}

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	GetAll(ctx context.Context) ([]*models.MediaItem, error)
	GetByArticleID(ctx context.Context, articleID string) ([]*models.MediaItem, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (bool, error)
	UpdateBiography(ctx context.Context, id string, biography string) (bool, error)
	UpdateRole(ctx context.Context, id string, role string) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetAll(ctx context.Context) ([]*models.Comment, error)
	GetByArticleID(ctx context.Context, articleID string) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, articleID, id string) (bool, error)
}

// EngagementRepository defines the interface for per-user engagement sets and
// the keyword read counter
type EngagementRepository interface {
	AddMembership(ctx context.Context, kind, userID, topic string) error
	RemoveMembership(ctx context.Context, kind, userID, topic string) error
	ListMembership(ctx context.Context, kind, userID string) ([]string, error)
	IncrementKeywordRead(ctx context.Context, userID, keyword string) (int, error)
}

// KeywordRepository defines the interface for the admin keyword pool
type KeywordRepository interface {
	List(ctx context.Context) ([]*models.Keyword, error)
	Create(ctx context.Context, keyword *models.Keyword) error
	Delete(ctx context.Context, name string) (bool, error)
	AttachToArticle(ctx context.Context, articleID string, keywords []string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article    ArticleRepository
	Media      MediaRepository
	User       UserRepository
	Comment    CommentRepository
	Engagement EngagementRepository
	Keyword    KeywordRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:    NewArticleRepo(db),
		Media:      NewMediaRepo(db),
		User:       NewUserRepo(db),
		Comment:    NewCommentRepo(db),
		Engagement: NewEngagementRepo(db),
		Keyword:    NewKeywordRepo(db),
	}
}

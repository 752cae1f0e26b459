package service

import (
	"context"

	"github.com/cityherald/content-api/internal/cache"
	"github.com/cityherald/content-api/internal/config"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/repository"
	"github.com/cityherald/content-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the cached article read and write paths
type ArticleService interface {
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, rawID string) (*models.ArticleResponse, error)
	Create(ctx context.Context, req *models.CreateArticleRequest) (*models.ArticleResponse, error)
	Update(ctx context.Context, rawID string, req *models.UpdateArticleRequest) error
	Delete(ctx context.Context, rawID string) error
	Like(ctx context.Context, rawID string, action string) (int, error)
	Feed(ctx context.Context, userID string) (*models.FeedResponse, error)
	IsAuthor(ctx context.Context, actor *models.User, rawID string) (bool, error)
}

// MediaService defines the cached media read path
type MediaService interface {
	GetByArticleID(ctx context.Context, rawID string) ([]*models.MediaResponse, error)
}

// UserService defines registration, login and profile operations
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error)
	UpdateBiography(ctx context.Context, userID string, biography string) error
	AssignRole(ctx context.Context, req *models.AssignRoleRequest) error
}

// CommentService defines the cached comment read path and its write path
type CommentService interface {
	List(ctx context.Context, rawArticleID string) ([]*models.Comment, error)
	Create(ctx context.Context, rawArticleID string, req *models.CreateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, rawArticleID string, commentID string) error
}

// EngagementService defines per-user engagement sets, the keyword read
// counter with interest promotion, and the admin keyword pool
type EngagementService interface {
	AddMembership(ctx context.Context, userID, kind, topic string) error
	RemoveMembership(ctx context.Context, userID, kind, topic string) error
	TrackRead(ctx context.Context, req *models.ReadArticleRequest) error
	Keywords(ctx context.Context) ([]*models.Keyword, error)
	CreateKeyword(ctx context.Context, createdBy, name string) error
	DeleteKeyword(ctx context.Context, name string) error
	AttachKeywords(ctx context.Context, rawArticleID string, keywords []string) error
}

// Services holds all service interfaces
type Services struct {
	Article    ArticleService
	Media      MediaService
	User       UserService
	Comment    CommentService
	Engagement EngagementService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, store cache.Store, cfg *config.Config, log zerolog.Logger) *Services {
	v := validation.New()
	return &Services{
		Article:    newArticleService(repos, store, cfg.Cache.TTL, v, log),
		Media:      newMediaService(repos.Media, store, cfg.Cache.TTL, log),
		User:       newUserService(repos.User, v, log),
		Comment:    newCommentService(repos, store, cfg.Cache.TTL, v, log),
		Engagement: newEngagementService(repos, v, log),
	}
}

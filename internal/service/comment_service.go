package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cityherald/content-api/internal/cache"
	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/repository"
	"github.com/cityherald/content-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService implements CommentService with the same cache-around-store
// discipline as articles: reads probe the per-article key, writes hit the
// store then invalidate the aggregate and per-article keys.
type commentService struct {
	repos     *repository.Repositories
	store     cache.Store
	ttl       time.Duration
	validator *validation.Validator
	log       zerolog.Logger
}

func newCommentService(repos *repository.Repositories, store cache.Store, ttl time.Duration, v *validation.Validator, log zerolog.Logger) CommentService {
	return &commentService{
		repos:     repos,
		store:     store,
		ttl:       ttl,
		validator: v,
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// List serves one article's comments oldest-first, cache first. An article
// with no comments answers an empty list, not NotFound.
func (s *commentService) List(ctx context.Context, rawArticleID string) ([]*models.Comment, error) {
	id, ok := models.NormalizeArticleID(rawArticleID)
	if !ok {
		return nil, errs.Validation("id", "article id must be numeric")
	}

	if v, ok := s.store.Get(cache.CommentsKey(id)); ok {
		if comments, ok := v.([]*models.Comment); ok {
			return comments, nil
		}
	}

	comments, err := s.repos.Comment.GetByArticleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("comment lookup failed: %w", err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	s.store.Set(cache.CommentsKey(id), comments, s.ttl)
	return comments, nil
}

// Create adds a comment to an article. The target article must exist.
func (s *commentService) Create(ctx context.Context, rawArticleID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	id, ok := models.NormalizeArticleID(rawArticleID)
	if !ok {
		return nil, errs.Validation("id", "article id must be numeric")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article lookup failed: %w", err)
	}
	if article == nil {
		return nil, errs.NotFound("article")
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		ArticleID: id,
		Author:    req.Author,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("comment insert failed: %w", err)
	}

	s.store.Delete(cache.KeyAllComments, cache.CommentsKey(id))
	return comment, nil
}

// Delete removes a comment from an article, invalidating the comment keys.
// The delete is scoped to the article so a comment id under the wrong
// article answers NotFound instead of deleting and invalidating a key the
// comment never lived under. Moderator-gated at the route.
func (s *commentService) Delete(ctx context.Context, rawArticleID string, commentID string) error {
	id, ok := models.NormalizeArticleID(rawArticleID)
	if !ok {
		return errs.Validation("id", "article id must be numeric")
	}

	found, err := s.repos.Comment.Delete(ctx, id, commentID)
	if err != nil {
		return fmt.Errorf("comment delete failed: %w", err)
	}
	if !found {
		return errs.NotFound("comment")
	}

	s.store.Delete(cache.KeyAllComments, cache.CommentsKey(id))

	s.log.Info().Str("article_id", id).Str("comment_id", commentID).Msg("Comment deleted")
	return nil
}

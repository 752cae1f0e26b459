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
	"github.com/rs/zerolog"
)

// articleService implements ArticleService with a read-through cache in front
// of the article repository. Writes go to the store first, then invalidate
// exactly the keys they could have made stale.
type articleService struct {
	repos     *repository.Repositories
	store     cache.Store
	ttl       time.Duration
	validator *validation.Validator
	log       zerolog.Logger
}

func newArticleService(repos *repository.Repositories, store cache.Store, ttl time.Duration, v *validation.Validator, log zerolog.Logger) ArticleService {
	return &articleService{
		repos:     repos,
		store:     store,
		ttl:       ttl,
		validator: v,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// GetAll serves the aggregate article list, cache first. A miss triggers a
// full scan which repopulates only the aggregate key; per-id fan-out happens
// only at startup prefetch, keeping per-request cache writes cheap.
func (s *articleService) GetAll(ctx context.Context) ([]*models.Article, error) {
	if v, ok := s.store.Get(cache.KeyAllArticles); ok {
		if articles, ok := v.([]*models.Article); ok {
			return articles, nil
		}
	}

	articles, err := s.repos.Article.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("article scan failed: %w", err)
	}
	s.store.Set(cache.KeyAllArticles, articles, s.ttl)
	return articles, nil
}

// GetByID serves one article, cache first, mapped to its external shape
func (s *articleService) GetByID(ctx context.Context, rawID string) (*models.ArticleResponse, error) {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return nil, errs.Validation("id", "article id must be numeric")
	}

	if v, ok := s.store.Get(cache.ArticleKey(id)); ok {
		if article, ok := v.(*models.Article); ok {
			return article.ToResponse(), nil
		}
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("article lookup failed: %w", err)
	}
	if article == nil {
		return nil, errs.NotFound("article")
	}

	s.store.Set(cache.ArticleKey(id), article, s.ttl)
	return article.ToResponse(), nil
}

// Create inserts a new article. Only the aggregate key is invalidated: the
// identifier is store-assigned, so no per-id entry can exist yet. The cached
// aggregate stays stale until its TTL lapses or another mutation clears it.
func (s *articleService) Create(ctx context.Context, req *models.CreateArticleRequest) (*models.ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	date, err := parseArticleDate(req.Date)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Author:      req.Author,
		Date:        date,
		Category:    req.Category,
		City:        req.City,
		Ads:         req.Ads,
	}

	id, err := s.repos.Article.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("article insert failed: %w", err)
	}
	article.ID = id

	s.store.Delete(cache.KeyAllArticles)

	s.log.Info().Str("article_id", id).Str("author", article.Author).Msg("Article created")
	return article.ToResponse(), nil
}

// Update writes the provided fields, then invalidates the aggregate and the
// per-id key so the next read reflects the new data.
func (s *articleService) Update(ctx context.Context, rawID string, req *models.UpdateArticleRequest) error {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return errs.Validation("id", "article id must be numeric")
	}
	if req.Date != nil {
		if _, err := parseArticleDate(*req.Date); err != nil {
			return err
		}
	}

	found, err := s.repos.Article.Update(ctx, id, req)
	if err != nil {
		return fmt.Errorf("article update failed: %w", err)
	}
	if !found {
		return errs.NotFound("article")
	}

	s.store.Delete(cache.KeyAllArticles, cache.ArticleKey(id))

	s.log.Info().Str("article_id", id).Msg("Article updated")
	return nil
}

// Delete removes an article and invalidates every key scoped to it. The
// cache is untouched when the store reports no matching row.
func (s *articleService) Delete(ctx context.Context, rawID string) error {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return errs.Validation("id", "article id must be numeric")
	}

	found, err := s.repos.Article.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("article delete failed: %w", err)
	}
	if !found {
		return errs.NotFound("article")
	}

	s.store.Delete(
		cache.KeyAllArticles,
		cache.ArticleKey(id),
		cache.VisualsKey(id),
		cache.KeyAllComments,
		cache.CommentsKey(id),
	)

	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// Like applies a like or unlike as one atomic store update with a floor of
// zero, then invalidates the aggregate and per-id keys.
func (s *articleService) Like(ctx context.Context, rawID string, action string) (int, error) {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return 0, errs.Validation("id", "article id must be numeric")
	}
	if !models.LikeActions[action] {
		return 0, errs.Validation("action", "action must be one of: like, unlike")
	}

	delta := 1
	if action == "unlike" {
		delta = -1
	}

	likes, found, err := s.repos.Article.AdjustLikes(ctx, id, delta)
	if err != nil {
		return 0, fmt.Errorf("like update failed: %w", err)
	}
	if !found {
		return 0, errs.NotFound("article")
	}

	s.store.Delete(cache.KeyAllArticles, cache.ArticleKey(id))
	return likes, nil
}

// Feed builds the personalized article list: everything outside the user's
// disliked categories, plus the subset from subscribed categories.
func (s *articleService) Feed(ctx context.Context, userID string) (*models.FeedResponse, error) {
	articles, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dislikes, err := s.repos.Engagement.ListMembership(ctx, models.MembershipDislikes, userID)
	if err != nil {
		return nil, fmt.Errorf("dislikes lookup failed: %w", err)
	}
	subscriptions, err := s.repos.Engagement.ListMembership(ctx, models.MembershipSubscriptions, userID)
	if err != nil {
		return nil, fmt.Errorf("subscriptions lookup failed: %w", err)
	}

	disliked := make(map[string]bool, len(dislikes))
	for _, topic := range dislikes {
		disliked[topic] = true
	}
	subscribed := make(map[string]bool, len(subscriptions))
	for _, topic := range subscriptions {
		subscribed[topic] = true
	}

	feed := &models.FeedResponse{
		Articles:   make([]*models.ArticleResponse, 0, len(articles)),
		Subscribed: make([]*models.ArticleResponse, 0),
	}
	for _, a := range articles {
		if disliked[a.Category] {
			continue
		}
		resp := a.ToResponse()
		feed.Articles = append(feed.Articles, resp)
		if subscribed[a.Category] {
			feed.Subscribed = append(feed.Subscribed, resp)
		}
	}
	return feed, nil
}

// IsAuthor reports whether the actor's username matches the article's
// recorded author. Used as the ownership predicate on editor routes; a
// missing article reads as not-owned and surfaces as 403 rather than 404,
// keeping the gate ahead of the read.
func (s *articleService) IsAuthor(ctx context.Context, actor *models.User, rawID string) (bool, error) {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return false, nil
	}
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if article == nil {
		return false, nil
	}
	return article.Author == actor.Username, nil
}

func parseArticleDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Validation("date", "date must be YYYY-MM-DD or RFC 3339")
}

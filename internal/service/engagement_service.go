package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/repository"
	"github.com/cityherald/content-api/internal/validation"
	"github.com/rs/zerolog"
)

// engagementService implements EngagementService
type engagementService struct {
	repos     *repository.Repositories
	validator *validation.Validator
	log       zerolog.Logger
}

func newEngagementService(repos *repository.Repositories, v *validation.Validator, log zerolog.Logger) EngagementService {
	return &engagementService{
		repos:     repos,
		validator: v,
		log:       log.With().Str("service", "engagement").Logger(),
	}
}

// AddMembership adds a (user, topic) membership. Duplicates are a no-op.
func (s *engagementService) AddMembership(ctx context.Context, userID, kind, topic string) error {
	if !models.ValidMemberships[kind] {
		return errs.Validationf("kind", "unknown membership kind %q", kind)
	}
	if strings.TrimSpace(topic) == "" {
		return errs.Validation("topic", "topic is required")
	}
	if err := s.repos.Engagement.AddMembership(ctx, kind, userID, topic); err != nil {
		return fmt.Errorf("membership insert failed: %w", err)
	}
	return nil
}

// RemoveMembership removes a (user, topic) membership. Removing an absent
// membership is a no-op.
func (s *engagementService) RemoveMembership(ctx context.Context, userID, kind, topic string) error {
	if !models.ValidMemberships[kind] {
		return errs.Validationf("kind", "unknown membership kind %q", kind)
	}
	if strings.TrimSpace(topic) == "" {
		return errs.Validation("topic", "topic is required")
	}
	if err := s.repos.Engagement.RemoveMembership(ctx, kind, userID, topic); err != nil {
		return fmt.Errorf("membership delete failed: %w", err)
	}
	return nil
}

// TrackRead records a read event: each keyword's (user, keyword) counter is
// incremented atomically, and the keyword is promoted into the user's
// interests when the returned count lands exactly on the threshold. The
// increment and the read are one statement, so concurrent events each see a
// distinct count and the promotion fires exactly once per keyword per user.
func (s *engagementService) TrackRead(ctx context.Context, req *models.ReadArticleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}
	if _, ok := models.NormalizeArticleID(req.ArticleID); !ok {
		return errs.Validation("articleId", "article id must be numeric")
	}

	for _, keyword := range req.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}

		count, err := s.repos.Engagement.IncrementKeywordRead(ctx, req.UserID, keyword)
		if err != nil {
			return fmt.Errorf("keyword counter failed: %w", err)
		}

		if count == models.KeywordReadThreshold {
			if err := s.repos.Engagement.AddMembership(ctx, models.MembershipInterests, req.UserID, keyword); err != nil {
				return fmt.Errorf("interest promotion failed: %w", err)
			}
			s.log.Info().
				Str("user_id", req.UserID).
				Str("keyword", keyword).
				Msg("Keyword promoted to interest")
		}
	}
	return nil
}

// Keywords returns the admin keyword pool
func (s *engagementService) Keywords(ctx context.Context) ([]*models.Keyword, error) {
	keywords, err := s.repos.Keyword.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("keyword list failed: %w", err)
	}
	return keywords, nil
}

// CreateKeyword adds a keyword to the pool
func (s *engagementService) CreateKeyword(ctx context.Context, createdBy, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validation("name", "name is required")
	}
	if err := s.repos.Keyword.Create(ctx, &models.Keyword{Name: name, CreatedBy: createdBy}); err != nil {
		return fmt.Errorf("keyword insert failed: %w", err)
	}
	return nil
}

// DeleteKeyword removes a keyword from the pool
func (s *engagementService) DeleteKeyword(ctx context.Context, name string) error {
	found, err := s.repos.Keyword.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("keyword delete failed: %w", err)
	}
	if !found {
		return errs.NotFound("keyword")
	}
	return nil
}

// AttachKeywords attaches keywords to an article as an idempotent set insert.
// The target article must exist.
func (s *engagementService) AttachKeywords(ctx context.Context, rawArticleID string, keywords []string) error {
	id, ok := models.NormalizeArticleID(rawArticleID)
	if !ok {
		return errs.Validation("id", "article id must be numeric")
	}
	if len(keywords) == 0 {
		return errs.Validation("keywords", "keywords is required")
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("article lookup failed: %w", err)
	}
	if article == nil {
		return errs.NotFound("article")
	}

	if err := s.repos.Keyword.AttachToArticle(ctx, id, keywords); err != nil {
		return fmt.Errorf("keyword attach failed: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cityherald/content-api/internal/cache"
	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/repository"
	"github.com/rs/zerolog"
)

// mediaService implements MediaService. Media is read-only through the API,
// so this is a pure read-through path; invalidation of its keys is driven by
// article writes.
type mediaService struct {
	repo  repository.MediaRepository
	store cache.Store
	ttl   time.Duration
	log   zerolog.Logger
}

func newMediaService(repo repository.MediaRepository, store cache.Store, ttl time.Duration, log zerolog.Logger) MediaService {
	return &mediaService{
		repo:  repo,
		store: store,
		ttl:   ttl,
		log:   log.With().Str("service", "media").Logger(),
	}
}

// GetByArticleID serves one article's media, cache first. An article with no
// media rows answers NotFound.
func (s *mediaService) GetByArticleID(ctx context.Context, rawID string) ([]*models.MediaResponse, error) {
	id, ok := models.NormalizeArticleID(rawID)
	if !ok {
		return nil, errs.Validation("id", "article id must be numeric")
	}

	if v, ok := s.store.Get(cache.VisualsKey(id)); ok {
		if items, ok := v.([]*models.MediaItem); ok && len(items) > 0 {
			return models.MediaResponses(items), nil
		}
	}

	items, err := s.repo.GetByArticleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("media lookup failed: %w", err)
	}
	if len(items) == 0 {
		return nil, errs.NotFound("media")
	}

	s.store.Set(cache.VisualsKey(id), items, s.ttl)
	return models.MediaResponses(items), nil
}

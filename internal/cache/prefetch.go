package cache

import (
	"context"
	"time"

	"github.com/cityherald/content-api/internal/models"
	"github.com/rs/zerolog"
)

// ArticleScanner is the slice of the article repository the prefetcher needs
type ArticleScanner interface {
	GetAll(ctx context.Context) ([]*models.Article, error)
}

// MediaScanner is the slice of the media repository the prefetcher needs
type MediaScanner interface {
	GetAll(ctx context.Context) ([]*models.MediaItem, error)
}

// CommentScanner is the slice of the comment repository the prefetcher needs
type CommentScanner interface {
	GetAll(ctx context.Context) ([]*models.Comment, error)
}

// Prefetcher bulk-loads the cache at process startup: one full scan per
// entity kind, fanned out into the aggregate key and per-identifier keys.
// This trades three table scans for the N+1 misses a cold cache would take.
type Prefetcher struct {
	store    Store
	articles ArticleScanner
	media    MediaScanner
	comments CommentScanner
	ttl      time.Duration
	log      zerolog.Logger
}

// NewPrefetcher creates a startup prefetcher
func NewPrefetcher(store Store, articles ArticleScanner, media MediaScanner, comments CommentScanner, ttl time.Duration, log zerolog.Logger) *Prefetcher {
	return &Prefetcher{
		store:    store,
		articles: articles,
		media:    media,
		comments: comments,
		ttl:      ttl,
		log:      log.With().Str("component", "cache_prefetch").Logger(),
	}
}

// Run populates the cache from the store. Any entries already cached are
// flushed first so a re-run never leaves keys from before the scan. A failed
// scan logs and skips that entity kind; the cache self-heals on the read
// path, so prefetch failure is never fatal.
func (p *Prefetcher) Run(ctx context.Context) {
	start := time.Now()
	p.store.Flush()

	articles, err := p.articles.GetAll(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("Article prefetch scan failed")
	} else {
		p.store.Set(KeyAllArticles, articles, p.ttl)
		for _, a := range articles {
			p.store.Set(ArticleKey(a.ID), a, p.ttl)
		}
	}

	media, err := p.media.GetAll(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("Media prefetch scan failed")
	} else {
		p.store.Set(KeyAllVisuals, media, p.ttl)
		byArticle := make(map[string][]*models.MediaItem)
		for _, m := range media {
			byArticle[m.ArticleID] = append(byArticle[m.ArticleID], m)
		}
		for articleID, items := range byArticle {
			p.store.Set(VisualsKey(articleID), items, p.ttl)
		}
	}

	comments, err := p.comments.GetAll(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("Comment prefetch scan failed")
	} else {
		p.store.Set(KeyAllComments, comments, p.ttl)
		byArticle := make(map[string][]*models.Comment)
		for _, c := range comments {
			byArticle[c.ArticleID] = append(byArticle[c.ArticleID], c)
		}
		for articleID, items := range byArticle {
			p.store.Set(CommentsKey(articleID), items, p.ttl)
		}
	}

	p.log.Info().
		Int("articles", len(articles)).
		Int("media", len(media)).
		Int("comments", len(comments)).
		Dur("duration", time.Since(start)).
		Msg("Cache prefetch completed")
}

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/cityherald/content-api/internal/cache"
	"github.com/cityherald/content-api/internal/mocks"
	"github.com/cityherald/content-api/internal/models"
	"github.com/rs/zerolog"
)

func TestStoreSetGetDelete(t *testing.T) {
	store := cache.New(time.Hour)

	article := &models.Article{ID: "001", Title: "First"}
	store.Set(cache.ArticleKey("001"), article, 0)

	v, ok := store.Get(cache.ArticleKey("001"))
	if !ok {
		t.Fatal("Expected cache hit after set")
	}
	got, ok := v.(*models.Article)
	if !ok || got.Title != "First" {
		t.Errorf("Expected cached article, got %v", v)
	}

	store.Delete(cache.ArticleKey("001"))
	if _, ok := store.Get(cache.ArticleKey("001")); ok {
		t.Error("Expected miss after delete")
	}
}

func TestStoreExpiry(t *testing.T) {
	store := cache.New(time.Hour)

	store.Set("short", "value", 10*time.Millisecond)
	if _, ok := store.Get("short"); !ok {
		t.Fatal("Expected hit before TTL")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get("short"); ok {
		t.Error("Expected expired entry to read as a miss")
	}
}

func TestStoreDeleteMultiple(t *testing.T) {
	store := cache.New(time.Hour)
	store.Set(cache.KeyAllArticles, "a", 0)
	store.Set(cache.ArticleKey("007"), "b", 0)
	store.Set(cache.VisualsKey("007"), "c", 0)

	store.Delete(cache.KeyAllArticles, cache.ArticleKey("007"), cache.VisualsKey("007"))

	for _, key := range []string{cache.KeyAllArticles, cache.ArticleKey("007"), cache.VisualsKey("007")} {
		if _, ok := store.Get(key); ok {
			t.Errorf("Expected %s to be deleted", key)
		}
	}
}

func TestPrefetcherFanOut(t *testing.T) {
	store := cache.New(time.Hour)

	articleRepo := mocks.NewMockArticleRepository()
	articleRepo.Articles["001"] = &models.Article{ID: "001", Title: "One"}
	articleRepo.Articles["002"] = &models.Article{ID: "002", Title: "Two"}

	mediaRepo := mocks.NewMockMediaRepository()
	mediaRepo.Items = []*models.MediaItem{
		{ID: 1, ArticleID: "001", Name: "hero.jpg"},
		{ID: 2, ArticleID: "001", Name: "inline.png"},
		{ID: 3, ArticleID: "002", Name: "cover.jpg"},
	}

	commentRepo := mocks.NewMockCommentRepository()
	commentRepo.Comments["c1"] = &models.Comment{ID: "c1", ArticleID: "001", Author: "alice", Content: "Nice"}

	p := cache.NewPrefetcher(store, articleRepo, mediaRepo, commentRepo, time.Hour, zerolog.Nop())
	p.Run(context.Background())

	if _, ok := store.Get(cache.KeyAllArticles); !ok {
		t.Error("Expected aggregate article key after prefetch")
	}
	if _, ok := store.Get(cache.ArticleKey("001")); !ok {
		t.Error("Expected per-article key after prefetch")
	}
	if _, ok := store.Get(cache.ArticleKey("002")); !ok {
		t.Error("Expected per-article key after prefetch")
	}

	v, ok := store.Get(cache.VisualsKey("001"))
	if !ok {
		t.Fatal("Expected per-article media key after prefetch")
	}
	if items := v.([]*models.MediaItem); len(items) != 2 {
		t.Errorf("Expected 2 media items for article 001, got %d", len(items))
	}

	if _, ok := store.Get(cache.CommentsKey("001")); !ok {
		t.Error("Expected per-article comments key after prefetch")
	}
}

func TestPrefetcherFlushesBeforeWarming(t *testing.T) {
	store := cache.New(time.Hour)
	store.Set(cache.ArticleKey("099"), &models.Article{ID: "099", Title: "Gone"}, 0)

	articleRepo := mocks.NewMockArticleRepository()
	articleRepo.Articles["001"] = &models.Article{ID: "001", Title: "One"}

	p := cache.NewPrefetcher(store, articleRepo, mocks.NewMockMediaRepository(), mocks.NewMockCommentRepository(), time.Hour, zerolog.Nop())
	p.Run(context.Background())

	if _, ok := store.Get(cache.ArticleKey("099")); ok {
		t.Error("Expected pre-existing entry to be flushed by prefetch")
	}
	if _, ok := store.Get(cache.ArticleKey("001")); !ok {
		t.Error("Expected scanned article cached after prefetch")
	}
}

func TestPrefetcherScanFailureIsNotFatal(t *testing.T) {
	store := cache.New(time.Hour)

	articleRepo := mocks.NewMockArticleRepository()
	articleRepo.Err = context.DeadlineExceeded

	mediaRepo := mocks.NewMockMediaRepository()
	mediaRepo.Items = []*models.MediaItem{{ID: 1, ArticleID: "001", Name: "hero.jpg"}}

	commentRepo := mocks.NewMockCommentRepository()

	p := cache.NewPrefetcher(store, articleRepo, mediaRepo, commentRepo, time.Hour, zerolog.Nop())
	p.Run(context.Background())

	if _, ok := store.Get(cache.KeyAllArticles); ok {
		t.Error("Expected no article keys after failed scan")
	}
	if _, ok := store.Get(cache.KeyAllVisuals); !ok {
		t.Error("Expected media prefetch to proceed despite article scan failure")
	}
}

func BenchmarkStoreGet(b *testing.B) {
	store := cache.New(time.Hour)
	store.Set(cache.ArticleKey("001"), &models.Article{ID: "001", Title: "Bench"}, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := store.Get(cache.ArticleKey("001")); !ok {
			b.Fatal("unexpected miss")
		}
	}
}

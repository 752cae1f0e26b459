package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
)

func readEvent(keywords ...string) *models.ReadArticleRequest {
	return &models.ReadArticleRequest{
		UserID:    "u1",
		ArticleID: "001",
		Keywords:  keywords,
	}
}

func TestKeywordPromotionExactlyOnce(t *testing.T) {
	env := setup()
	ctx := context.Background()

	// Two reads: below threshold, no promotion yet.
	for i := 0; i < 2; i++ {
		if err := env.services.Engagement.TrackRead(ctx, readEvent("housing")); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	interests, _ := env.engage.ListMembership(ctx, models.MembershipInterests, "u1")
	if len(interests) != 0 {
		t.Errorf("Expected no promotion below threshold, got %v", interests)
	}

	// Third read crosses the threshold.
	if err := env.services.Engagement.TrackRead(ctx, readEvent("housing")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	interests, _ = env.engage.ListMembership(ctx, models.MembershipInterests, "u1")
	if len(interests) != 1 || interests[0] != "housing" {
		t.Errorf("Expected housing promoted exactly once, got %v", interests)
	}

	// A fourth read must not re-trigger or duplicate the promotion.
	if err := env.services.Engagement.TrackRead(ctx, readEvent("housing")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	interests, _ = env.engage.ListMembership(ctx, models.MembershipInterests, "u1")
	if len(interests) != 1 {
		t.Errorf("Expected a single interest record after 4th read, got %v", interests)
	}
}

func TestTrackReadMultipleKeywords(t *testing.T) {
	env := setup()
	ctx := context.Background()

	if err := env.services.Engagement.TrackRead(ctx, readEvent("housing", "transit", "", "housing")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if env.engage.Reads["u1/housing"] != 2 {
		t.Errorf("Expected housing counted twice in one event, got %d", env.engage.Reads["u1/housing"])
	}
	if env.engage.Reads["u1/transit"] != 1 {
		t.Errorf("Expected transit counted once, got %d", env.engage.Reads["u1/transit"])
	}
}

func TestTrackReadRejectsBadArticleID(t *testing.T) {
	env := setup()

	req := readEvent("housing")
	req.ArticleID = "not-a-number"
	if err := env.services.Engagement.TrackRead(context.Background(), req); !errs.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestMembershipIdempotent(t *testing.T) {
	env := setup()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := env.services.Engagement.AddMembership(ctx, "u1", models.MembershipInterests, "sports"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	topics, _ := env.engage.ListMembership(ctx, models.MembershipInterests, "u1")
	if len(topics) != 1 {
		t.Errorf("Expected exactly one membership record, got %v", topics)
	}

	if err := env.services.Engagement.RemoveMembership(ctx, "u1", models.MembershipInterests, "sports"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Removing again is a no-op.
	if err := env.services.Engagement.RemoveMembership(ctx, "u1", models.MembershipInterests, "sports"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestMembershipRejectsUnknownKind(t *testing.T) {
	env := setup()

	err := env.services.Engagement.AddMembership(context.Background(), "u1", "favorites", "sports")
	if !errs.IsValidation(err) {
		t.Errorf("Expected validation error for unknown kind, got %v", err)
	}
}

func TestKeywordPool(t *testing.T) {
	env := setup()
	ctx := context.Background()

	if err := env.services.Engagement.CreateKeyword(ctx, "admin", "housing"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Re-adding an existing keyword is a no-op.
	if err := env.services.Engagement.CreateKeyword(ctx, "admin", "housing"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	keywords, err := env.services.Engagement.Keywords(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(keywords) != 1 {
		t.Errorf("Expected one keyword, got %d", len(keywords))
	}

	if err := env.services.Engagement.DeleteKeyword(ctx, "housing"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := env.services.Engagement.DeleteKeyword(ctx, "housing"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Expected NotFound on second delete, got %v", err)
	}
}

func TestAttachKeywords(t *testing.T) {
	env := setup()
	ctx := context.Background()
	seedArticle(env, "001", "Tagged", "jdoe", "local", 0)

	if err := env.services.Engagement.AttachKeywords(ctx, "1", []string{"housing", "transit"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(env.keywords.Attached["001"]) != 2 {
		t.Errorf("Expected 2 attached keywords, got %v", env.keywords.Attached["001"])
	}

	if err := env.services.Engagement.AttachKeywords(ctx, "999", []string{"housing"}); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Expected NotFound for missing article, got %v", err)
	}
}

func TestCommentLifecycle(t *testing.T) {
	env := setup()
	ctx := context.Background()
	seedArticle(env, "001", "Discussed", "jdoe", "local", 0)

	comment, err := env.services.Comment.Create(ctx, "1", &models.CreateCommentRequest{Author: "visitor", Content: "First!"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if comment.ArticleID != "001" {
		t.Errorf("Expected canonical article id on comment, got %s", comment.ArticleID)
	}

	comments, err := env.services.Comment.List(ctx, "001")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("Expected 1 comment, got %d", len(comments))
	}

	if err := env.services.Comment.Delete(ctx, "001", comment.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	comments, err = env.services.Comment.List(ctx, "001")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(comments) != 0 {
		t.Error("Expected comment list to reflect delete after invalidation")
	}

	_, err = env.services.Comment.Create(ctx, "999", &models.CreateCommentRequest{Author: "visitor", Content: "Hello"})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Expected NotFound for missing article, got %v", err)
	}
}

func TestCommentDeleteScopedToArticle(t *testing.T) {
	env := setup()
	ctx := context.Background()
	seedArticle(env, "001", "First", "jdoe", "local", 0)
	seedArticle(env, "002", "Second", "jdoe", "local", 0)

	comment, err := env.services.Comment.Create(ctx, "002", &models.CreateCommentRequest{Author: "visitor", Content: "On two"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := env.services.Comment.List(ctx, "002"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The comment belongs to article 002; deleting it through article 001
	// must not touch it, and must not invalidate article 002's cached list.
	err = env.services.Comment.Delete(ctx, "001", comment.ID)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Expected NotFound for mismatched article, got %v", err)
	}
	if env.comments.Comments[comment.ID] == nil {
		t.Error("Expected comment to survive a mismatched delete")
	}

	comments, err := env.services.Comment.List(ctx, "002")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("Expected article 002 to keep its comment, got %d", len(comments))
	}

	if err := env.services.Comment.Delete(ctx, "002", comment.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	comments, err = env.services.Comment.List(ctx, "002")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(comments) != 0 {
		t.Error("Expected delete under the owning article to clear its cached list")
	}
}

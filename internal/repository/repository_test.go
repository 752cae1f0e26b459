package repository_test

import (
	"context"
	"testing"

	"github.com/cityherald/content-api/internal/mocks"
	"github.com/cityherald/content-api/internal/models"
)

// The Postgres implementations are thin statement wrappers; these tests pin
// the contract the mocks share with them so service tests stay honest.

func TestMockArticleRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	id1, err := repo.Create(ctx, &models.Article{Title: "one"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	id2, err := repo.Create(ctx, &models.Article{Title: "two"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if id1 != "001" || id2 != "002" {
		t.Errorf("Expected zero-padded sequential ids, got %s, %s", id1, id2)
	}
}

func TestMockArticleRepositoryIDsWidenPastThreeDigits(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	repo.Articles["100"] = &models.Article{ID: "100", Title: "hundredth"}
	repo.NextID = 1000

	id, err := repo.Create(ctx, &models.Article{Title: "thousandth"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id != "1000" {
		t.Errorf("Expected id 1000 to keep its natural width, got %s", id)
	}
	if repo.Articles["100"].Title != "hundredth" {
		t.Error("Expected article 100 untouched by the 1000th create")
	}
}

func TestMockArticleRepositoryLikesFloor(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	id, _ := repo.Create(ctx, &models.Article{Title: "liked"})

	likes, found, err := repo.AdjustLikes(ctx, id, -1)
	if err != nil || !found {
		t.Fatalf("Unexpected result: likes=%d found=%v err=%v", likes, found, err)
	}
	if likes != 0 {
		t.Errorf("Expected likes floored at 0, got %d", likes)
	}
}

func TestMockEngagementRepositoryCounter(t *testing.T) {
	repo := mocks.NewMockEngagementRepository()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := repo.IncrementKeywordRead(ctx, "u1", "housing")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Expected count %d, got %d", want, got)
		}
	}
}

func TestMockEngagementRepositoryMembershipSet(t *testing.T) {
	repo := mocks.NewMockEngagementRepository()
	ctx := context.Background()

	repo.AddMembership(ctx, models.MembershipInterests, "u1", "sports")
	repo.AddMembership(ctx, models.MembershipInterests, "u1", "sports")

	topics, err := repo.ListMembership(ctx, models.MembershipInterests, "u1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(topics) != 1 {
		t.Errorf("Expected set semantics, got %v", topics)
	}
}

func TestMockUserRepositoryCaseInsensitiveLookups(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	repo.Create(ctx, &models.User{ID: "u1", Username: "alice", Email: "a@x.com"})

	if exists, _ := repo.UsernameExists(ctx, "ALICE"); !exists {
		t.Error("Expected case-insensitive username match")
	}
	if exists, _ := repo.EmailExists(ctx, "A@X.COM"); !exists {
		t.Error("Expected case-insensitive email match")
	}
	u, _ := repo.GetByEmail(ctx, "A@X.com")
	if u == nil || u.ID != "u1" {
		t.Errorf("Expected user by case-insensitive email, got %v", u)
	}
}

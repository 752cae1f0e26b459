package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cityherald/content-api/internal/errs"
	"github.com/cityherald/content-api/internal/models"
	"github.com/cityherald/content-api/internal/service"
)

func registerReq(username, email string) *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "Str0ng!pass",
		Country:   "NL",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestFirstUserBecomesAdmin(t *testing.T) {
	env := setup()
	ctx := context.Background()

	first, err := env.services.User.Register(ctx, registerReq("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.Role != models.RoleAdmin {
		t.Errorf("Expected first user to be admin, got %s", first.Role)
	}

	second, err := env.services.User.Register(ctx, registerReq("bob", "bob@example.com"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.Role != models.RoleUser {
		t.Errorf("Expected second user to be a plain user, got %s", second.Role)
	}
}

func TestRegisterDuplicateCaseInsensitive(t *testing.T) {
	env := setup()
	ctx := context.Background()

	if _, err := env.services.User.Register(ctx, registerReq("alice", "a@x.com")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err := env.services.User.Register(ctx, registerReq("Alice", "fresh@x.com"))
	var dup *service.DuplicateUserError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateUserError, got %v", err)
	}
	if !dup.UsernameExists || dup.EmailExists {
		t.Errorf("Expected usernameExists only, got %+v", dup)
	}

	_, err = env.services.User.Register(ctx, registerReq("carol", "A@X.COM"))
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateUserError, got %v", err)
	}
	if dup.UsernameExists || !dup.EmailExists {
		t.Errorf("Expected emailExists only, got %+v", dup)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	env := setup()

	req := registerReq("alice", "alice@example.com")
	req.Password = "weak"
	_, err := env.services.User.Register(context.Background(), req)
	if !errs.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	env := setup()
	ctx := context.Background()

	if _, err := env.services.User.Register(ctx, registerReq("alice", "alice@example.com")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	profile, err := env.services.User.Login(ctx, &models.LoginRequest{Email: "ALICE@example.com", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("Expected login to succeed, got %v", err)
	}
	if profile.Username != "alice" {
		t.Errorf("Unexpected profile: %+v", profile)
	}

	_, err = env.services.User.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "Wrong!pass1"})
	if !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("Expected Forbidden for wrong password, got %v", err)
	}

	_, err = env.services.User.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "Str0ng!pass"})
	if !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("Expected Forbidden for unknown email, got %v", err)
	}
}

func TestAssignRole(t *testing.T) {
	env := setup()
	ctx := context.Background()

	profile, err := env.services.User.Register(ctx, registerReq("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := env.services.User.AssignRole(ctx, &models.AssignRoleRequest{UserID: profile.ID, Role: models.RoleEditor}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if env.users.Users[profile.ID].Role != models.RoleEditor {
		t.Errorf("Expected role editor, got %s", env.users.Users[profile.ID].Role)
	}
}

func TestAssignRoleRejectsUnknownValue(t *testing.T) {
	env := setup()
	ctx := context.Background()

	profile, err := env.services.User.Register(ctx, registerReq("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = env.services.User.AssignRole(ctx, &models.AssignRoleRequest{UserID: profile.ID, Role: "superuser"})
	if !errs.IsValidation(err) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if env.users.Users[profile.ID].Role != models.RoleAdmin {
		t.Error("Rejected role value must not be stored")
	}
}

func TestAssignRoleUnknownUser(t *testing.T) {
	env := setup()

	err := env.services.User.AssignRole(context.Background(), &models.AssignRoleRequest{UserID: "ghost", Role: models.RoleEditor})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestUpdateProfileAndBiography(t *testing.T) {
	env := setup()
	ctx := context.Background()

	profile, err := env.services.User.Register(ctx, registerReq("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	country := "BE"
	updated, err := env.services.User.UpdateProfile(ctx, profile.ID, &models.UpdateProfileRequest{Country: &country})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Country != "BE" {
		t.Errorf("Expected country BE, got %s", updated.Country)
	}

	if err := env.services.User.UpdateBiography(ctx, profile.ID, "Writes about city politics."); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if env.users.Users[profile.ID].Biography == "" {
		t.Error("Expected biography to be stored")
	}
}

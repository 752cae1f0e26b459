package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cityherald/content-api/internal/auth"
	"github.com/cityherald/content-api/internal/mocks"
	"github.com/cityherald/content-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func setupGuard() (*auth.Guard, *mocks.MockUserRepository) {
	gin.SetMode(gin.TestMode)
	users := mocks.NewMockUserRepository()
	guard := auth.NewGuard(users, zerolog.Nop())
	return guard, users
}

func protectedRouter(guard *auth.Guard, policy auth.Policy) *gin.Engine {
	router := gin.New()
	router.PUT("/things/:id", guard.Require(policy), func(c *gin.Context) {
		actor, _ := auth.ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"actor": actor.Username})
	})
	return router
}

func do(router *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("PUT", "/things/7", nil)
	if userID != "" {
		req.Header.Set(auth.IdentityHeader, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGuardMissingIdentity(t *testing.T) {
	guard, _ := setupGuard()
	router := protectedRouter(guard, auth.Registered())

	if w := do(router, ""); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for missing identity, got %d", w.Code)
	}
}

func TestGuardUnknownIdentity(t *testing.T) {
	guard, _ := setupGuard()
	router := protectedRouter(guard, auth.Registered())

	if w := do(router, "ghost"); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for unknown identity, got %d", w.Code)
	}
}

func TestGuardRegisteredUserPasses(t *testing.T) {
	guard, users := setupGuard()
	users.Users["u1"] = &models.User{ID: "u1", Username: "alice", Role: models.RoleUser}
	router := protectedRouter(guard, auth.Registered())

	if w := do(router, "u1"); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for registered user, got %d", w.Code)
	}
}

func TestGuardRoleMismatch(t *testing.T) {
	guard, users := setupGuard()
	users.Users["u1"] = &models.User{ID: "u1", Username: "alice", Role: models.RoleUser}
	router := protectedRouter(guard, auth.Role(models.RoleModerator))

	if w := do(router, "u1"); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for role mismatch, got %d", w.Code)
	}
}

func TestGuardAdminSatisfiesAnyRole(t *testing.T) {
	guard, users := setupGuard()
	users.Users["u1"] = &models.User{ID: "u1", Username: "root", Role: models.RoleAdmin}
	router := protectedRouter(guard, auth.Role(models.RoleModerator))

	if w := do(router, "u1"); w.Code != http.StatusOK {
		t.Errorf("Expected admin to pass a moderator gate, got %d", w.Code)
	}
}

func TestGuardOwnership(t *testing.T) {
	guard, users := setupGuard()
	users.Users["u1"] = &models.User{ID: "u1", Username: "alice", Role: models.RoleEditor}
	users.Users["u2"] = &models.User{ID: "u2", Username: "bob", Role: models.RoleEditor}
	users.Users["u3"] = &models.User{ID: "u3", Username: "root", Role: models.RoleAdmin}

	owns := func(ctx context.Context, actor *models.User, resourceID string) (bool, error) {
		return actor.Username == "alice", nil
	}
	router := protectedRouter(guard, auth.RoleWithOwnership(owns, models.RoleEditor))

	if w := do(router, "u1"); w.Code != http.StatusOK {
		t.Errorf("Expected owning editor to pass, got %d", w.Code)
	}
	if w := do(router, "u2"); w.Code != http.StatusForbidden {
		t.Errorf("Expected non-owning editor to be denied, got %d", w.Code)
	}
	// Admins skip the ownership predicate.
	if w := do(router, "u3"); w.Code != http.StatusOK {
		t.Errorf("Expected admin to bypass ownership, got %d", w.Code)
	}
}

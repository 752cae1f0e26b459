package auth

import (
	"context"
	"net/http"

	"github.com/cityherald/content-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// IdentityHeader carries the acting user identifier. Identity is asserted by
// the caller, not cryptographically verified; session tokens are out of scope.
const IdentityHeader = "X-User-ID"

const actorContextKey = "auth_actor"

// Resolver looks up the acting user for a request
type Resolver interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// OwnershipFunc decides whether the actor owns the resource named by the
// route's :id parameter. Evaluated only for non-admin actors.
type OwnershipFunc func(ctx context.Context, actor *models.User, resourceID string) (bool, error)

// Policy is a per-route authorization rule: the roles that may pass, plus an
// optional ownership predicate. An empty role set admits any registered user.
// Admins satisfy every role gate and skip ownership checks.
type Policy struct {
	Roles []string
	Owns  OwnershipFunc
}

// Registered admits any request with a resolvable user identifier
func Registered() Policy {
	return Policy{}
}

// Role admits the given roles (and admins)
func Role(roles ...string) Policy {
	return Policy{Roles: roles}
}

// RoleWithOwnership admits the given roles when the ownership predicate
// holds, and admins unconditionally
func RoleWithOwnership(owns OwnershipFunc, roles ...string) Policy {
	return Policy{Roles: roles, Owns: owns}
}

// Guard evaluates authorization policies against the request identity
type Guard struct {
	resolver Resolver
	log      zerolog.Logger
}

// NewGuard creates an authorization guard
func NewGuard(resolver Resolver, log zerolog.Logger) *Guard {
	return &Guard{
		resolver: resolver,
		log:      log.With().Str("component", "auth").Logger(),
	}
}

// Require returns middleware enforcing the policy. Missing identity, unknown
// identity, role mismatch and ownership mismatch all answer 403; a store
// failure during resolution answers 500.
func (g *Guard) Require(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := g.resolve(c)
		if !ok {
			return
		}

		if !g.roleAllowed(actor, policy.Roles) {
			g.deny(c, actor, "role mismatch")
			return
		}

		if policy.Owns != nil && actor.Role != models.RoleAdmin {
			owns, err := policy.Owns(c.Request.Context(), actor, c.Param("id"))
			if err != nil {
				g.log.Error().Err(err).Str("user_id", actor.ID).Msg("Ownership check failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			if !owns {
				g.deny(c, actor, "ownership mismatch")
				return
			}
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func (g *Guard) resolve(c *gin.Context) (*models.User, bool) {
	id := c.GetHeader(IdentityHeader)
	if id == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing user identifier"})
		return nil, false
	}

	actor, err := g.resolver.GetByID(c.Request.Context(), id)
	if err != nil {
		g.log.Error().Err(err).Str("user_id", id).Msg("Failed to resolve acting user")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	if actor == nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "unknown user identifier"})
		return nil, false
	}
	return actor, true
}

func (g *Guard) roleAllowed(actor *models.User, roles []string) bool {
	if len(roles) == 0 || actor.Role == models.RoleAdmin {
		return true
	}
	for _, role := range roles {
		if actor.Role == role {
			return true
		}
	}
	return false
}

func (g *Guard) deny(c *gin.Context, actor *models.User, reason string) {
	g.log.Warn().
		Str("user_id", actor.ID).
		Str("role", actor.Role).
		Str("path", c.FullPath()).
		Str("reason", reason).
		Msg("Authorization denied")
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
}

// ActorFrom returns the resolved acting user set by Require. The second
// return is false on routes without a policy.
func ActorFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return nil, false
	}
	actor, ok := v.(*models.User)
	return actor, ok
}

package guard

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mahamudulhasan-me/bristo-boss-server/internal/httperr"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/model"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/store"
	"github.com/mahamudulhasan-me/bristo-boss-server/internal/token"
)

// claimsKey is the gin context key the verified claims are stored under.
const claimsKey = "decoded"

// Authenticate verifies the request's bearer token. A missing Authorization
// header or a failed verification aborts with 401 and the handler never
// runs. On success the verified claims are attached to the gin context for
// downstream use.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			abort(c, httperr.MissingCredential())
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 {
			abort(c, httperr.InvalidCredential())
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abort(c, httperr.InvalidCredential())
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin checks that the authenticated identity's user document holds
// the admin role. It must run after Authenticate. The lookup hits the store
// on every invocation, so a role change takes effect on the next request.
func RequireAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := SubjectUID(c)
		if uid == "" {
			abort(c, httperr.Forbidden())
			return
		}

		user, err := users.FindByUID(c.Request.Context(), uid)
		if err != nil {
			panic(httperr.Internal(err))
		}
		if user == nil || user.Role != model.RoleAdmin {
			abort(c, httperr.Forbidden())
			return
		}

		c.Next()
	}
}

// Claims returns the verified claims attached by Authenticate, or nil if
// the request was not authenticated.
func Claims(c *gin.Context) jwt.MapClaims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}

	claims, ok := value.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// SubjectUID returns the uid claim of the authenticated caller, or the
// empty string if the request was not authenticated.
func SubjectUID(c *gin.Context) string {
	return token.Subject(Claims(c))
}

func abort(c *gin.Context, failed httperr.Failed) {
	c.AbortWithStatusJSON(failed.Status, gin.H{"error": true, "message": failed.Message})
}

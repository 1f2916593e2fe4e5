package auth

import (
	"net/http"
	"strings"

	"carbid/internal/auctionerrors"
	"carbid/internal/models"
	"carbid/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "carbid/identity"

// TokenVerifier validates a raw access token and yields the caller identity.
type TokenVerifier interface {
	VerifyToken(raw string) (Identity, error)
}

// Authenticate extracts and verifies the Bearer token, storing the caller
// identity in the request context. Requests without a valid token are
// rejected with 401.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authentication required")
			c.Abort()
			return
		}

		identity, err := verifier.VerifyToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// caller holds one of the given roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		utils.JSONError(c, http.StatusForbidden, auctionerrors.ErrForbidden, "insufficient role")
		c.Abort()
	}
}

// IdentityFrom returns the authenticated caller stored by Authenticate.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

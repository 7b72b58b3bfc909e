package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/maze-editor/service"
	"github.com/beka-birhanu/maze-editor/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authoriz rejects requests without a valid bearer token and stores the
// token claims in the context for the handlers.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// AuthorID extracts the signed-in author's ID from the claims set by Authoriz.
func AuthorID(c *gin.Context) (uuid.UUID, error) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("no claims in context")
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, fmt.Errorf("unexpected claims type %T", raw)
	}

	id, ok := claims[service.ClaimAuthorID].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("claim %s missing", service.ClaimAuthorID)
	}
	return uuid.Parse(id)
}

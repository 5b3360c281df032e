package middleware

import "github.com/gin-gonic/gin"

// contextKey is used for values stored in contexts by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey = contextKey("logger")
	actorKey  = contextKey("actorID")
)

// GetActorIDFromContext retrieves the acting user/collaborator ID from the
// Gin context. It returns the actor ID and a boolean indicating if it was
// found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(actorKey)
		if ctxVal != nil {
			if actorID, ok := ctxVal.(string); ok {
				return actorID, true
			}
		}
		return "", false
	}

	actorID, ok := actorVal.(string)
	if !ok {
		return "", false
	}

	return actorID, true
}

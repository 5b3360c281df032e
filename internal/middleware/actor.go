package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the identity of the acting user. Authentication lives
// outside this service; trusted collaborators (UI backend, gateway) resolve
// the user and forward the ID here.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware extracts the actor ID from the request header and stores
// it in the context for audit fields and timeline entries. Mutating
// endpoints reject requests without it.
func ActorMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorHeader)
		if actorID == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing " + ActorHeader + " header"})
				return
			}
			c.Next()
			return
		}

		c.Set(string(actorKey), actorID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), actorKey, actorID))
		c.Next()
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by userIdMiddleware for downstream handlers.
const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

// userIdMiddleware resolves the session before any protected handler runs.
// The token is taken from the Authorization header, the session cookie, or a
// token query param (websocket clients cannot set headers). On every request
// the account is re-derived from the store; a token whose id no longer
// resolves is treated as anonymous.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	token, ok := extractToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	user, err := h.services.ResolveUser(userId)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(ctxUserID, user.ID)
	c.Set(ctxUsername, user.Username)
	c.Next()
}

// extractToken pulls a session token out of the request, header first.
func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	if token := c.Query("token"); token != "" {
		return token, true
	}
	return "", false
}

// currentUserID reads the id bound by userIdMiddleware.
func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}

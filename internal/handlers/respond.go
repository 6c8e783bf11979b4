package handlers

import (
	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusSuccess = "success"
	statusError   = "error"

	// defaultProfilePic is the well-known asset served when an account has
	// no profile picture; settings reads never return an empty reference.
	defaultProfilePic = "images/default_profile.png"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// profilePicURL turns a stored root-relative reference into a download URL,
// substituting the default asset when the account never set a picture.
func profilePicURL(relPath string) string {
	if relPath == "" {
		return "/static/" + defaultProfilePic
	}
	return "/download/" + relPath
}

// recordActivity appends to the account history best-effort: a failed append
// is logged and never fails the surrounding operation.
func (h *Handler) recordActivity(c *gin.Context, accountID int, typ, description string, meta any) {
	if err := h.services.ActivityLog.Record(c.Request.Context(), accountID, typ, description, meta); err != nil && h.log != nil {
		h.log.Infow("activity_append_failed", "err", err, "type", typ, "account_id", accountID)
	}
}

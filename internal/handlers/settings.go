package handlers

import (
	"errors"
	"net/http"
	"strings"

	"image_enhancer/internal/service"

	"github.com/gin-gonic/gin"
)

const errSaveSettings = "failed to save settings"

// @Summary      Save profile settings
// @Description  Multipart form with optional phone field and optional
// @Description  profile_pic file. The file is written before the reference is
// @Description  persisted; a failed write never leaves a dangling reference.
// @Tags         settings
// @Accept       multipart/form-data
// @Produce      json
// @Param        phone        formData  string  false  "Phone number"
// @Param        profile_pic  formData  file    false  "Profile image (png/jpg/jpeg/webp)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /save_settings [post]
// @Security     BearerAuth
func (h *Handler) saveSettings(c *gin.Context) {
	userID := currentUserID(c)

	var phone *string
	if v, ok := c.GetPostForm("phone"); ok {
		trimmed := strings.TrimSpace(v)
		phone = &trimmed
	}

	// Store the asset first; only a successful write may update the record.
	// An absent part is fine; a malformed one is a client error, not a
	// phone-only update.
	var picRel *string
	fileHeader, err := c.FormFile("profile_pic")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		h.logAndJSONError(c, http.StatusBadRequest, "unreadable upload", "settings_upload_form_failed", err)
		return
	}
	if err == nil && fileHeader.Filename != "" {
		if !h.services.Assets.ValidExtension(fileHeader.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusError, "message": "unsupported profile image type"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			h.logAndJSONError(c, http.StatusBadRequest, "unreadable upload", "settings_upload_open_failed", err)
			return
		}
		rel, err := h.services.Assets.Store(userID, f, fileHeader.Filename, service.PurposeProfilePic)
		_ = f.Close()
		if err != nil {
			if errors.Is(err, service.ErrUnsupportedFileType) || errors.Is(err, service.ErrMissingFile) {
				c.JSON(http.StatusBadRequest, gin.H{"status": statusError, "message": err.Error()})
				return
			}
			h.logAndJSONError(c, http.StatusInternalServerError, errSaveSettings, "settings_store_failed", err)
			return
		}
		picRel = &rel
	}

	settings, err := h.services.Settings.Update(userID, phone, picRel)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSaveSettings, "settings_update_failed", err)
		return
	}

	h.recordActivity(c, userID, service.EventSettingsUpdate, "settings updated", gin.H{
		"phone_set":       phone != nil,
		"profile_pic_set": picRel != nil,
	})

	c.JSON(http.StatusOK, gin.H{
		"status":          statusSuccess,
		"username":        settings.Username,
		"phone":           settings.Phone,
		"profile_pic_url": profilePicURL(settings.ProfilePic),
	})
}

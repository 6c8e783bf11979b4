package handlers

import (
	"errors"
	"net/http"

	"image_enhancer/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errGetSettings = "failed to load settings"
	errStoreUpload = "failed to store upload"
)

// @Summary      Current settings view
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *Handler) getDashboard(c *gin.Context) {
	settings, err := h.services.Settings.Get(currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetSettings, "dashboard_settings_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":        settings.Username,
		"phone":           settings.Phone,
		"profile_pic_url": profilePicURL(settings.ProfilePic),
	})
}

// @Summary      Upload an image for enhancement
// @Description  Stores the file under the account's directory and runs the
// @Description  enhancement pipeline (currently a pass-through).
// @Tags         dashboard
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file (png/jpg/jpeg/webp)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /dashboard [post]
// @Security     BearerAuth
func (h *Handler) uploadImage(c *gin.Context) {
	userID := currentUserID(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
		return
	}
	if !h.services.Assets.ValidExtension(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, "unreadable upload", "dashboard_upload_open_failed", err)
		return
	}
	defer func() { _ = f.Close() }()

	relPath, err := h.services.Assets.Store(userID, f, fileHeader.Filename, service.PurposeUpload)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) || errors.Is(err, service.ErrMissingFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreUpload, "dashboard_upload_store_failed", err)
		return
	}

	// Enhancement placeholder: no transformation applied yet.
	enhanced, err := h.services.Assets.Enhance(relPath)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreUpload, "dashboard_enhance_failed", err)
		return
	}

	h.recordActivity(c, userID, service.EventUpload, "image uploaded", gin.H{"path": enhanced})

	c.JSON(http.StatusOK, gin.H{
		"status":            statusSuccess,
		"enhanced":          "/download/" + enhanced,
		"enhanced_filename": enhanced,
	})
}

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      Download a stored asset
// @Tags         assets
// @Produce      octet-stream
// @Param        filepath  path  string  true  "Root-relative asset path"
// @Success      200  {file}  binary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /download/{filepath} [get]
// @Security     BearerAuth
func (h *Handler) download(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("filepath"), "/")

	abs, err := h.services.Assets.Resolve(rel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset path"})
		return
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	c.FileAttachment(abs, filepath.Base(abs))
}

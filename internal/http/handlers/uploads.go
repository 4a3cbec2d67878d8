package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"legalease/internal/http/middleware"
	"legalease/internal/utils"
)

var allowedUploadExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// UploadFile saves a multipart file under the uploads dir and returns its
// public path. Filenames are regenerated so clients cannot control paths.
func UploadFile(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "file field is required", err)
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedUploadExt[ext] {
			RespondError(c, http.StatusBadRequest, "file type not allowed", nil)
			return
		}

		name := uuid.NewString() + ext
		dst := filepath.Join(uploadsDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to store file", err)
			return
		}

		utils.LogEvent(middleware.GetRequestID(c), "uploads", "store", "name="+name)
		c.JSON(http.StatusCreated, gin.H{"path": "/uploads/" + name})
	}
}

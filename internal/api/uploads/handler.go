package uploads

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"portfolio-backend/config"
	"portfolio-backend/database"
	"portfolio-backend/internal/domain/media"
	"portfolio-backend/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// POST /admin/uploads
//
// Admin images (artworks, blog posts, the about/achievements pages) go
// through object storage and are persisted as public URLs. Order reference
// photos do not pass through here; the public form inlines them as base64.
func UploadImage(c *gin.Context) {
	if storage.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage not configured"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read image file"})
		return
	}
	defer file.Close()

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = storage.Client.PutObject(c.Request.Context(), config.MINIO_BUCKET, objectName,
		file, header.Size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	upload := media.Upload{
		ObjectName:  objectName,
		URL:         storage.PublicURL(objectName),
		ContentType: contentType,
		Size:        header.Size,
	}
	if err := database.DB.Create(&upload).Error; err != nil {
		// The object is already in storage; losing the audit row is not
		// worth failing the upload over.
		fmt.Println("⚠️  Failed to record upload:", err)
	}

	c.JSON(http.StatusCreated, gin.H{"url": upload.URL})
}

// DELETE /admin/uploads?url=...
func DeleteImage(c *gin.Context) {
	if storage.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Object storage not configured"})
		return
	}

	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	objectName := objectNameFromURL(url)
	if objectName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image URL"})
		return
	}

	err := storage.Client.RemoveObject(c.Request.Context(), config.MINIO_BUCKET, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	database.DB.Where("object_name = ?", objectName).Delete(&media.Upload{})

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// objectNameFromURL derives the stored object name from a public URL: the
// last path segment, stripped of any query string.
func objectNameFromURL(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

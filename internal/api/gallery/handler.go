package galleryapi

import (
	"net/http"
	"time"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/gallery"

	"github.com/gin-gonic/gin"
)

// GET /artworks
func ListArtworks(c *gin.Context) {
	var artworks []gallery.Artwork
	if err := database.DB.
		Order("created_at DESC").
		Find(&artworks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	out := ListArtworksResponse{Artworks: make([]ArtworkDTO, 0, len(artworks))}
	for _, a := range artworks {
		out.Artworks = append(out.Artworks, toArtworkDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// POST /admin/artworks
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and image are required"})
		return
	}

	if req.Category == "" {
		req.Category = gallery.DefaultCategory
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	artwork := gallery.Artwork{
		Title:       req.Title,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save artwork"})
		return
	}

	c.JSON(http.StatusCreated, toArtworkDTO(artwork))
}

// DELETE /admin/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&gallery.Artwork{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}

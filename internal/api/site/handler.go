package siteapi

import (
	"net/http"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/site"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /about
func GetAbout(c *gin.Context) {
	about, err := FetchAbout(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about page"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// PUT /admin/about
//
// Upsert: update the existing row if present, otherwise insert one. The
// transaction keeps the table at a single row even if two admins race.
func UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	var about site.AboutPage
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&about).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		about.Title = req.Title
		about.Content = req.Content
		about.Image1 = req.Image1
		about.Image2 = req.Image2

		return tx.Save(&about).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save about page"})
		return
	}

	// Respond with the stored row; it is the source of truth, not the draft.
	c.JSON(http.StatusOK, about)
}

// GET /achievements
func GetAchievements(c *gin.Context) {
	achievements, err := FetchAchievements(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load achievements page"})
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// PUT /admin/achievements
func UpdateAchievements(c *gin.Context) {
	var req UpdateAchievementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	var achievements site.AchievementsPage
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&achievements).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		achievements.Image = req.Image

		return tx.Save(&achievements).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save achievements page"})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

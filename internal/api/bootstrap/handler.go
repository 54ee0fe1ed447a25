package bootstrap

import (
	"net/http"

	"portfolio-backend/database"
	siteapi "portfolio-backend/internal/api/site"
	"portfolio-backend/internal/domain/blog"
	"portfolio-backend/internal/domain/gallery"
	"portfolio-backend/internal/domain/orders"
	"portfolio-backend/internal/domain/site"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GET /bootstrap
//
// Single payload the frontend renders from. The four required reads run
// concurrently and any failure fails the whole request: a page built from a
// partial payload is worse than a reload prompt. Orders are included only
// for an authenticated admin, and an orders failure degrades to an empty
// list instead of failing the boot.
func Load(c *gin.Context) {
	db := database.DB.WithContext(c.Request.Context())

	var (
		artworks     []gallery.Artwork
		posts        []blog.Post
		about        site.AboutPage
		achievements site.AchievementsPage
	)

	var g errgroup.Group
	g.Go(func() error {
		return db.Order("created_at DESC").Find(&artworks).Error
	})
	g.Go(func() error {
		return db.Order("created_at DESC").Find(&posts).Error
	})
	g.Go(func() error {
		var err error
		about, err = siteapi.FetchAbout(db)
		return err
	})
	g.Go(func() error {
		var err error
		achievements, err = siteapi.FetchAchievements(db)
		return err
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site content"})
		return
	}

	orderList := []orders.Order{}
	if c.GetString("role") == "admin" {
		if err := db.Order("created_at DESC").Find(&orderList).Error; err != nil {
			orderList = []orders.Order{}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"artworks":     artworks,
		"blogs":        posts,
		"about":        about,
		"achievements": achievements,
		"orders":       orderList,
	})
}

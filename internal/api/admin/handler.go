package admin

import (
	"net/http"
	"time"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/blog"
	"portfolio-backend/internal/domain/gallery"
	"portfolio-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalArtworks int64 `json:"total_artworks"`
	TotalPosts    int64 `json:"total_posts"`
	TotalOrders   int64 `json:"total_orders"`
	RecentOrders  int64 `json:"recent_orders"`
}

// GET /admin/dashboard
func Dashboard(c *gin.Context) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
	}{
		{&gallery.Artwork{}, &stats.TotalArtworks},
		{&blog.Post{}, &stats.TotalPosts},
		{&orders.Order{}, &stats.TotalOrders},
	}
	for _, q := range counts {
		if err := database.DB.Model(q.model).Count(q.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
	}

	if err := database.DB.Model(&orders.Order{}).
		Where("created_at >= ?", time.Now().AddDate(0, 0, -30)).
		Count(&stats.RecentOrders).Error; err != nil {
		stats.RecentOrders = 0
	}

	c.JSON(http.StatusOK, stats)
}

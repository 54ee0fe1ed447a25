package routes

import (
	adminapi "portfolio-backend/internal/api/admin"
	authapi "portfolio-backend/internal/api/auth"
	blogapi "portfolio-backend/internal/api/blog"
	"portfolio-backend/internal/api/bootstrap"
	galleryapi "portfolio-backend/internal/api/gallery"
	ordersapi "portfolio-backend/internal/api/orders"
	siteapi "portfolio-backend/internal/api/site"
	"portfolio-backend/internal/api/uploads"
	"portfolio-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Backend half of the hidden admin entry trigger.
	r.GET("/auth/gate/:key", authapi.Gate)

	// Public reads
	r.GET("/artworks", galleryapi.ListArtworks)
	r.GET("/blogs", blogapi.ListPosts)
	r.GET("/blogs/:id", blogapi.GetPost)
	r.GET("/about", siteapi.GetAbout)
	r.GET("/achievements", siteapi.GetAchievements)
	r.GET("/bootstrap", middleware.OptionalAuthMiddleware(), bootstrap.Load)

	// Public writes, input sanitized
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)
	public.POST("/orders", ordersapi.CreateOrder)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.Dashboard)

	admin.POST("/artworks", galleryapi.CreateArtwork)
	admin.DELETE("/artworks/:id", galleryapi.DeleteArtwork)

	admin.POST("/blogs", blogapi.CreatePost)
	admin.DELETE("/blogs/:id", blogapi.DeletePost)

	admin.PUT("/about", siteapi.UpdateAbout)
	admin.PUT("/achievements", siteapi.UpdateAchievements)

	admin.GET("/orders", ordersapi.ListOrders)
	admin.DELETE("/orders/:id", ordersapi.DeleteOrder)

	admin.POST("/uploads", uploads.UploadImage)
	admin.DELETE("/uploads", uploads.DeleteImage)
}

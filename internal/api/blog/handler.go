package blogapi

import (
	"net/http"
	"time"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /blogs
func ListPosts(c *gin.Context) {
	var posts []blog.Post
	if err := database.DB.
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blog posts"})
		return
	}

	out := ListPostsResponse{Posts: make([]PostDTO, 0, len(posts))}
	for _, p := range posts {
		out.Posts = append(out.Posts, toPostDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /blogs/:id
func GetPost(c *gin.Context) {
	id := c.Param("id")

	var post blog.Post
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blog post"})
		return
	}

	c.JSON(http.StatusOK, toPostDTO(post))
}

// POST /admin/blogs
func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	if req.Excerpt == "" {
		req.Excerpt = defaultExcerpt(req.Content)
	}

	images := req.Images
	imageURL := req.ImageURL
	// Keep the legacy field pointing at the first image.
	if len(images) > 0 {
		imageURL = images[0]
	} else if imageURL != "" {
		images = []string{imageURL}
	}

	post := blog.Post{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: imageURL,
		Images:   images,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save blog post"})
		return
	}

	c.JSON(http.StatusCreated, toPostDTO(post))
}

// DELETE /admin/blogs/:id
func DeletePost(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&blog.Post{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}

const excerptRunes = 100

// defaultExcerpt derives the list-view teaser from the full body when the
// admin leaves the excerpt empty: the first 100 characters plus an ellipsis.
// Truncation counts runes, not bytes; post bodies are Turkish.
func defaultExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptRunes {
		return content + "..."
	}
	return string(runes[:excerptRunes]) + "..."
}

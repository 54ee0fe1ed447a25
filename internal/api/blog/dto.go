package blogapi

import (
	"time"

	"portfolio-backend/internal/domain/blog"
)

type PostDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Images    []string  `json:"images"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPostsResponse struct {
	Posts []PostDTO `json:"posts"`
}

type CreatePostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Excerpt  string   `json:"excerpt"`
	ImageURL string   `json:"image_url"`
	Images   []string `json:"images"`
}

func toPostDTO(p blog.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Images:    p.ImageList(),
		Date:      p.Date,
		CreatedAt: p.CreatedAt,
	}
}

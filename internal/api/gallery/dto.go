package galleryapi

import (
	"time"

	"portfolio-backend/internal/domain/gallery"
)

type ArtworkDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListArtworksResponse struct {
	Artworks []ArtworkDTO `json:"artworks"`
}

type CreateArtworkRequest struct {
	Title       string `json:"title" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func toArtworkDTO(a gallery.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:          a.ID,
		Title:       a.Title,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		Description: a.Description,
		Date:        a.Date,
		CreatedAt:   a.CreatedAt,
	}
}

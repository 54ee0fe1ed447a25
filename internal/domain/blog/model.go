package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Excerpt string `gorm:"not null" json:"excerpt"`
	Content string `gorm:"type:text;not null" json:"content"`

	// Legacy single-image field, kept in sync with the first entry of Images.
	ImageURL string   `gorm:"column:image_url" json:"image_url,omitempty"`
	Images   []string `gorm:"serializer:json" json:"images"`

	// Publish date, YYYY-MM-DD. Always set server-side at submission time.
	Date string `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ImageList returns the post's images, falling back to the legacy
// single-image field for rows written before the list column existed.
func (p *Post) ImageList() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.ImageURL != "" {
		return []string{p.ImageURL}
	}
	return []string{}
}

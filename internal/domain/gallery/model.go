package gallery

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategory is used when the admin form submits no category tag.
const DefaultCategory = "Diğer"

type Artwork struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Category    string `gorm:"not null" json:"category"`
	ImageURL    string `gorm:"column:image_url;not null" json:"image_url"`
	Description string `gorm:"type:text" json:"description"`

	// Completion date as shown on the site, YYYY-MM-DD.
	Date string `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

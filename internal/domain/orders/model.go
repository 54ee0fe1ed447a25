package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPetType is used when the public form submits no pet-type tag.
const DefaultPetType = "Kedi"

type Order struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	PetType string `gorm:"column:pet_type;not null" json:"pet_type"`
	Message string `gorm:"type:text;not null" json:"message"`

	// Reference photo embedded as an inline base64 data URL. Order photos
	// never go through object storage; the public form has no credentials.
	PhotoURL string `gorm:"column:photo_url;type:text;not null" json:"photo_url"`

	// Submission date, YYYY-MM-DD.
	Date string `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

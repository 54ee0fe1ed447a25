package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upload records an object placed in storage by the admin panel, so orphaned
// objects can be traced back after an artwork or post is deleted.
type Upload struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	ObjectName  string `gorm:"not null;uniqueIndex:idx_uploads_object_name" json:"object_name"`
	URL         string `gorm:"not null" json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Upload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package site

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AboutPage is a singleton: the upsert path keeps the table at one row.
type AboutPage struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"-"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Image1  string `json:"image1"`
	Image2  string `json:"image2"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AboutPage) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AchievementsPage is a singleton holding the awards/exhibitions poster image.
type AchievementsPage struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"-"`
	Image string `gorm:"not null" json:"image"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AchievementsPage) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

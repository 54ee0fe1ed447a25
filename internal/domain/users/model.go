package users

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`
	Password string `gorm:"not null"`
	Role     string `gorm:"type:varchar(20);not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

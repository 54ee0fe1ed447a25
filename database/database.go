package database

import (
	"fmt"
	"log"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain/blog"
	"portfolio-backend/internal/domain/gallery"
	"portfolio-backend/internal/domain/media"
	"portfolio-backend/internal/domain/orders"
	"portfolio-backend/internal/domain/site"
	"portfolio-backend/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := SeedAdmin(DB); err != nil {
		log.Fatal("❌ Admin seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&gallery.Artwork{},
		&blog.Post{},
		&site.AboutPage{},
		&site.AchievementsPage{},
		&orders.Order{},
		&media.Upload{},
	)
}

// SeedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD on an
// empty users table. The login endpoint has no signup path, so this is the
// only way an account comes into existence.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&users.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if config.ADMIN_EMAIL == "" || config.ADMIN_PASSWORD == "" {
		log.Println("⚠️  No admin account seeded: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := users.User{
		Name:     "Admin",
		Email:    config.ADMIN_EMAIL,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	fmt.Println("✅ Admin user seeded:", admin.Email)
	return nil
}

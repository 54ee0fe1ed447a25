package siteapi

import (
	"portfolio-backend/internal/domain/site"

	"gorm.io/gorm"
)

// FetchAbout returns the stored about row, or the hardcoded fallback when no
// row exists yet. The fallback is served only, never written back.
func FetchAbout(db *gorm.DB) (site.AboutPage, error) {
	var about site.AboutPage
	err := db.First(&about).Error
	if err == gorm.ErrRecordNotFound {
		return site.DefaultAbout(), nil
	}
	if err != nil {
		return site.AboutPage{}, err
	}
	return about, nil
}

// FetchAchievements mirrors FetchAbout for the achievements singleton.
func FetchAchievements(db *gorm.DB) (site.AchievementsPage, error) {
	var achievements site.AchievementsPage
	err := db.First(&achievements).Error
	if err == gorm.ErrRecordNotFound {
		return site.DefaultAchievements(), nil
	}
	if err != nil {
		return site.AchievementsPage{}, err
	}
	return achievements, nil
}

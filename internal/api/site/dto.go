package siteapi

type UpdateAboutRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image1  string `json:"image1"`
	Image2  string `json:"image2"`
}

type UpdateAchievementsRequest struct {
	Image string `json:"image" binding:"required"`
}

package dto

import "github.com/noah-isme/studio-catalog/internal/models"

// ClassCardItem is the compact activity view used by list pages.
type ClassCardItem struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	ShortDescription string            `json:"short_desc"`
	Description      string            `json:"description"`
	Schedules        []models.Schedule `json:"schedules"`
	Image            *string           `json:"image,omitempty"`
	ColorVariant     string            `json:"colorVariant"`
	DifficultyLevel  int               `json:"difficulty_level"`
	IconID           int               `json:"icon_id"`
}

// TeacherCardItem is the compact teacher view used by list pages.
type TeacherCardItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	ImageURL string `json:"imageUrl"`
	ShortBio string `json:"shortBio"`
}

// TeacherCardItemWithActivities adds the activities a teacher leads.
type TeacherCardItemWithActivities struct {
	TeacherCardItem
	Activities []ActivityRef `json:"activities"`
}

// ActivityRef is the minimal activity reference shown on teacher cards.
type ActivityRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

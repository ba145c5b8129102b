package service

import (
	"github.com/noah-isme/studio-catalog/internal/models"
)

// NormalizeTeacher converts a raw teacher record into the domain Teacher. FullName
// is always rebuilt from name and surname; any value on the raw record is ignored.
func NormalizeTeacher(raw models.RawTeacherRecord) models.Teacher {
	activities := make([]models.TeacherActivity, 0, len(raw.TeacherActivities))
	for _, slot := range raw.TeacherActivities {
		activities = append(activities, models.TeacherActivity{
			Time:     slot.Time,
			Days:     copyStrings(slot.Days),
			Activity: summarizeActivity(slot.Activity),
		})
	}

	return models.Teacher{
		ID:         raw.TeacherID,
		Name:       raw.Name,
		Surname:    raw.Surname,
		FullName:   raw.Name + " " + raw.Surname,
		PhotoURL:   raw.PhotoURL,
		ShortBio:   raw.ShortCV,
		Phone:      raw.Phone,
		Email:      raw.Email,
		Activities: activities,
	}
}

// NormalizeTeachers maps a batch of raw records, preserving order.
func NormalizeTeachers(raws []models.RawTeacherRecord) []models.Teacher {
	out := make([]models.Teacher, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeTeacher(raw))
	}
	return out
}

func summarizeActivity(raw *models.RawActivitySummary) models.ActivitySummaryViaTeacher {
	if raw == nil {
		raw = &models.RawActivitySummary{}
	}
	return models.ActivitySummaryViaTeacher{
		ID:               raw.ActivityID,
		Title:            raw.Title,
		Description:      raw.Description,
		ShortDescription: raw.ShortDesc,
		Images:           copyStrings(raw.Images),
		Highlighted:      raw.Highlighted,
		DifficultyLevel:  difficultyOrDefault(raw.DifficultyLevel),
		IconID:           iconOrDefault(raw.IconID),
		Schedules:        []models.Schedule{},
	}
}

package service

import (
	"github.com/noah-isme/studio-catalog/internal/dto"
	"github.com/noah-isme/studio-catalog/internal/models"
)

// BioPreviewLength is the number of characters kept on teacher cards.
const BioPreviewLength = 100

const bioEllipsis = "..."

var colorVariants = [...]string{"primary", "secondary", "third"}

// ColorVariant picks the card theme for a display position.
func ColorVariant(index int) string {
	n := len(colorVariants)
	return colorVariants[((index%n)+n)%n]
}

// ActivityToClassCard projects an activity into its card view.
func ActivityToClassCard(activity models.Activity, index int) dto.ClassCardItem {
	card := dto.ClassCardItem{
		ID:               activity.ID,
		Title:            activity.Title,
		ShortDescription: activity.ShortDescription,
		Description:      activity.Description,
		Schedules:        copySchedules(activity.Schedules),
		ColorVariant:     ColorVariant(index),
		DifficultyLevel:  activity.DifficultyLevel,
		IconID:           activity.IconID,
	}
	if len(activity.Images) > 0 {
		image := activity.Images[0]
		card.Image = &image
	}
	return card
}

// ActivitiesToClassCards projects a list, using each position as display index.
func ActivitiesToClassCards(activities []models.Activity) []dto.ClassCardItem {
	cards := make([]dto.ClassCardItem, 0, len(activities))
	for i, activity := range activities {
		cards = append(cards, ActivityToClassCard(activity, i))
	}
	return cards
}

// TeacherToCardItem projects a teacher into its card view.
func TeacherToCardItem(teacher models.Teacher) dto.TeacherCardItem {
	return dto.TeacherCardItem{
		ID:       teacher.ID,
		Name:     teacher.Name,
		FullName: teacher.Name + " " + teacher.Surname,
		ImageURL: teacher.PhotoURL,
		ShortBio: TruncateBio(teacher.ShortBio),
	}
}

// TeacherToCardItemWithActivities adds id/title pairs of the teacher's activities.
func TeacherToCardItemWithActivities(teacher models.Teacher) dto.TeacherCardItemWithActivities {
	refs := make([]dto.ActivityRef, 0, len(teacher.Activities))
	for _, ta := range teacher.Activities {
		refs = append(refs, dto.ActivityRef{ID: ta.Activity.ID, Title: ta.Activity.Title})
	}
	return dto.TeacherCardItemWithActivities{
		TeacherCardItem: TeacherToCardItem(teacher),
		Activities:      refs,
	}
}

// TeachersToCardItems projects a list of teachers.
func TeachersToCardItems(teachers []models.Teacher) []dto.TeacherCardItem {
	cards := make([]dto.TeacherCardItem, 0, len(teachers))
	for _, teacher := range teachers {
		cards = append(cards, TeacherToCardItem(teacher))
	}
	return cards
}

// TeachersToCardItemsWithActivities projects a list of teachers with activities.
func TeachersToCardItemsWithActivities(teachers []models.Teacher) []dto.TeacherCardItemWithActivities {
	cards := make([]dto.TeacherCardItemWithActivities, 0, len(teachers))
	for _, teacher := range teachers {
		cards = append(cards, TeacherToCardItemWithActivities(teacher))
	}
	return cards
}

// TruncateBio keeps the first BioPreviewLength characters and marks the cut.
// Counting is done on runes so multi-byte text is never split mid-character.
func TruncateBio(bio string) string {
	runes := []rune(bio)
	if len(runes) <= BioPreviewLength {
		return bio
	}
	return string(runes[:BioPreviewLength]) + bioEllipsis
}

func copySchedules(in []models.Schedule) []models.Schedule {
	out := make([]models.Schedule, len(in))
	for i, s := range in {
		out[i] = models.Schedule{Time: s.Time, Days: copyStrings(s.Days)}
		if s.Professor != nil {
			professor := *s.Professor
			out[i].Professor = &professor
		}
	}
	return out
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/studio-catalog/internal/dto"
	"github.com/noah-isme/studio-catalog/internal/models"
)

func TestColorVariantRotation(t *testing.T) {
	want := []string{"primary", "secondary", "third", "primary", "secondary", "third"}
	for i, expected := range want {
		assert.Equal(t, expected, ColorVariant(i), "index %d", i)
	}
	assert.Equal(t, "third", ColorVariant(-1))
}

func TestActivityToClassCard(t *testing.T) {
	activity := models.Activity{
		ID:               5,
		Title:            "Hatha",
		Description:      "Slow flow",
		ShortDescription: "Gentle",
		Images:           []string{"first.jpg", "second.jpg"},
		DifficultyLevel:  2,
		IconID:           4,
		Schedules: []models.Schedule{{
			Time:      "10:00 AM",
			Days:      []string{"Monday"},
			Professor: &models.TeacherSummaryViaActivity{ID: 1, Name: "Ana Lopez", Phone: "600"},
		}},
	}

	card := ActivityToClassCard(activity, 4)
	require.NotNil(t, card.Image)
	assert.Equal(t, "first.jpg", *card.Image)
	assert.Equal(t, "secondary", card.ColorVariant)
	assert.Equal(t, "Gentle", card.ShortDescription)
	assert.Equal(t, 2, card.DifficultyLevel)
	assert.Equal(t, 4, card.IconID)
	assert.Equal(t, activity.Schedules, card.Schedules)

	card.Schedules[0].Days[0] = "Sunday"
	card.Schedules[0].Professor.Name = "Someone"
	assert.Equal(t, "Monday", activity.Schedules[0].Days[0])
	assert.Equal(t, "Ana Lopez", activity.Schedules[0].Professor.Name)

	assert.Equal(t, card.ColorVariant, ActivityToClassCard(activity, 4).ColorVariant)
}

func TestActivityToClassCardWithoutImages(t *testing.T) {
	card := ActivityToClassCard(models.Activity{ID: 1, Images: []string{}}, 0)
	assert.Nil(t, card.Image)
	assert.Equal(t, "primary", card.ColorVariant)
}

func TestActivitiesToClassCardsUsesPosition(t *testing.T) {
	cards := ActivitiesToClassCards([]models.Activity{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}})
	variants := make([]string, 0, len(cards))
	for _, c := range cards {
		variants = append(variants, c.ColorVariant)
	}
	assert.Equal(t, []string{"primary", "secondary", "third", "primary"}, variants)
	assert.NotNil(t, ActivitiesToClassCards(nil))
}

func TestTruncateBioBoundary(t *testing.T) {
	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, TruncateBio(exact))

	over := strings.Repeat("b", 101)
	truncated := TruncateBio(over)
	assert.Equal(t, strings.Repeat("b", 100)+"...", truncated)
	assert.Len(t, truncated, 103)

	assert.Equal(t, "", TruncateBio(""))

	multibyte := strings.Repeat("é", 101)
	assert.Equal(t, strings.Repeat("é", 100)+"...", TruncateBio(multibyte))
}

func TestTeacherToCardItem(t *testing.T) {
	teacher := NormalizeTeacher(models.RawTeacherRecord{
		TeacherID: 9,
		Name:      "Ana",
		Surname:   "Lopez",
		PhotoURL:  "https://cdn.test/ana.jpg",
		ShortCV:   strings.Repeat("x", 150),
		TeacherActivities: []models.RawTeacherSlot{
			{Activity: &models.RawActivitySummary{ActivityID: 3, Title: "Hatha"}},
			{Activity: &models.RawActivitySummary{ActivityID: 1, Title: "Yin"}},
		},
	})

	card := TeacherToCardItem(teacher)
	assert.Equal(t, dto.TeacherCardItem{
		ID:       9,
		Name:     "Ana",
		FullName: "Ana Lopez",
		ImageURL: "https://cdn.test/ana.jpg",
		ShortBio: strings.Repeat("x", 100) + "...",
	}, card)
	assert.Len(t, teacher.ShortBio, 150)

	detailed := TeacherToCardItemWithActivities(teacher)
	assert.Equal(t, card, detailed.TeacherCardItem)
	assert.Equal(t, []dto.ActivityRef{{ID: 3, Title: "Hatha"}, {ID: 1, Title: "Yin"}}, detailed.Activities)
}

func TestTeacherCardFullNameRoundTrip(t *testing.T) {
	raws := []models.RawTeacherRecord{
		{TeacherID: 1, Name: "Ana", Surname: "Lopez"},
		{TeacherID: 2, Name: "Jean Paul", Surname: "Sartre Dubois"},
	}
	for _, raw := range raws {
		assert.Equal(t, raw.Name+" "+raw.Surname, TeacherToCardItem(NormalizeTeacher(raw)).FullName)
	}
}

func TestTeacherCardsWithoutActivities(t *testing.T) {
	cards := TeachersToCardItemsWithActivities([]models.Teacher{{ID: 1, Name: "Ben", Surname: "Ortiz"}})
	require.Len(t, cards, 1)
	assert.NotNil(t, cards[0].Activities)
	assert.Empty(t, cards[0].Activities)
	assert.Len(t, TeachersToCardItems([]models.Teacher{{ID: 1}}), 1)
}

package service

import (
	"strconv"
	"strings"

	"github.com/noah-isme/studio-catalog/internal/models"
)

const (
	defaultDifficultyLevel = models.DifficultyBeginner
	maxDifficultyLevel     = models.DifficultyAdvanced
	defaultIconID          = 1
	maxIconID              = 6
)

// NormalizeActivity converts a raw activity record into the domain Activity.
// It never fails: missing optional data degrades to defaults and empty slices.
func NormalizeActivity(raw models.RawActivityRecord) models.Activity {
	schedules := make([]models.Schedule, 0, len(raw.TeacherActivities))
	for _, slot := range raw.TeacherActivities {
		schedules = append(schedules, normalizeSchedule(slot))
	}

	return models.Activity{
		ID:               raw.ActivityID,
		Title:            raw.Title,
		Description:      raw.Description,
		ShortDescription: raw.ShortDesc,
		Images:           copyStrings(raw.Images),
		Highlighted:      raw.Highlighted,
		DifficultyLevel:  difficultyOrDefault(raw.DifficultyLevel),
		IconID:           iconOrDefault(raw.IconID),
		Schedules:        schedules,
	}
}

// NormalizeActivities maps a batch of raw records, preserving order.
func NormalizeActivities(raws []models.RawActivityRecord) []models.Activity {
	out := make([]models.Activity, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeActivity(raw))
	}
	return out
}

func normalizeSchedule(slot models.RawActivitySlot) models.Schedule {
	schedule := models.Schedule{
		Time: slot.Time,
		Days: copyStrings(slot.Days),
	}
	if slot.Teacher != nil {
		schedule.Professor = &models.TeacherSummaryViaActivity{
			ID:    slot.Teacher.TeacherID,
			Name:  displayName(slot.Teacher.Name, slot.Teacher.Surname),
			Email: slot.Teacher.Email,
			Phone: strconv.FormatInt(slot.Teacher.Phone, 10),
		}
	}
	return schedule
}

func displayName(name, surname string) string {
	return strings.TrimSpace(name + " " + surname)
}

func difficultyOrDefault(value *int) int {
	return inRangeOr(value, maxDifficultyLevel, defaultDifficultyLevel)
}

func iconOrDefault(value *int) int {
	return inRangeOr(value, maxIconID, defaultIconID)
}

// inRangeOr treats nil, zero and anything outside 1..upper as unset.
func inRangeOr(value *int, upper, fallback int) int {
	if value == nil || *value < 1 || *value > upper {
		return fallback
	}
	return *value
}

// copyStrings never returns nil so entities always serialise as [].
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

package models

// Difficulty levels an activity can be rated with.
const (
	DifficultyBeginner     = 1
	DifficultyIntermediate = 2
	DifficultyAdvanced     = 3
)

// Activity is a class offered by the studio, with its weekly schedules.
type Activity struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_desc"`
	Images           []string   `json:"images"`
	Highlighted      bool       `json:"highlighted"`
	DifficultyLevel  int        `json:"difficulty_level"`
	IconID           int        `json:"icon_id"`
	Schedules        []Schedule `json:"schedules"`
}

// Schedule is one weekly slot of an activity.
type Schedule struct {
	Time      string                     `json:"time"`
	Days      []string                   `json:"days"`
	Professor *TeacherSummaryViaActivity `json:"professor,omitempty"`
}

// TeacherSummaryViaActivity is the teacher as seen from an activity schedule.
// Phone is already formatted for display.
type TeacherSummaryViaActivity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DifficultyLabel names the level for display and exports.
func DifficultyLabel(level int) string {
	switch level {
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Beginner"
	}
}

package models

// RawActivityRecord is one activity row with its teaching slots as returned by the
// catalog store. Nullable columns stay pointers so absence survives until normalization.
type RawActivityRecord struct {
	ActivityID        int64             `db:"activity_id" json:"activity_id" validate:"required"`
	Title             string            `db:"title" json:"title" validate:"required"`
	Description       string            `db:"description" json:"description" validate:"required"`
	ShortDesc         string            `db:"short_desc" json:"short_desc"`
	Images            []string          `db:"images" json:"images"`
	Highlighted       bool              `db:"highlighted" json:"highlighted"`
	DifficultyLevel   *int              `db:"difficulty_level" json:"difficulty_level"`
	IconID            *int              `db:"icon_id" json:"icon_id"`
	TeacherActivities []RawActivitySlot `json:"TeacherActivities"`
}

// RawActivitySlot is a teacher_activities row seen from the activity side.
type RawActivitySlot struct {
	ID      int64              `json:"id"`
	Time    string             `json:"time"`
	Days    []string           `json:"days"`
	Teacher *RawTeacherSummary `json:"teacher"`
}

// RawTeacherSummary is the teacher relation embedded in an activity slot.
type RawTeacherSummary struct {
	TeacherID int64  `json:"teacher_id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Phone     int64  `json:"phone"`
}

// RawTeacherRecord is one teacher row with its teaching slots.
type RawTeacherRecord struct {
	TeacherID         int64            `db:"teacher_id" json:"teacher_id" validate:"required"`
	Name              string           `db:"name" json:"name" validate:"required"`
	Surname           string           `db:"surname" json:"surname" validate:"required"`
	FullName          *string          `json:"fullName,omitempty"`
	PhotoURL          string           `db:"photo_url" json:"photo_url"`
	ShortCV           string           `db:"short_cv" json:"short_cv"`
	Phone             int64            `db:"phone" json:"phone"`
	Email             string           `db:"email" json:"email"`
	TeacherActivities []RawTeacherSlot `json:"TeacherActivities"`
}

// RawTeacherSlot is a teacher_activities row seen from the teacher side.
type RawTeacherSlot struct {
	ID       int64               `json:"id"`
	Time     string              `json:"time"`
	Days     []string            `json:"days"`
	Activity *RawActivitySummary `json:"activity"`
}

// RawActivitySummary is the activity relation embedded in a teacher slot.
type RawActivitySummary struct {
	ActivityID      int64    `json:"activity_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ShortDesc       string   `json:"short_desc"`
	Images          []string `json:"images"`
	Highlighted     bool     `json:"highlighted"`
	DifficultyLevel *int     `json:"difficulty_level"`
	IconID          *int     `json:"icon_id"`
}

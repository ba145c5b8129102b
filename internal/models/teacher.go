package models

// Teacher is an instructor with the activities they lead.
type Teacher struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Surname    string            `json:"surname"`
	FullName   string            `json:"fullName"`
	PhotoURL   string            `json:"photo_url"`
	ShortBio   string            `json:"short_cv"`
	Phone      int64             `json:"phone"`
	Email      string            `json:"email"`
	Activities []TeacherActivity `json:"activities"`
}

// TeacherActivity is one slot a teacher runs.
type TeacherActivity struct {
	Time     string                    `json:"time"`
	Days     []string                  `json:"days"`
	Activity ActivitySummaryViaTeacher `json:"activity"`
}

// ActivitySummaryViaTeacher is the activity as seen from a teacher slot. Schedules
// are not fanned out from this direction and are always empty.
type ActivitySummaryViaTeacher struct {
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

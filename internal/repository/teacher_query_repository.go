package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/models"
)

const teacherSelect = `SELECT teacher_id, COALESCE(name, '') AS name, COALESCE(surname, '') AS surname, COALESCE(photo_url, '') AS photo_url, COALESCE(short_cv, '') AS short_cv, COALESCE(phone, 0) AS phone, COALESCE(email, '') AS email FROM teachers`

const teacherHighlightedClause = ` WHERE EXISTS (SELECT 1 FROM teacher_activities ta JOIN activities a ON a.activity_id = ta.activity_id WHERE ta.teacher_id = teachers.teacher_id AND a.highlighted = TRUE)`

const teacherSlotsQuery = `SELECT ta.id, ta.teacher_id, COALESCE(ta."time", '') AS time, ta.days, a.activity_id, a.title, a.description, a.short_desc, a.images, a.highlighted, a.difficulty_level, a.icon_id
	FROM teacher_activities ta
	LEFT JOIN activities a ON a.activity_id = ta.activity_id
	WHERE ta.teacher_id = ANY($1)
	ORDER BY ta.id`

type teacherSlotRow struct {
	ID              int64          `db:"id"`
	TeacherID       int64          `db:"teacher_id"`
	Time            string         `db:"time"`
	Days            pq.StringArray `db:"days"`
	ActivityID      sql.NullInt64  `db:"activity_id"`
	Title           sql.NullString `db:"title"`
	Description     sql.NullString `db:"description"`
	ShortDesc       sql.NullString `db:"short_desc"`
	Images          pq.StringArray `db:"images"`
	Highlighted     sql.NullBool   `db:"highlighted"`
	DifficultyLevel sql.NullInt64  `db:"difficulty_level"`
	IconID          sql.NullInt64  `db:"icon_id"`
}

// TeacherQueryRepository loads teachers with their teaching slots and activities.
type TeacherQueryRepository struct {
	db       *sqlx.DB
	validate *validator.Validate
	observer queryObserver
	logger   *zap.Logger
}

// NewTeacherQueryRepository constructs a TeacherQueryRepository. observer and logger may be nil.
func NewTeacherQueryRepository(db *sqlx.DB, validate *validator.Validate, observer queryObserver, logger *zap.Logger) *TeacherQueryRepository {
	if validate == nil {
		validate = validator.New()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherQueryRepository{db: db, validate: validate, observer: observer, logger: logger}
}

// teacherListQuery treats "highlighted" as teaching at least one highlighted activity.
func teacherListQuery(filter models.Filter) string {
	query := teacherSelect
	if filter.HighlightedOnly {
		query += teacherHighlightedClause
	}
	return query + " ORDER BY teacher_id"
}

// ListTeachers returns raw teacher records matching the filter.
func (r *TeacherQueryRepository) ListTeachers(ctx context.Context, filter models.Filter) ([]models.RawTeacherRecord, error) {
	started := time.Now()
	var rows []teacherRow
	if err := r.db.SelectContext(ctx, &rows, teacherListQuery(filter)); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	observe(r.observer, "teachers.list", started)

	records, err := r.attachSlots(ctx, rows)
	if err != nil {
		return nil, err
	}
	return keepValid(ctx, r.filter(), records, func(rec models.RawTeacherRecord) int64 { return rec.TeacherID }), nil
}

// GetTeacher returns one raw teacher record, or nil when none matches.
func (r *TeacherQueryRepository) GetTeacher(ctx context.Context, id int64) (*models.RawTeacherRecord, error) {
	started := time.Now()
	var row teacherRow
	if err := r.db.GetContext(ctx, &row, teacherSelect+" WHERE teacher_id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get teacher %d: %w", id, err)
	}
	observe(r.observer, "teachers.get", started)

	records, err := r.attachSlots(ctx, []teacherRow{row})
	if err != nil {
		return nil, err
	}
	if err := validateRecord(ctx, r.validate, records[0], "malformed teacher record"); err != nil {
		return nil, err
	}
	return &records[0], nil
}

func (r *TeacherQueryRepository) filter() recordFilter {
	return recordFilter{kind: "teacher", validate: r.validate, observer: r.observer, logger: r.logger}
}

func (r *TeacherQueryRepository) attachSlots(ctx context.Context, rows []teacherRow) ([]models.RawTeacherRecord, error) {
	records := make([]models.RawTeacherRecord, len(rows))
	if len(rows) == 0 {
		return records, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64][]int, len(rows))
	for i, row := range rows {
		records[i] = models.RawTeacherRecord{
			TeacherID: row.TeacherID,
			Name:      row.Name,
			Surname:   row.Surname,
			PhotoURL:  row.PhotoURL,
			ShortCV:   row.ShortCV,
			Phone:     row.Phone,
			Email:     row.Email,
		}
		ids = append(ids, row.TeacherID)
		index[row.TeacherID] = append(index[row.TeacherID], i)
	}

	started := time.Now()
	var slots []teacherSlotRow
	if err := r.db.SelectContext(ctx, &slots, teacherSlotsQuery, pq.Array(uniqueIDs(ids))); err != nil {
		return nil, fmt.Errorf("list teacher slots: %w", err)
	}
	observe(r.observer, "teachers.slots", started)

	for _, slot := range slots {
		raw := models.RawTeacherSlot{
			ID:   slot.ID,
			Time: slot.Time,
			Days: []string(slot.Days),
		}
		if slot.ActivityID.Valid {
			raw.Activity = &models.RawActivitySummary{
				ActivityID:      slot.ActivityID.Int64,
				Title:           slot.Title.String,
				Description:     slot.Description.String,
				ShortDesc:       slot.ShortDesc.String,
				Images:          []string(slot.Images),
				Highlighted:     slot.Highlighted.Bool,
				DifficultyLevel: nullableInt(slot.DifficultyLevel),
				IconID:          nullableInt(slot.IconID),
			}
		}
		for _, i := range index[slot.TeacherID] {
			records[i].TeacherActivities = append(records[i].TeacherActivities, raw)
		}
	}
	return records, nil
}

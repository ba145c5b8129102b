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

const activitySelect = `SELECT activity_id, COALESCE(title, '') AS title, COALESCE(description, '') AS description, COALESCE(short_desc, '') AS short_desc, images, COALESCE(highlighted, FALSE) AS highlighted, difficulty_level, icon_id FROM activities`

const activitySlotsQuery = `SELECT ta.id, ta.activity_id, COALESCE(ta."time", '') AS time, ta.days, t.teacher_id, t.name, t.surname, t.email, t.phone
	FROM teacher_activities ta
	LEFT JOIN teachers t ON t.teacher_id = ta.teacher_id
	WHERE ta.activity_id = ANY($1)
	ORDER BY ta.id`

type activitySlotRow struct {
	ID         int64          `db:"id"`
	ActivityID int64          `db:"activity_id"`
	Time       string         `db:"time"`
	Days       pq.StringArray `db:"days"`
	TeacherID  sql.NullInt64  `db:"teacher_id"`
	Name       sql.NullString `db:"name"`
	Surname    sql.NullString `db:"surname"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullInt64  `db:"phone"`
}

// ActivityQueryRepository loads activities with their teaching slots and teachers.
type ActivityQueryRepository struct {
	db       *sqlx.DB
	validate *validator.Validate
	observer queryObserver
	logger   *zap.Logger
}

// NewActivityQueryRepository constructs an ActivityQueryRepository. observer and logger may be nil.
func NewActivityQueryRepository(db *sqlx.DB, validate *validator.Validate, observer queryObserver, logger *zap.Logger) *ActivityQueryRepository {
	if validate == nil {
		validate = validator.New()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityQueryRepository{db: db, validate: validate, observer: observer, logger: logger}
}

func activityListQuery(filter models.Filter) string {
	query := activitySelect
	if filter.HighlightedOnly {
		query += " WHERE highlighted = TRUE"
	}
	return query + " ORDER BY activity_id"
}

// ListActivities returns raw activity records matching the filter.
func (r *ActivityQueryRepository) ListActivities(ctx context.Context, filter models.Filter) ([]models.RawActivityRecord, error) {
	started := time.Now()
	var rows []activityRow
	if err := r.db.SelectContext(ctx, &rows, activityListQuery(filter)); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	observe(r.observer, "activities.list", started)

	records, err := r.attachSlots(ctx, rows)
	if err != nil {
		return nil, err
	}
	return keepValid(ctx, r.filter(), records, func(rec models.RawActivityRecord) int64 { return rec.ActivityID }), nil
}

// GetActivity returns one raw activity record, or nil when none matches.
func (r *ActivityQueryRepository) GetActivity(ctx context.Context, id int64) (*models.RawActivityRecord, error) {
	started := time.Now()
	var row activityRow
	if err := r.db.GetContext(ctx, &row, activitySelect+" WHERE activity_id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity %d: %w", id, err)
	}
	observe(r.observer, "activities.get", started)

	records, err := r.attachSlots(ctx, []activityRow{row})
	if err != nil {
		return nil, err
	}
	if err := validateRecord(ctx, r.validate, records[0], "malformed activity record"); err != nil {
		return nil, err
	}
	return &records[0], nil
}

func (r *ActivityQueryRepository) filter() recordFilter {
	return recordFilter{kind: "activity", validate: r.validate, observer: r.observer, logger: r.logger}
}

func (r *ActivityQueryRepository) attachSlots(ctx context.Context, rows []activityRow) ([]models.RawActivityRecord, error) {
	records := make([]models.RawActivityRecord, len(rows))
	if len(rows) == 0 {
		return records, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64][]int, len(rows))
	for i, row := range rows {
		records[i] = models.RawActivityRecord{
			ActivityID:      row.ActivityID,
			Title:           row.Title,
			Description:     row.Description,
			ShortDesc:       row.ShortDesc,
			Images:          []string(row.Images),
			Highlighted:     row.Highlighted,
			DifficultyLevel: nullableInt(row.DifficultyLevel),
			IconID:          nullableInt(row.IconID),
		}
		ids = append(ids, row.ActivityID)
		index[row.ActivityID] = append(index[row.ActivityID], i)
	}

	started := time.Now()
	var slots []activitySlotRow
	if err := r.db.SelectContext(ctx, &slots, activitySlotsQuery, pq.Array(uniqueIDs(ids))); err != nil {
		return nil, fmt.Errorf("list activity slots: %w", err)
	}
	observe(r.observer, "activities.slots", started)

	for _, slot := range slots {
		raw := models.RawActivitySlot{
			ID:   slot.ID,
			Time: slot.Time,
			Days: []string(slot.Days),
		}
		if slot.TeacherID.Valid {
			raw.Teacher = &models.RawTeacherSummary{
				TeacherID: slot.TeacherID.Int64,
				Name:      slot.Name.String,
				Surname:   slot.Surname.String,
				Email:     slot.Email.String,
				Phone:     slot.Phone.Int64,
			}
		}
		for _, i := range index[slot.ActivityID] {
			records[i].TeacherActivities = append(records[i].TeacherActivities, raw)
		}
	}
	return records, nil
}

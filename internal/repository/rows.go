package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
)

// queryObserver receives query timings and dropped rows; *service.MetricsService satisfies it.
type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
	RecordRejectedRecord(kind string)
}

type nopObserver struct{}

func (nopObserver) ObserveDBQuery(string, time.Duration) {}

func (nopObserver) RecordRejectedRecord(string) {}

func observe(obs queryObserver, label string, started time.Time) {
	obs.ObserveDBQuery(label, time.Since(started))
}

// activityRow mirrors an activities row.
type activityRow struct {
	ActivityID      int64          `db:"activity_id"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	ShortDesc       string         `db:"short_desc"`
	Images          pq.StringArray `db:"images"`
	Highlighted     bool           `db:"highlighted"`
	DifficultyLevel sql.NullInt64  `db:"difficulty_level"`
	IconID          sql.NullInt64  `db:"icon_id"`
}

type teacherRow struct {
	TeacherID int64  `db:"teacher_id"`
	Name      string `db:"name"`
	Surname   string `db:"surname"`
	PhotoURL  string `db:"photo_url"`
	ShortCV   string `db:"short_cv"`
	Phone     int64  `db:"phone"`
	Email     string `db:"email"`
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

// validateRecord rejects a single record missing its required shape.
func validateRecord[T any](ctx context.Context, validate *validator.Validate, record T, message string) error {
	if err := validate.StructCtx(ctx, record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrQueryFailed.Code, appErrors.ErrQueryFailed.Status, message)
	}
	return nil
}

// recordFilter drops list rows missing their required shape. One bad row never
// fails the list; it is logged and counted instead.
type recordFilter struct {
	kind     string
	validate *validator.Validate
	observer queryObserver
	logger   *zap.Logger
}

func keepValid[T any](ctx context.Context, f recordFilter, records []T, idOf func(T) int64) []T {
	kept := records[:0]
	for _, record := range records {
		if err := f.validate.StructCtx(ctx, record); err != nil {
			f.observer.RecordRejectedRecord(f.kind)
			f.logger.Warn("dropping malformed catalog record",
				zap.String("kind", f.kind),
				zap.Int64("id", idOf(record)),
				zap.Error(err))
			continue
		}
		kept = append(kept, record)
	}
	return kept
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

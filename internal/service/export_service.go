package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/studio-catalog/internal/models"
	"github.com/noah-isme/studio-catalog/pkg/export"
	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
)

// Export formats understood by ExportService.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var timetableHeaders = []string{"Activity", "Level", "Time", "Days", "Professor", "Contact"}

type timetableRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportedFile is a rendered timetable ready to be streamed.
type ExportedFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the activity timetable into downloadable documents.
type ExportService struct {
	renderers map[string]timetableRenderer
	title     string
}

// NewExportService constructs an ExportService with CSV and PDF renderers.
func NewExportService(title string) *ExportService {
	if strings.TrimSpace(title) == "" {
		title = "Class timetable"
	}
	return &ExportService{
		renderers: map[string]timetableRenderer{
			FormatCSV: export.NewCSVExporter(),
			FormatPDF: export.NewPDFExporter(),
		},
		title: title,
	}
}

// Timetable flattens activities into one row per schedule. Activities without
// schedules still get a row so they show up in the document.
func Timetable(activities []models.Activity) export.Dataset {
	rows := make([]map[string]string, 0, len(activities))
	for _, activity := range activities {
		base := map[string]string{
			"Activity": activity.Title,
			"Level":    models.DifficultyLabel(activity.DifficultyLevel),
		}
		if len(activity.Schedules) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, schedule := range activity.Schedules {
			row := map[string]string{
				"Activity": base["Activity"],
				"Level":    base["Level"],
				"Time":     schedule.Time,
				"Days":     strings.Join(schedule.Days, ", "),
			}
			if schedule.Professor != nil {
				row["Professor"] = schedule.Professor.Name
				row["Contact"] = schedule.Professor.Email
			}
			rows = append(rows, row)
		}
	}
	return export.Dataset{Headers: timetableHeaders, Rows: rows}
}

// Render produces the timetable in the requested format.
func (s *ExportService) Render(activities []models.Activity, format string) (*ExportedFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	payload, err := renderer.Render(Timetable(activities), s.title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable")
	}
	return &ExportedFile{
		Filename:    "timetable." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

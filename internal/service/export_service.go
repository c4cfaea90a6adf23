package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
	"github.com/noah-isme/sma-adp-views/pkg/export"
)

// ExportRequest selects one related table of a rendered view.
type ExportRequest struct {
	Resource Resource      `validate:"required,oneof=departments subjects faculty"`
	ID       string        `validate:"required,max=64,printascii"`
	Format   export.Format `validate:"required,oneof=csv pdf"`
	Table    string        `validate:"omitempty,oneof=subjects classes"`
}

// ExportResult is a rendered document ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

type pageRenderer interface {
	Department(ctx context.Context, id string) (viewmodel.DepartmentPage, bool, error)
	Subject(ctx context.Context, id string) (viewmodel.SubjectPage, bool, error)
	Faculty(ctx context.Context, id string) (viewmodel.FacultyPage, bool, error)
}

// ExportService renders the related tables of detail views as CSV or PDF documents.
type ExportService struct {
	views     pageRenderer
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(views pageRenderer, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ExportService{views: views, metrics: metrics, validator: validate, logger: logger}
}

// Export renders the requested table. Pages that are not ready yield the same error the view would.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}

	table, err := s.selectTable(ctx, req)
	if err != nil {
		return nil, err
	}

	exporter, err := export.ForFormat(req.Format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported export format")
	}
	body, err := exporter.Render(TableDataset(table))
	if err != nil {
		s.logger.Error("export render failed", zap.String("resource", string(req.Resource)), zap.String("id", req.ID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.metrics.ObserveExport(string(req.Resource), string(req.Format))
	return &ExportResult{
		Filename:    exportFilename(req, table, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}

func (s *ExportService) selectTable(ctx context.Context, req ExportRequest) (viewmodel.Table, error) {
	switch req.Resource {
	case ResourceDepartments:
		page, _, err := s.views.Department(ctx, req.ID)
		if err != nil {
			return viewmodel.Table{}, err
		}
		if err := StateError(page.Header); err != nil {
			return viewmodel.Table{}, err
		}
		if req.Table == "classes" {
			return page.Department.Classes, nil
		}
		return page.Department.Subjects, nil
	case ResourceSubjects:
		if req.Table == "subjects" {
			return viewmodel.Table{}, appErrors.Clone(appErrors.ErrValidation, "subjects have no subjects table")
		}
		page, _, err := s.views.Subject(ctx, req.ID)
		if err != nil {
			return viewmodel.Table{}, err
		}
		if err := StateError(page.Header); err != nil {
			return viewmodel.Table{}, err
		}
		return page.Subject.Classes, nil
	default:
		page, _, err := s.views.Faculty(ctx, req.ID)
		if err != nil {
			return viewmodel.Table{}, err
		}
		if err := StateError(page.Header); err != nil {
			return viewmodel.Table{}, err
		}
		if page.Profile.RelatedTable == nil {
			return viewmodel.Table{}, appErrors.Clone(appErrors.ErrValidation, "profile has no related table")
		}
		return *page.Profile.RelatedTable, nil
	}
}

// TableDataset flattens a view table into export rows. Subtext is appended in parentheses and a
// sentinel row becomes the dataset note.
func TableDataset(t viewmodel.Table) export.Dataset {
	data := export.Dataset{Title: t.Title, Headers: t.Columns, Rows: make([][]string, 0, len(t.Rows))}
	if note, ok := t.Sentinel(); ok {
		data.Note = note
		return data
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i := range record {
			if i >= len(row.Cells) {
				break
			}
			cell := row.Cells[i]
			record[i] = cell.Text
			if cell.Subtext != "" {
				record[i] += " (" + cell.Subtext + ")"
			}
		}
		data.Rows = append(data.Rows, record)
	}
	return data
}

func exportFilename(req ExportRequest, t viewmodel.Table, ext string) string {
	table := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(t.Title), " ", "-"))
	if table == "" {
		table = "table"
	}
	return string(req.Resource) + "-" + safeName(req.ID) + "-" + safeName(table) + "." + ext
}

func safeName(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, v)
}

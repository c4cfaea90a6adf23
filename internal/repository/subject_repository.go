package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// SubjectRepository loads subject detail aggregates.
type SubjectRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewSubjectRepository builds a subject repository.
func NewSubjectRepository(db *sqlx.DB, observer QueryObserver) *SubjectRepository {
	return &SubjectRepository{db: db, observer: observerOrNop(observer)}
}

type subjectRow struct {
	models.Subject
	DepartmentID   *string `db:"department_id"`
	DepartmentName *string `db:"department_name"`
}

// FindDetails returns the subject, the classes teaching it and its totals.
// The three queries run concurrently; sql.ErrNoRows is returned when the subject does not exist.
func (r *SubjectRepository) FindDetails(ctx context.Context, id string) (*models.SubjectDetails, error) {
	defer track(r.observer, "subject_details")()

	const subjectQuery = `SELECT s.id, s.name, s.code, s.description, d.id AS department_id, d.name AS department_name
FROM subjects s LEFT JOIN departments d ON d.id = s.department_id WHERE s.id = $1`
	const totalsQuery = `SELECT COUNT(*) AS classes FROM classes WHERE subject_id = $1`

	var (
		subject subjectRow
		rows    []classRow
		totals  models.SubjectTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.GetContext(gctx, &subject, subjectQuery, id)
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &rows, classSelect+" WHERE c.subject_id = $1 ORDER BY c.name", id); err != nil {
			return fmt.Errorf("list subject classes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.GetContext(gctx, &totals, totalsQuery, id); err != nil {
			return fmt.Errorf("count subject classes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := &models.SubjectDetails{
		Subject: subject.Subject,
		Classes: classRecords(rows),
		Totals:  totals,
	}
	if subject.DepartmentID != nil {
		details.Subject.Department = &models.Department{ID: *subject.DepartmentID, Name: deref(subject.DepartmentName)}
	}
	return details, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// DepartmentRepository loads department detail aggregates.
type DepartmentRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewDepartmentRepository builds a department repository.
func NewDepartmentRepository(db *sqlx.DB, observer QueryObserver) *DepartmentRepository {
	return &DepartmentRepository{db: db, observer: observerOrNop(observer)}
}

const (
	departmentQuery         = `SELECT id, name, description FROM departments WHERE id = $1`
	departmentSubjectsQuery = `SELECT s.id, s.name, s.code, s.description, COUNT(c.id) AS total_classes
FROM subjects s LEFT JOIN classes c ON c.subject_id = s.id
WHERE s.department_id = $1 GROUP BY s.id, s.name, s.code, s.description ORDER BY s.name`
	departmentStudentsQuery = `SELECT DISTINCT u.id, u.name, u.email, u.image
FROM enrollments e JOIN classes c ON c.id = e.class_id JOIN users u ON u.id = e.student_id
WHERE c.department_id = $1 ORDER BY u.name`
	departmentTotalsQuery = `SELECT
	(SELECT COUNT(*) FROM subjects WHERE department_id = $1) AS subjects,
	(SELECT COUNT(*) FROM classes WHERE department_id = $1) AS classes,
	(SELECT COUNT(DISTINCT e.student_id) FROM enrollments e JOIN classes c ON c.id = e.class_id WHERE c.department_id = $1) AS enrolled_students`
)

// FindDetails returns the department with its subjects, classes, enrolled students and totals.
// sql.ErrNoRows is returned when the department does not exist.
func (r *DepartmentRepository) FindDetails(ctx context.Context, id string) (*models.DepartmentDetails, error) {
	defer track(r.observer, "department_details")()

	details := &models.DepartmentDetails{
		Subjects:         []models.DepartmentSubject{},
		EnrolledStudents: []models.UserRef{},
	}
	var classes []classRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.GetContext(gctx, &details.Department, departmentQuery, id)
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &details.Subjects, departmentSubjectsQuery, id); err != nil {
			return fmt.Errorf("list department subjects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &classes, classSelect+" WHERE c.department_id = $1 ORDER BY c.name", id); err != nil {
			return fmt.Errorf("list department classes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &details.EnrolledStudents, departmentStudentsQuery, id); err != nil {
			return fmt.Errorf("list department students: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.GetContext(gctx, &details.Totals, departmentTotalsQuery, id); err != nil {
			return fmt.Errorf("count department totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details.Classes = classRecords(classes)
	return details, nil
}

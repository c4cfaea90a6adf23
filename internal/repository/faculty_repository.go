package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// FacultyRepository loads the role dependent profile aggregate for a user.
type FacultyRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewFacultyRepository builds a faculty repository.
func NewFacultyRepository(db *sqlx.DB, observer QueryObserver) *FacultyRepository {
	return &FacultyRepository{db: db, observer: observerOrNop(observer)}
}

const (
	facultyUserQuery = `SELECT id, name, email, image, role FROM users WHERE id = $1`

	teacherSubjectsQuery = `SELECT DISTINCT s.id, s.name, s.code, s.description
FROM classes c JOIN subjects s ON s.id = c.subject_id WHERE c.teacher_id = $1 ORDER BY s.name`
	teacherDepartmentsQuery = `SELECT DISTINCT d.id, d.name, d.description
FROM classes c JOIN departments d ON d.id = c.department_id WHERE c.teacher_id = $1 ORDER BY d.name`
	teacherTotalsQuery = `SELECT COUNT(DISTINCT c.id) AS classes, COUNT(DISTINCT c.subject_id) AS subjects, COUNT(DISTINCT c.department_id) AS departments
FROM classes c WHERE c.teacher_id = $1`

	studentEnrollmentsQuery = `SELECT e.id,
	c.id AS class_id, c.name AS class_name,
	s.id AS subject_id, s.name AS subject_name, s.code AS subject_code,
	d.id AS department_id, d.name AS department_name,
	t.id AS teacher_id, t.name AS teacher_name, t.email AS teacher_email, t.image AS teacher_image
FROM enrollments e
JOIN classes c ON c.id = e.class_id
LEFT JOIN subjects s ON s.id = c.subject_id
LEFT JOIN departments d ON d.id = c.department_id
LEFT JOIN users t ON t.id = c.teacher_id
WHERE e.student_id = $1 ORDER BY c.name`
	studentSubjectsQuery = `SELECT DISTINCT s.id, s.name, s.code, s.description
FROM enrollments e JOIN classes c ON c.id = e.class_id JOIN subjects s ON s.id = c.subject_id
WHERE e.student_id = $1 ORDER BY s.name`
	studentTotalsQuery = `SELECT COUNT(DISTINCT e.id) AS enrollments, COUNT(DISTINCT e.class_id) AS classes, COUNT(DISTINCT c.subject_id) AS subjects
FROM enrollments e JOIN classes c ON c.id = e.class_id WHERE e.student_id = $1`
)

type enrollmentRow struct {
	ID             string  `db:"id"`
	ClassID        string  `db:"class_id"`
	ClassName      string  `db:"class_name"`
	SubjectID      *string `db:"subject_id"`
	SubjectName    *string `db:"subject_name"`
	SubjectCode    *string `db:"subject_code"`
	DepartmentID   *string `db:"department_id"`
	DepartmentName *string `db:"department_name"`
	TeacherID      *string `db:"teacher_id"`
	TeacherName    *string `db:"teacher_name"`
	TeacherEmail   *string `db:"teacher_email"`
	TeacherImage   *string `db:"teacher_image"`
}

func (r enrollmentRow) record() models.EnrollmentRecord {
	rec := models.EnrollmentRecord{
		ID:    r.ID,
		Class: &models.ClassRef{ID: r.ClassID, Name: r.ClassName},
	}
	if r.SubjectID != nil {
		rec.Subject = &models.Subject{ID: *r.SubjectID, Name: deref(r.SubjectName), Code: deref(r.SubjectCode)}
	}
	if r.DepartmentID != nil {
		rec.Department = &models.Department{ID: *r.DepartmentID, Name: deref(r.DepartmentName)}
	}
	if r.TeacherID != nil {
		rec.Teacher = &models.UserRef{ID: *r.TeacherID, Name: deref(r.TeacherName), Email: r.TeacherEmail, Image: r.TeacherImage}
	}
	return rec
}

type teacherTotalsRow struct {
	Classes     int `db:"classes"`
	Subjects    int `db:"subjects"`
	Departments int `db:"departments"`
}

type studentTotalsRow struct {
	Enrollments int `db:"enrollments"`
	Classes     int `db:"classes"`
	Subjects    int `db:"subjects"`
}

// FindProfile returns the user together with the role specific fields.
// Teachers get classes, subjects, departments and their totals; students get enrollments,
// enrolled classes, subjects and their totals. Any other role gets the bare user.
// sql.ErrNoRows is returned when the user does not exist.
func (r *FacultyRepository) FindProfile(ctx context.Context, id string) (*models.FacultyPayload, error) {
	defer track(r.observer, "faculty_profile")()

	payload := &models.FacultyPayload{}
	if err := r.db.GetContext(ctx, &payload.User, facultyUserQuery, id); err != nil {
		return nil, err
	}

	switch payload.User.Role {
	case models.RoleTeacher:
		if err := r.loadTeacher(ctx, payload); err != nil {
			return nil, err
		}
	case models.RoleStudent:
		if err := r.loadStudent(ctx, payload); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

func (r *FacultyRepository) loadTeacher(ctx context.Context, payload *models.FacultyPayload) error {
	id := payload.User.ID
	var (
		classes []classRow
		totals  teacherTotalsRow
	)
	payload.Subjects = []models.Subject{}
	payload.Departments = []models.Department{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &classes, classSelect+" WHERE c.teacher_id = $1 ORDER BY c.name", id); err != nil {
			return fmt.Errorf("list teacher classes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &payload.Subjects, teacherSubjectsQuery, id); err != nil {
			return fmt.Errorf("list teacher subjects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &payload.Departments, teacherDepartmentsQuery, id); err != nil {
			return fmt.Errorf("list teacher departments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.GetContext(gctx, &totals, teacherTotalsQuery, id); err != nil {
			return fmt.Errorf("count teacher totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	payload.Classes = classRecords(classes)
	payload.Totals = &models.FacultyTotals{
		Classes:     intPtr(totals.Classes),
		Subjects:    intPtr(totals.Subjects),
		Departments: intPtr(totals.Departments),
	}
	return nil
}

func (r *FacultyRepository) loadStudent(ctx context.Context, payload *models.FacultyPayload) error {
	id := payload.User.ID
	var (
		enrollments []enrollmentRow
		classes     []classRow
		totals      studentTotalsRow
	)
	payload.Subjects = []models.Subject{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &enrollments, studentEnrollmentsQuery, id); err != nil {
			return fmt.Errorf("list student enrollments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := classSelect + " WHERE c.id IN (SELECT class_id FROM enrollments WHERE student_id = $1) ORDER BY c.name"
		if err := r.db.SelectContext(gctx, &classes, query, id); err != nil {
			return fmt.Errorf("list student classes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.SelectContext(gctx, &payload.Subjects, studentSubjectsQuery, id); err != nil {
			return fmt.Errorf("list student subjects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.db.GetContext(gctx, &totals, studentTotalsQuery, id); err != nil {
			return fmt.Errorf("count student totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	payload.Enrollments = make([]models.EnrollmentRecord, 0, len(enrollments))
	for _, row := range enrollments {
		payload.Enrollments = append(payload.Enrollments, row.record())
	}
	payload.Classes = classRecords(classes)
	payload.Totals = &models.FacultyTotals{
		Enrollments: intPtr(totals.Enrollments),
		Classes:     intPtr(totals.Classes),
		Subjects:    intPtr(totals.Subjects),
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}

package repository

import (
	"github.com/noah-isme/sma-adp-views/internal/models"
)

// classSelect loads a class with its teacher, subject (and the subject's department) and department.
// Every joined column is nullable.
const classSelect = `SELECT c.id, c.name, c.description, c.capacity, c.status, c.banner_url, c.banner_cld_pub_id,
	t.id AS teacher_id, t.name AS teacher_name, t.email AS teacher_email, t.image AS teacher_image,
	s.id AS subject_id, s.name AS subject_name, s.code AS subject_code, s.description AS subject_description,
	sd.id AS subject_department_id, sd.name AS subject_department_name,
	d.id AS department_id, d.name AS department_name, d.description AS department_description
FROM classes c
LEFT JOIN users t ON t.id = c.teacher_id
LEFT JOIN subjects s ON s.id = c.subject_id
LEFT JOIN departments sd ON sd.id = s.department_id
LEFT JOIN departments d ON d.id = c.department_id`

type classRow struct {
	ID                    string  `db:"id"`
	Name                  string  `db:"name"`
	Description           *string `db:"description"`
	Capacity              *int    `db:"capacity"`
	Status                *string `db:"status"`
	BannerURL             *string `db:"banner_url"`
	BannerCldPubID        *string `db:"banner_cld_pub_id"`
	TeacherID             *string `db:"teacher_id"`
	TeacherName           *string `db:"teacher_name"`
	TeacherEmail          *string `db:"teacher_email"`
	TeacherImage          *string `db:"teacher_image"`
	SubjectID             *string `db:"subject_id"`
	SubjectName           *string `db:"subject_name"`
	SubjectCode           *string `db:"subject_code"`
	SubjectDescription    *string `db:"subject_description"`
	SubjectDepartmentID   *string `db:"subject_department_id"`
	SubjectDepartmentName *string `db:"subject_department_name"`
	DepartmentID          *string `db:"department_id"`
	DepartmentName        *string `db:"department_name"`
	DepartmentDescription *string `db:"department_description"`
}

func (r classRow) record() models.ClassRecord {
	rec := models.ClassRecord{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Capacity:       r.Capacity,
		BannerURL:      r.BannerURL,
		BannerCldPubID: r.BannerCldPubID,
	}
	if r.Status != nil {
		rec.Status = models.ClassStatus(*r.Status)
	}
	if r.TeacherID != nil {
		rec.Teacher = &models.UserRef{
			ID:    *r.TeacherID,
			Name:  deref(r.TeacherName),
			Email: r.TeacherEmail,
			Image: r.TeacherImage,
		}
	}
	if r.SubjectID != nil {
		rec.Subject = &models.Subject{
			ID:          *r.SubjectID,
			Name:        deref(r.SubjectName),
			Code:        deref(r.SubjectCode),
			Description: r.SubjectDescription,
		}
		if r.SubjectDepartmentID != nil {
			rec.Subject.Department = &models.Department{ID: *r.SubjectDepartmentID, Name: deref(r.SubjectDepartmentName)}
		}
	}
	if r.DepartmentID != nil {
		rec.Department = &models.Department{
			ID:          *r.DepartmentID,
			Name:        deref(r.DepartmentName),
			Description: r.DepartmentDescription,
		}
	}
	return rec
}

// classRecords converts rows and always returns a non-nil slice so an empty
// result stays distinguishable from an absent one.
func classRecords(rows []classRow) []models.ClassRecord {
	out := make([]models.ClassRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.record())
	}
	return out
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

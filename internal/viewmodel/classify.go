package viewmodel

import "github.com/noah-isme/sma-adp-views/internal/models"

// Variant is the discriminant assigned to a faculty payload.
type Variant string

const (
	VariantTeacher Variant = "teacher"
	VariantStudent Variant = "student"
	VariantBare    Variant = "bare"
)

// FacultyProfile is a discriminated faculty payload. The concrete types are TeacherProfile,
// StudentProfile and BareProfile; no other type implements it.
type FacultyProfile interface {
	Kind() Variant
	Profile() models.User
	isFacultyProfile()
}

// TeacherTotals are the counters of a teacher aggregate.
type TeacherTotals struct {
	Classes     int
	Subjects    int
	Departments int
}

// TeacherProfile is a user with the classes they teach and the subjects and departments behind them.
type TeacherProfile struct {
	User        models.User
	Classes     []models.ClassRecord
	Subjects    []models.Subject
	Departments []models.Department
	Totals      TeacherTotals
}

// StudentTotals are the counters of a student aggregate.
type StudentTotals struct {
	Enrollments int
	Classes     int
	Subjects    int
}

// StudentProfile is a user with their enrollments.
type StudentProfile struct {
	User        models.User
	Enrollments []models.EnrollmentRecord
	Classes     []models.ClassRef
	Subjects    []models.Subject
	Totals      StudentTotals
}

// BareProfile is a user without any aggregate data.
type BareProfile struct {
	User models.User
}

func (TeacherProfile) Kind() Variant { return VariantTeacher }
func (StudentProfile) Kind() Variant { return VariantStudent }
func (BareProfile) Kind() Variant    { return VariantBare }

func (p TeacherProfile) Profile() models.User { return p.User }
func (p StudentProfile) Profile() models.User { return p.User }
func (p BareProfile) Profile() models.User    { return p.User }

func (TeacherProfile) isFacultyProfile() {}
func (StudentProfile) isFacultyProfile() {}
func (BareProfile) isFacultyProfile()    {}

// Classify returns the variant of a faculty payload.
func Classify(p models.FacultyPayload) Variant {
	return Discriminate(p).Kind()
}

// Discriminate converts a faculty payload into its variant. The role and the structural
// fields must agree: a teacher role without the teacher field set, or a student role without
// the student field set, falls back to BareProfile.
func Discriminate(p models.FacultyPayload) FacultyProfile {
	switch p.User.Role {
	case models.RoleTeacher:
		if teacherShaped(p) {
			return TeacherProfile{
				User:        p.User,
				Classes:     p.Classes,
				Subjects:    p.Subjects,
				Departments: p.Departments,
				Totals: TeacherTotals{
					Classes:     *p.Totals.Classes,
					Subjects:    *p.Totals.Subjects,
					Departments: *p.Totals.Departments,
				},
			}
		}
	case models.RoleStudent:
		if studentShaped(p) {
			classes := make([]models.ClassRef, 0, len(p.Classes))
			for _, c := range p.Classes {
				classes = append(classes, models.ClassRef{ID: c.ID, Name: c.Name})
			}
			return StudentProfile{
				User:        p.User,
				Enrollments: p.Enrollments,
				Classes:     classes,
				Subjects:    p.Subjects,
				Totals: StudentTotals{
					Enrollments: *p.Totals.Enrollments,
					Classes:     intOr(p.Totals.Classes),
					Subjects:    intOr(p.Totals.Subjects),
				},
			}
		}
	}
	return BareProfile{User: p.User}
}

func teacherShaped(p models.FacultyPayload) bool {
	return p.Classes != nil &&
		p.Totals != nil &&
		p.Totals.Classes != nil &&
		p.Totals.Subjects != nil &&
		p.Totals.Departments != nil
}

func studentShaped(p models.FacultyPayload) bool {
	return p.Enrollments != nil && p.Totals != nil && p.Totals.Enrollments != nil
}

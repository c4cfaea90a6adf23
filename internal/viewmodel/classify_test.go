package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func teacherPayload() models.FacultyPayload {
	return models.FacultyPayload{
		User:        models.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com", Role: models.RoleTeacher},
		Classes:     []models.ClassRecord{{ID: "c1", Name: "Analytical Engines", Status: models.ClassStatusActive}},
		Subjects:    []models.Subject{{ID: "s1", Name: "Mathematics", Code: "MATH"}},
		Departments: []models.Department{{ID: "d1", Name: "Science"}},
		Totals:      &models.FacultyTotals{Classes: intPtr(1), Subjects: intPtr(1), Departments: intPtr(1)},
	}
}

func studentPayload() models.FacultyPayload {
	return models.FacultyPayload{
		User:        models.User{ID: "u2", Name: "Plato", Email: "plato@example.com", Role: models.RoleStudent},
		Enrollments: []models.EnrollmentRecord{{ID: "e1", Class: &models.ClassRef{ID: "c1", Name: "Logic"}}},
		Classes:     []models.ClassRecord{{ID: "c1", Name: "Logic"}},
		Subjects:    []models.Subject{{ID: "s1", Name: "Philosophy", Code: "PHIL"}},
		Totals:      &models.FacultyTotals{Enrollments: intPtr(1), Classes: intPtr(1), Subjects: intPtr(1)},
	}
}

func TestClassifyTeacher(t *testing.T) {
	assert.Equal(t, VariantTeacher, Classify(teacherPayload()))
}

func TestClassifyStudent(t *testing.T) {
	assert.Equal(t, VariantStudent, Classify(studentPayload()))
}

func TestClassifyEmptyListsStillVerifyShape(t *testing.T) {
	p := teacherPayload()
	p.Classes = []models.ClassRecord{}
	assert.Equal(t, VariantTeacher, Classify(p))
}

func TestClassifyFallsBackToBare(t *testing.T) {
	missingDepartments := teacherPayload()
	missingDepartments.Totals.Departments = nil

	missingClasses := teacherPayload()
	missingClasses.Classes = nil

	studentWithoutEnrollments := studentPayload()
	studentWithoutEnrollments.Enrollments = nil

	studentWithoutTotals := studentPayload()
	studentWithoutTotals.Totals = nil

	teacherShapedStudent := teacherPayload()
	teacherShapedStudent.User.Role = models.RoleStudent

	studentShapedTeacher := studentPayload()
	studentShapedTeacher.User.Role = models.RoleTeacher

	adminWithAggregates := teacherPayload()
	adminWithAggregates.User.Role = models.RoleAdmin

	cases := map[string]models.FacultyPayload{
		"teacher missing totals.departments": missingDepartments,
		"teacher missing classes":            missingClasses,
		"student missing enrollments":        studentWithoutEnrollments,
		"student missing totals":             studentWithoutTotals,
		"student role teacher shape":         teacherShapedStudent,
		"teacher role student shape":         studentShapedTeacher,
		"admin role":                         adminWithAggregates,
		"user only":                          {User: models.User{ID: "u3", Name: "Root", Role: models.RoleAdmin}},
		"zero payload":                       {},
		"unknown role":                       {User: models.User{Role: "librarian"}},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var got Variant
			require.NotPanics(t, func() { got = Classify(payload) })
			assert.Equal(t, VariantBare, got)
		})
	}
}

func TestDiscriminateCarriesVariantFields(t *testing.T) {
	fp := Discriminate(studentPayload())
	student, ok := fp.(StudentProfile)
	require.True(t, ok)
	assert.Equal(t, 1, student.Totals.Enrollments)
	assert.Equal(t, []models.ClassRef{{ID: "c1", Name: "Logic"}}, student.Classes)
	assert.Equal(t, "Plato", student.Profile().Name)
}

func TestDiscriminateStudentDefaultsOptionalTotals(t *testing.T) {
	p := studentPayload()
	p.Totals = &models.FacultyTotals{Enrollments: intPtr(4)}
	student, ok := Discriminate(p).(StudentProfile)
	require.True(t, ok)
	assert.Equal(t, StudentTotals{Enrollments: 4}, student.Totals)
}

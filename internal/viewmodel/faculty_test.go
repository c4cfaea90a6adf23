package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

func TestProjectFacultyTeacher(t *testing.T) {
	payload := teacherPayload()
	payload.Classes = append(payload.Classes, models.ClassRecord{
		ID:      "c2",
		Name:    "Difference Engines",
		Subject: &models.Subject{Name: "Mechanics", Department: &models.Department{Name: "Engineering"}},
	})
	payload.Totals.Classes = intPtr(12)

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	require.Equal(t, StateReady, page.State)
	assert.Equal(t, "Ada Lovelace", page.Title)
	profile := page.Profile
	require.NotNil(t, profile)
	assert.Equal(t, VariantTeacher, profile.Kind)
	assert.Equal(t, "AL", profile.Initials)
	assert.Equal(t, "teacher", profile.Role)
	assert.Equal(t, []Counter{
		{Label: "Classes", Value: 12},
		{Label: "Subjects", Value: 1},
		{Label: "Departments", Value: 1},
	}, profile.Counters)

	require.NotNil(t, profile.RelatedTable)
	table := profile.RelatedTable
	assert.Equal(t, []string{"Name", "Subject", "Department", "Status"}, table.Columns)
	require.Len(t, table.Rows, 2)
	first := table.Rows[0].Cells
	assert.Equal(t, Unassigned, first[1].Text)
	assert.Equal(t, Unassigned, first[2].Text)
	assert.Equal(t, Badge{Text: "active", Variant: BadgeDefault}, *first[3].Badge)
	second := table.Rows[1].Cells
	assert.Equal(t, "Mechanics", second[1].Text)
	assert.Equal(t, "Engineering", second[2].Text)
	assert.Equal(t, Badge{Text: "unknown", Variant: BadgeSecondary}, *second[3].Badge)
}

func TestProjectFacultyStudentTotalsAreNotDerivedFromLists(t *testing.T) {
	payload := models.FacultyPayload{
		User:        models.User{ID: "u2", Name: "Plato", Email: "plato@example.com", Role: models.RoleStudent},
		Enrollments: []models.EnrollmentRecord{},
		Totals:      &models.FacultyTotals{Enrollments: intPtr(3), Classes: intPtr(3), Subjects: intPtr(2)},
	}

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	profile := page.Profile
	require.NotNil(t, profile)
	assert.Equal(t, VariantStudent, profile.Kind)
	assert.Equal(t, "P", profile.Initials)
	assert.Equal(t, []Counter{
		{Label: "Enrollments", Value: 3},
		{Label: "Classes", Value: 3},
		{Label: "Subjects", Value: 2},
	}, profile.Counters)
	require.NotNil(t, profile.RelatedTable)
	require.Len(t, profile.RelatedTable.Rows, 1)
	text, ok := profile.RelatedTable.Sentinel()
	assert.True(t, ok)
	assert.Equal(t, "No enrollments found.", text)
	assert.Equal(t, 4, profile.RelatedTable.Rows[0].Cells[0].ColSpan)
}

func TestProjectFacultyStudentRows(t *testing.T) {
	payload := studentPayload()
	payload.Enrollments = []models.EnrollmentRecord{
		{
			ID:         "e1",
			Class:      &models.ClassRef{ID: "c1", Name: "Logic"},
			Subject:    &models.Subject{Name: "Philosophy"},
			Department: &models.Department{Name: "Humanities"},
			Teacher:    &models.UserRef{Name: "Socrates"},
		},
		{ID: "e2"},
	}

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	rows := page.Profile.RelatedTable.Rows
	require.Len(t, rows, 2)
	assert.Equal(t, []Cell{
		{Text: "Logic", Link: &Link{Path: "/classes/show/c1", Label: "Logic"}},
		{Text: "Philosophy"},
		{Text: "Humanities"},
		{Text: "Socrates", Subtext: NoEmail},
	}, rows[0].Cells)
	assert.Equal(t, []Cell{
		{Text: Unassigned},
		{Text: Unassigned},
		{Text: Unassigned},
		{Text: Unassigned, Subtext: NoEmail},
	}, rows[1].Cells)
}

func TestProjectFacultyBare(t *testing.T) {
	payload := models.FacultyPayload{
		User: models.User{ID: "u3", Name: "Root Admin", Email: "root@example.com", Role: models.RoleAdmin, Image: strPtr("https://img.example/root.png")},
	}

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	profile := page.Profile
	require.NotNil(t, profile)
	assert.Equal(t, VariantBare, profile.Kind)
	assert.Empty(t, profile.Counters)
	assert.Nil(t, profile.RelatedTable)
	assert.Equal(t, "https://img.example/root.png", profile.Image)
}

func TestProjectFacultyTruncatedTeacherRendersProfileOnly(t *testing.T) {
	payload := teacherPayload()
	payload.Totals.Departments = nil

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	assert.Equal(t, VariantBare, page.Profile.Kind)
	assert.Empty(t, page.Profile.Counters)
	assert.Nil(t, page.Profile.RelatedTable)
}

func TestProjectFacultyBlankNameFallsBack(t *testing.T) {
	payload := models.FacultyPayload{
		User: models.User{ID: "u9", Name: "  ", Email: "anon@example.com", Role: models.RoleAdmin},
	}

	page := newTestProjector().Faculty(Fetch[models.FacultyPayload]{Data: &payload})

	require.Equal(t, StateReady, page.State)
	assert.Equal(t, UnnamedUser, page.Title)
	require.NotNil(t, page.Profile)
	assert.Equal(t, UnnamedUser, page.Profile.Name)
	assert.Empty(t, page.Profile.Initials)
}

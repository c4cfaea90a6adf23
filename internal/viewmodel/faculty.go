package viewmodel

import (
	"strings"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// FacultyPage is the faculty (user profile) show page.
type FacultyPage struct {
	Header
	Profile *ProfileView `json:"profile,omitempty"`
}

// ProfileView is the uniform shape every faculty variant projects into.
// RelatedTable is nil for bare profiles.
type ProfileView struct {
	Kind         Variant   `json:"kind"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Image        string    `json:"image,omitempty"`
	Initials     string    `json:"initials"`
	Role         string    `json:"role"`
	Counters     []Counter `json:"counters"`
	RelatedTable *Table    `json:"relatedTable"`
}

var (
	teacherClassColumns      = []string{"Name", "Subject", "Department", "Status"}
	studentEnrollmentColumns = []string{"Class", "Subject", "Department", "Teacher"}
)

// Faculty projects a faculty fetch into its page.
func (p *Projector) Faculty(f Fetch[models.FacultyPayload]) FacultyPage {
	header, payload, ok := settle(facultyPage, f)
	if !ok {
		return FacultyPage{Header: header}
	}
	profile := ProjectProfile(Discriminate(*payload))
	header.Title = profile.Name
	return FacultyPage{Header: header, Profile: &profile}
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UnnamedUser
	}
	return name
}

// ProjectProfile renders a discriminated faculty profile. Variant-specific fields are only
// read inside their own branch.
func ProjectProfile(fp FacultyProfile) ProfileView {
	user := fp.Profile()
	view := ProfileView{
		Kind:     fp.Kind(),
		Name:     displayName(user.Name),
		Email:    stringOr(&user.Email, NoEmail),
		Image:    stringOr(user.Image, ""),
		Initials: Initials(user.Name),
		Role:     string(user.Role),
		Counters: []Counter{},
	}

	switch v := fp.(type) {
	case TeacherProfile:
		view.Counters = []Counter{
			{Label: "Classes", Value: v.Totals.Classes},
			{Label: "Subjects", Value: v.Totals.Subjects},
			{Label: "Departments", Value: v.Totals.Departments},
		}
		table := teacherClassTable(v.Classes)
		view.RelatedTable = &table
	case StudentProfile:
		view.Counters = []Counter{
			{Label: "Enrollments", Value: v.Totals.Enrollments},
			{Label: "Classes", Value: v.Totals.Classes},
			{Label: "Subjects", Value: v.Totals.Subjects},
		}
		table := studentEnrollmentTable(v.Enrollments)
		view.RelatedTable = &table
	case BareProfile:
	}
	return view
}

func teacherClassTable(classes []models.ClassRecord) Table {
	rows := make([]Row, 0, len(classes))
	for _, c := range classes {
		department := c.Department
		if department == nil && c.Subject != nil {
			department = c.Subject.Department
		}
		status := StatusBadge(c.Status)
		rows = append(rows, Row{
			Key: c.ID,
			Cells: []Cell{
				{Text: c.Name, Link: classLink(c.ID, c.Name)},
				{Text: subjectName(c.Subject)},
				{Text: departmentName(department)},
				{Text: status.Text, Badge: &status},
			},
		})
	}
	return newTable("Classes", teacherClassColumns, rows, NoClassesFound)
}

func studentEnrollmentTable(enrollments []models.EnrollmentRecord) Table {
	rows := make([]Row, 0, len(enrollments))
	for _, e := range enrollments {
		class := Cell{Text: Unassigned}
		if e.Class != nil && e.Class.Name != "" {
			class = Cell{Text: e.Class.Name, Link: classLink(e.Class.ID, e.Class.Name)}
		}
		rows = append(rows, Row{
			Key: e.ID,
			Cells: []Cell{
				class,
				{Text: subjectName(e.Subject)},
				{Text: departmentName(e.Department)},
				{Text: teacherName(e.Teacher), Subtext: teacherEmail(e.Teacher)},
			},
		})
	}
	return newTable("Enrollments", studentEnrollmentColumns, rows, NoEnrollmentsFound)
}

package viewmodel

import (
	"strconv"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// DepartmentPage is the department show page.
type DepartmentPage struct {
	Header
	Department *DepartmentView `json:"department,omitempty"`
}

// DepartmentView is the body of a ready department page.
type DepartmentView struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Counters         []Counter  `json:"counters"`
	Subjects         Table      `json:"subjects"`
	Classes          Table      `json:"classes"`
	EnrolledStudents PeopleList `json:"enrolledStudents"`
}

var (
	departmentSubjectColumns = []string{"Code", "Name", "Description", "Classes"}
	departmentClassColumns   = []string{"Name", "Subject", "Teacher", "Status"}
)

// Department projects a department fetch into its page. Counters come from the payload totals.
func (p *Projector) Department(f Fetch[models.DepartmentDetails]) DepartmentPage {
	header, details, ok := settle(departmentPage, f)
	if !ok {
		return DepartmentPage{Header: header}
	}
	header.Title = details.Department.Name

	subjects := make([]Row, 0, len(details.Subjects))
	for _, s := range details.Subjects {
		subjects = append(subjects, Row{
			Key: s.ID,
			Cells: []Cell{
				{Text: s.Code, Badge: &Badge{Text: s.Code, Variant: BadgeSecondary}},
				{Text: s.Name},
				{Text: stringOr(s.Description, NoDescription), Muted: true},
				{Text: strconv.Itoa(s.TotalClasses), Badge: &Badge{Text: strconv.Itoa(s.TotalClasses), Variant: BadgeDefault}},
			},
		})
	}

	classes := make([]Row, 0, len(details.Classes))
	for _, c := range details.Classes {
		status := StatusBadge(c.Status)
		classes = append(classes, Row{
			Key: c.ID,
			Cells: []Cell{
				{Text: c.Name, Link: classLink(c.ID, c.Name)},
				{Text: subjectName(c.Subject)},
				{Text: teacherName(c.Teacher)},
				{Text: status.Text, Badge: &status},
			},
		})
	}

	students := PeopleList{People: make([]Person, 0, len(details.EnrolledStudents))}
	for _, s := range details.EnrolledStudents {
		students.People = append(students.People, Person{
			ID:     s.ID,
			Name:   s.Name,
			Email:  stringOr(s.Email, NoEmail),
			Avatar: *avatarFor(s.Name, s.Image),
		})
	}
	if len(students.People) == 0 {
		students.Empty = NoEnrolledStudents
	}

	return DepartmentPage{
		Header: header,
		Department: &DepartmentView{
			ID:          details.Department.ID,
			Name:        details.Department.Name,
			Description: stringOr(details.Department.Description, NoDescriptionProvided),
			Counters: []Counter{
				{Label: "Total Subjects", Value: details.Totals.Subjects},
				{Label: "Total Classes", Value: details.Totals.Classes},
				{Label: "Enrolled Students", Value: details.Totals.EnrolledStudents},
			},
			Subjects:         newTable("Subjects", departmentSubjectColumns, subjects, NoSubjectsAssigned),
			Classes:          newTable("Classes", departmentClassColumns, classes, NoClassesAvailable),
			EnrolledStudents: students,
		},
	}
}

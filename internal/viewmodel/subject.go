package viewmodel

import (
	"github.com/noah-isme/sma-adp-views/internal/models"
)

// SubjectPage is the subject show page.
type SubjectPage struct {
	Header
	Subject *SubjectView `json:"subject,omitempty"`
}

// SubjectView is the body of a ready subject page.
type SubjectView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        Badge     `json:"code"`
	Description string    `json:"description"`
	Department  string    `json:"department"`
	Counters    []Counter `json:"counters"`
	Classes     Table     `json:"classes"`
}

var subjectClassColumns = []string{"Name", "Teacher", "Status", "Capacity"}

// Subject projects a subject fetch into its page.
func (p *Projector) Subject(f Fetch[models.SubjectDetails]) SubjectPage {
	header, details, ok := settle(subjectPage, f)
	if !ok {
		return SubjectPage{Header: header}
	}
	header.Title = details.Subject.Name

	rows := make([]Row, 0, len(details.Classes))
	for _, c := range details.Classes {
		status := StatusBadge(c.Status)
		var image *string
		if c.Teacher != nil {
			image = c.Teacher.Image
		}
		var name string
		if c.Teacher != nil {
			name = c.Teacher.Name
		}
		rows = append(rows, Row{
			Key: c.ID,
			Cells: []Cell{
				{Text: c.Name, Link: classLink(c.ID, c.Name)},
				{Text: teacherName(c.Teacher), Subtext: teacherEmail(c.Teacher), Avatar: avatarFor(name, image)},
				{Text: status.Text, Badge: &status},
				{Text: capacityText(c.Capacity)},
			},
		})
	}

	return SubjectPage{
		Header: header,
		Subject: &SubjectView{
			ID:          details.Subject.ID,
			Name:        details.Subject.Name,
			Code:        Badge{Text: details.Subject.Code, Variant: BadgeSecondary},
			Description: stringOr(details.Subject.Description, NoDescriptionProvided),
			Department:  departmentName(details.Subject.Department),
			Counters:    []Counter{{Label: "Classes", Value: details.Totals.Classes}},
			Classes:     newTable("Classes", subjectClassColumns, rows, NoClassesAvailable),
		},
	}
}

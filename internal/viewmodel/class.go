package viewmodel

import (
	"fmt"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// JoinSteps are the fixed instructions shown under a class.
var JoinSteps = []string{
	"Ask your teacher for the invite code.",
	`Click on "Join Class" button.`,
	`Paste the code and click "Join"`,
}

// ClassPage is the class show page.
type ClassPage struct {
	Header
	Class *ClassView `json:"class,omitempty"`
}

// ClassView is the body of a ready class page.
type ClassView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Capacity    Badge          `json:"capacity"`
	Status      Badge          `json:"status"`
	Banner      Banner         `json:"banner"`
	Instructor  InstructorCard `json:"instructor"`
	Department  DetailCard     `json:"department"`
	Subject     SubjectCard    `json:"subject"`
	JoinSteps   []string       `json:"joinSteps"`
}

// InstructorCard shows the class teacher.
type InstructorCard struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image"`
	Initials string `json:"initials"`
}

// DetailCard is a name with a description.
type DetailCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubjectCard shows the subject a class teaches.
type SubjectCard struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Class projects a class fetch into its page.
func (p *Projector) Class(f Fetch[models.ClassRecord]) ClassPage {
	header, class, ok := settle(classPage, f)
	if !ok {
		return ClassPage{Header: header}
	}

	capacity := Badge{Text: NoCapacity, Variant: BadgeOutline}
	if class.Capacity != nil {
		capacity.Text = fmt.Sprintf("%d spots", *class.Capacity)
	}

	var rawName string
	if class.Teacher != nil {
		rawName = class.Teacher.Name
	}
	instructor := InstructorCard{
		Name:     teacherName(class.Teacher),
		Email:    teacherEmail(class.Teacher),
		Image:    p.placeholderImage(rawName),
		Initials: Initials(rawName),
	}
	if class.Teacher != nil && class.Teacher.Image != nil && *class.Teacher.Image != "" {
		instructor.Image = *class.Teacher.Image
	}

	department := DetailCard{Name: Unassigned, Description: NoDescriptionProvided}
	if class.Department != nil {
		department = DetailCard{
			Name:        departmentName(class.Department),
			Description: stringOr(class.Department.Description, NoDescriptionProvided),
		}
	}

	subject := SubjectCard{Code: Unassigned, Name: Unassigned, Description: NoDescriptionProvided}
	if class.Subject != nil {
		subject = SubjectCard{
			Code:        stringOr(&class.Subject.Code, Unassigned),
			Name:        subjectName(class.Subject),
			Description: stringOr(class.Subject.Description, NoDescriptionProvided),
		}
	}

	return ClassPage{
		Header: header,
		Class: &ClassView{
			ID:          class.ID,
			Name:        class.Name,
			Description: stringOr(class.Description, NoDescriptionProvided),
			Capacity:    capacity,
			Status:      HeaderStatusBadge(class.Status),
			Banner:      p.banners.Resolve(stringOr(class.BannerURL, ""), stringOr(class.BannerCldPubID, ""), class.Name),
			Instructor:  instructor,
			Department:  department,
			Subject:     subject,
			JoinSteps:   append([]string(nil), JoinSteps...),
		},
	}
}

package viewmodel

import (
	"fmt"
	"strings"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// Literal fallbacks shared by every page. Golden tests compare against these exact strings.
const (
	Unassigned            = "Unassigned"
	UnnamedUser           = "Unnamed user"
	NoEmail               = "No email"
	NoDescription         = "No description"
	NoDescriptionProvided = "No description provided."
	NoCapacity            = "—"
	UnknownStatus         = "unknown"
	PlaceholderInitials   = "NA"

	NoSubjectsAssigned = "No subjects assigned."
	NoClassesAvailable = "No classes available."
	NoEnrolledStudents = "No enrolled students yet."
	NoEnrollmentsFound = "No enrollments found."
	NoClassesFound     = "No classes found."
)

func stringOr(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}

func intOr(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

// StatusBadge renders a class status for table cells. Only "active" gets the default treatment.
func StatusBadge(status models.ClassStatus) Badge {
	if status == "" {
		return Badge{Text: UnknownStatus, Variant: BadgeSecondary}
	}
	return Badge{Text: string(status), Variant: statusVariant(status)}
}

// HeaderStatusBadge renders the upper-cased status shown in the class page header.
func HeaderStatusBadge(status models.ClassStatus) Badge {
	if status == "" {
		return Badge{Text: UnknownStatus, Variant: BadgeSecondary}
	}
	return Badge{Text: strings.ToUpper(string(status)), Variant: statusVariant(status)}
}

func statusVariant(status models.ClassStatus) BadgeVariant {
	if status == models.ClassStatusActive {
		return BadgeDefault
	}
	return BadgeSecondary
}

func capacityText(capacity *int) string {
	if capacity == nil {
		return NoCapacity
	}
	return fmt.Sprintf("%d", *capacity)
}

func classLink(id, name string) *Link {
	return &Link{Path: "/classes/show/" + id, Label: name}
}

func teacherName(t *models.UserRef) string {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return Unassigned
	}
	return t.Name
}

func teacherEmail(t *models.UserRef) string {
	if t == nil {
		return NoEmail
	}
	return stringOr(t.Email, NoEmail)
}

func subjectName(s *models.Subject) string {
	if s == nil || s.Name == "" {
		return Unassigned
	}
	return s.Name
}

func departmentName(d *models.Department) string {
	if d == nil || d.Name == "" {
		return Unassigned
	}
	return d.Name
}

func avatarFor(name string, image *string) *Avatar {
	return &Avatar{Image: stringOr(image, ""), Fallback: Initials(name)}
}

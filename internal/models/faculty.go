package models

// FacultyPayload is the detail payload served for the faculty (users) resource.
//
// Depending on the user's role the upstream aggregation fills in the teacher-shaped fields
// (Classes, Subjects, Departments and the matching totals) or the student-shaped fields
// (Enrollments, Classes, Subjects and the matching totals). A nil slice or nil total means the
// field was absent from the payload; an empty slice means it was present but had no entries.
type FacultyPayload struct {
	User        User               `json:"user"`
	Classes     []ClassRecord      `json:"classes"`
	Subjects    []Subject          `json:"subjects"`
	Departments []Department       `json:"departments"`
	Enrollments []EnrollmentRecord `json:"enrollments"`
	Totals      *FacultyTotals     `json:"totals"`
}

// FacultyTotals holds every counter a faculty payload may carry.
type FacultyTotals struct {
	Classes     *int `json:"classes,omitempty"`
	Subjects    *int `json:"subjects,omitempty"`
	Departments *int `json:"departments,omitempty"`
	Enrollments *int `json:"enrollments,omitempty"`
}

// EnrollmentRecord is a student's enrollment in a class with the class's related references.
type EnrollmentRecord struct {
	ID         string      `json:"id"`
	Class      *ClassRef   `json:"class,omitempty"`
	Subject    *Subject    `json:"subject,omitempty"`
	Department *Department `json:"department,omitempty"`
	Teacher    *UserRef    `json:"teacher,omitempty"`
}

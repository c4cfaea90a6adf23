package models

// Department groups subjects and, through them, classes.
type Department struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// DepartmentSubject is a subject row annotated with the number of classes teaching it.
type DepartmentSubject struct {
	Subject
	TotalClasses int `db:"total_classes" json:"totalClasses"`
}

// DepartmentTotals carries the counters computed upstream for a department.
type DepartmentTotals struct {
	Subjects         int `db:"subjects" json:"subjects"`
	Classes          int `db:"classes" json:"classes"`
	EnrolledStudents int `db:"enrolled_students" json:"enrolledStudents"`
}

// DepartmentDetails is the aggregate served for the department show page.
type DepartmentDetails struct {
	Department       Department          `json:"department"`
	Subjects         []DepartmentSubject `json:"subjects"`
	Classes          []ClassRecord       `json:"classes"`
	EnrolledStudents []UserRef           `json:"enrolledStudents"`
	Totals           DepartmentTotals    `json:"totals"`
}

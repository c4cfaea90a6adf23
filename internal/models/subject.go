package models

// Subject represents an academic subject.
type Subject struct {
	ID          string      `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Code        string      `db:"code" json:"code"`
	Description *string     `db:"description" json:"description,omitempty"`
	Department  *Department `db:"-" json:"department,omitempty"`
}

// SubjectTotals carries the counters computed upstream for a subject.
type SubjectTotals struct {
	Classes int `db:"classes" json:"classes"`
}

// SubjectDetails is the aggregate served for the subject show page.
type SubjectDetails struct {
	Subject Subject       `json:"subject"`
	Classes []ClassRecord `json:"classes"`
	Totals  SubjectTotals `json:"totals"`
}

package models

// ClassStatus is the lifecycle status of a class.
type ClassStatus string

const (
	ClassStatusActive   ClassStatus = "active"
	ClassStatusInactive ClassStatus = "inactive"
)

// ClassRecord is a class together with its optional teacher, subject and department references.
// An empty Status means the upstream record did not carry one.
type ClassRecord struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    *string     `json:"description,omitempty"`
	Capacity       *int        `json:"capacity,omitempty"`
	Status         ClassStatus `json:"status,omitempty"`
	BannerURL      *string     `json:"bannerUrl,omitempty"`
	BannerCldPubID *string     `json:"bannerCldPubId,omitempty"`
	Teacher        *UserRef    `json:"teacher,omitempty"`
	Subject        *Subject    `json:"subject,omitempty"`
	Department     *Department `json:"department,omitempty"`
}

// ClassRef is the id/name pair used when only a class label is needed.
type ClassRef struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

package models

// UserRole is the role tag attached to a user record by the identity provider.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User represents an application user stored in the users table.
type User struct {
	ID    string   `db:"id" json:"id"`
	Name  string   `db:"name" json:"name"`
	Email string   `db:"email" json:"email"`
	Image *string  `db:"image" json:"image,omitempty"`
	Role  UserRole `db:"role" json:"role"`
}

// UserRef is the subset of a user embedded in related records (class teacher, enrolled student).
type UserRef struct {
	ID    string  `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Email *string `db:"email" json:"email,omitempty"`
	Image *string `db:"image" json:"image,omitempty"`
}

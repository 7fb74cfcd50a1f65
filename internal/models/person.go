package models

import "time"

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Person is owned by the campus directory; this service only reads
// id, email and role and never mutates the record.
type Person struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`
	Role  Role   `gorm:"type:varchar(20);not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTeacher, RoleStudent:
		return Role(s), true
	}
	return "", false
}

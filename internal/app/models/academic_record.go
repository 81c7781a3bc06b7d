package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AcademicRecord is one enrollment entry owned by a student.
type AcademicRecord struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"student" db:"student_id"`
	GradeLevel     string           `json:"grade_level" db:"grade_level"`
	EnrollmentDate time.Time        `json:"enrollment_date" db:"enrollment_date"`
	Major          *string          `json:"major" db:"major"`
	GPA            *decimal.Decimal `json:"gpa" db:"gpa"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

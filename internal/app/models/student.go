package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	DateOfBirth   time.Time `json:"date_of_birth" db:"date_of_birth"`
	Gender        string    `json:"gender" db:"gender"`
	Address       string    `json:"address" db:"address"`
	ContactNumber string    `json:"contact_number" db:"contact_number"`
	Email         string    `json:"email" db:"email"` // unique across all students
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	AcademicRecords []*AcademicRecord   `json:"academic_records,omitempty"`
	MedicalInfo     *MedicalInformation `json:"medical_info,omitempty"`
}

// FullName returns "first last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

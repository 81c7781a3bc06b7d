package models

import "time"

// MedicalInformation holds a student's medical notes and emergency contact.
// A student has at most one.
type MedicalInformation struct {
	ID                     int64     `json:"id" db:"id"`
	StudentID              int64     `json:"student" db:"student_id"`
	Allergies              string    `json:"allergies" db:"allergies"`
	MedicalConditions      string    `json:"medical_conditions" db:"medical_conditions"`
	EmergencyContactName   string    `json:"emergency_contact_name" db:"emergency_contact_name"`
	EmergencyContactNumber string    `json:"emergency_contact_number" db:"emergency_contact_number"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time `json:"updated_at" db:"updated_at"`
}

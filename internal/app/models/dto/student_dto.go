package dto

import (
	"strings"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// --- Request DTOs ---

// StudentRequest is the writable part of a student. It is used for POST, PUT and,
// pre-filled from the stored record, for PATCH.
type StudentRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100" example:"Ann"`
	LastName      string `json:"last_name" validate:"required,max=100" example:"Lee"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,datetime=2006-01-02" example:"2005-04-01"`
	Gender        string `json:"gender" validate:"required,max=10" example:"F"`
	Address       string `json:"address" validate:"required" example:"1 Rd"`
	ContactNumber string `json:"contact_number" validate:"required,max=15" example:"555-0000"`
	Email         string `json:"email" validate:"required,email,max=254" example:"ann@example.com"`
}

// NewStudentRequest builds a request from a stored student.
func NewStudentRequest(s *models.Student) StudentRequest {
	return StudentRequest{
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		DateOfBirth:   helpers.FormatDate(s.DateOfBirth),
		Gender:        s.Gender,
		Address:       s.Address,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
	}
}

// Normalize trims surrounding whitespace from every string field.
func (r *StudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Address = strings.TrimSpace(r.Address)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
	r.Email = strings.TrimSpace(r.Email)
}

// ApplyTo copies the request onto s. The request must already be validated.
func (r *StudentRequest) ApplyTo(s *models.Student) error {
	dob, err := helpers.ParseDate(r.DateOfBirth)
	if err != nil {
		return dateError("date_of_birth")
	}
	s.FirstName = r.FirstName
	s.LastName = r.LastName
	s.DateOfBirth = dob
	s.Gender = r.Gender
	s.Address = r.Address
	s.ContactNumber = r.ContactNumber
	s.Email = r.Email
	return nil
}

// ToModel converts the request into a new student model.
func (r *StudentRequest) ToModel() (*models.Student, error) {
	s := &models.Student{}
	if err := r.ApplyTo(s); err != nil {
		return nil, err
	}
	return s, nil
}

// --- Response DTOs ---

// StudentResponse is the outward representation of a student, with its
// academic records and medical information embedded.
type StudentResponse struct {
	ID              int64                       `json:"id" example:"1"`
	AcademicRecords []AcademicRecordResponse    `json:"academic_records"`
	MedicalInfo     *MedicalInformationResponse `json:"medical_info"`
	FirstName       string                      `json:"first_name" example:"Ann"`
	LastName        string                      `json:"last_name" example:"Lee"`
	DateOfBirth     string                      `json:"date_of_birth" example:"2005-04-01"`
	Gender          string                      `json:"gender" example:"F"`
	Address         string                      `json:"address" example:"1 Rd"`
	ContactNumber   string                      `json:"contact_number" example:"555-0000"`
	Email           string                      `json:"email" example:"ann@example.com"`
	CreatedAt       string                      `json:"created_at" example:"2024-01-15T10:00:00Z"`
	UpdatedAt       string                      `json:"updated_at" example:"2024-01-15T10:00:00Z"`
}

// FromStudent converts a student model (with relations loaded) to its response.
func FromStudent(s *models.Student) StudentResponse {
	records := make([]AcademicRecordResponse, 0, len(s.AcademicRecords))
	for _, rec := range s.AcademicRecords {
		records = append(records, FromAcademicRecord(rec))
	}

	var medical *MedicalInformationResponse
	if s.MedicalInfo != nil {
		m := FromMedicalInformation(s.MedicalInfo)
		medical = &m
	}

	return StudentResponse{
		ID:              s.ID,
		AcademicRecords: records,
		MedicalInfo:     medical,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		DateOfBirth:     helpers.FormatDate(s.DateOfBirth),
		Gender:          s.Gender,
		Address:         s.Address,
		ContactNumber:   s.ContactNumber,
		Email:           s.Email,
		CreatedAt:       helpers.FormatTimestamp(s.CreatedAt),
		UpdatedAt:       helpers.FormatTimestamp(s.UpdatedAt),
	}
}

// FromStudents converts a list, never returning nil.
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

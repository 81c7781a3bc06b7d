package dto

import (
	"strings"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// MedicalInformationRequest is the writable part of a medical information record.
type MedicalInformationRequest struct {
	Student                int64  `json:"student" validate:"required,gt=0" example:"1"`
	Allergies              string `json:"allergies" example:"Peanuts"`
	MedicalConditions      string `json:"medical_conditions" example:"Asthma"`
	EmergencyContactName   string `json:"emergency_contact_name" validate:"required,max=100" example:"Sam Lee"`
	EmergencyContactNumber string `json:"emergency_contact_number" validate:"required,max=15" example:"555-0101"`
}

// NewMedicalInformationRequest builds a request from a stored record.
func NewMedicalInformationRequest(m *models.MedicalInformation) MedicalInformationRequest {
	return MedicalInformationRequest{
		Student:                m.StudentID,
		Allergies:              m.Allergies,
		MedicalConditions:      m.MedicalConditions,
		EmergencyContactName:   m.EmergencyContactName,
		EmergencyContactNumber: m.EmergencyContactNumber,
	}
}

// Normalize trims surrounding whitespace from every string field.
func (r *MedicalInformationRequest) Normalize() {
	r.Allergies = strings.TrimSpace(r.Allergies)
	r.MedicalConditions = strings.TrimSpace(r.MedicalConditions)
	r.EmergencyContactName = strings.TrimSpace(r.EmergencyContactName)
	r.EmergencyContactNumber = strings.TrimSpace(r.EmergencyContactNumber)
}

// ApplyTo copies the request onto m.
func (r *MedicalInformationRequest) ApplyTo(m *models.MedicalInformation) {
	m.StudentID = r.Student
	m.Allergies = r.Allergies
	m.MedicalConditions = r.MedicalConditions
	m.EmergencyContactName = r.EmergencyContactName
	m.EmergencyContactNumber = r.EmergencyContactNumber
}

// ToModel converts the request into a new medical information model.
func (r *MedicalInformationRequest) ToModel() *models.MedicalInformation {
	m := &models.MedicalInformation{}
	r.ApplyTo(m)
	return m
}

// MedicalInformationResponse is the outward representation of medical information.
type MedicalInformationResponse struct {
	ID                     int64  `json:"id" example:"2"`
	Student                int64  `json:"student" example:"1"`
	Allergies              string `json:"allergies" example:"Peanuts"`
	MedicalConditions      string `json:"medical_conditions" example:"Asthma"`
	EmergencyContactName   string `json:"emergency_contact_name" example:"Sam Lee"`
	EmergencyContactNumber string `json:"emergency_contact_number" example:"555-0101"`
	CreatedAt              string `json:"created_at" example:"2024-01-15T10:00:00Z"`
	UpdatedAt              string `json:"updated_at" example:"2024-01-15T10:00:00Z"`
}

// FromMedicalInformation converts a medical information model to its response.
func FromMedicalInformation(m *models.MedicalInformation) MedicalInformationResponse {
	return MedicalInformationResponse{
		ID:                     m.ID,
		Student:                m.StudentID,
		Allergies:              m.Allergies,
		MedicalConditions:      m.MedicalConditions,
		EmergencyContactName:   m.EmergencyContactName,
		EmergencyContactNumber: m.EmergencyContactNumber,
		CreatedAt:              helpers.FormatTimestamp(m.CreatedAt),
		UpdatedAt:              helpers.FormatTimestamp(m.UpdatedAt),
	}
}

// FromMedicalInformationList converts a list, never returning nil.
func FromMedicalInformationList(list []*models.MedicalInformation) []MedicalInformationResponse {
	out := make([]MedicalInformationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMedicalInformation(m))
	}
	return out
}

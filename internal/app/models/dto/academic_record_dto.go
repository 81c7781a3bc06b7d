package dto

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// AcademicRecordRequest is the writable part of an academic record.
// GPA accepts a JSON number or a numeric string.
type AcademicRecordRequest struct {
	Student        int64            `json:"student" validate:"required,gt=0" example:"1"`
	GradeLevel     string           `json:"grade_level" validate:"required,max=20" example:"10"`
	EnrollmentDate string           `json:"enrollment_date" validate:"required,datetime=2006-01-02" example:"2020-09-01"`
	Major          *string          `json:"major" validate:"omitempty,max=100" example:"Biology"`
	GPA            *decimal.Decimal `json:"gpa" swaggertype:"string" example:"3.50"`
}

// UnmarshalJSON decodes gpa separately so an unparseable value is reported
// against the gpa field instead of as a malformed body.
func (r *AcademicRecordRequest) UnmarshalJSON(data []byte) error {
	type plain AcademicRecordRequest
	aux := struct {
		*plain
		GPA json.RawMessage `json:"gpa"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	switch {
	case aux.GPA == nil:
		// absent: keep the current value
	case string(aux.GPA) == "null":
		r.GPA = nil
	default:
		var gpa decimal.Decimal
		if err := gpa.UnmarshalJSON(aux.GPA); err != nil {
			return &json.UnmarshalTypeError{
				Value: "string",
				Type:  reflect.TypeOf(gpa),
				Field: "gpa",
			}
		}
		r.GPA = &gpa
	}
	return nil
}

// NewAcademicRecordRequest builds a request from a stored record.
func NewAcademicRecordRequest(rec *models.AcademicRecord) AcademicRecordRequest {
	req := AcademicRecordRequest{
		Student:        rec.StudentID,
		GradeLevel:     rec.GradeLevel,
		EnrollmentDate: helpers.FormatDate(rec.EnrollmentDate),
	}
	if rec.Major != nil {
		major := *rec.Major
		req.Major = &major
	}
	if rec.GPA != nil {
		gpa := *rec.GPA
		req.GPA = &gpa
	}
	return req
}

// Normalize trims surrounding whitespace from every string field.
func (r *AcademicRecordRequest) Normalize() {
	r.GradeLevel = strings.TrimSpace(r.GradeLevel)
	r.EnrollmentDate = strings.TrimSpace(r.EnrollmentDate)
	if r.Major != nil {
		major := strings.TrimSpace(*r.Major)
		r.Major = &major
	}
}

// ApplyTo copies the request onto rec. The request must already be validated.
func (r *AcademicRecordRequest) ApplyTo(rec *models.AcademicRecord) error {
	enrolled, err := helpers.ParseDate(r.EnrollmentDate)
	if err != nil {
		return dateError("enrollment_date")
	}
	rec.StudentID = r.Student
	rec.GradeLevel = r.GradeLevel
	rec.EnrollmentDate = enrolled
	rec.Major = r.Major
	rec.GPA = r.GPA
	return nil
}

// ToModel converts the request into a new academic record model.
func (r *AcademicRecordRequest) ToModel() (*models.AcademicRecord, error) {
	rec := &models.AcademicRecord{}
	if err := r.ApplyTo(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AcademicRecordResponse is the outward representation of an academic record.
type AcademicRecordResponse struct {
	ID             int64   `json:"id" example:"3"`
	Student        int64   `json:"student" example:"1"`
	GradeLevel     string  `json:"grade_level" example:"10"`
	EnrollmentDate string  `json:"enrollment_date" example:"2020-09-01"`
	Major          *string `json:"major" example:"Biology"`
	GPA            *string `json:"gpa" example:"3.50"`
	CreatedAt      string  `json:"created_at" example:"2024-01-15T10:00:00Z"`
	UpdatedAt      string  `json:"updated_at" example:"2024-01-15T10:00:00Z"`
}

// FromAcademicRecord converts an academic record model to its response.
func FromAcademicRecord(rec *models.AcademicRecord) AcademicRecordResponse {
	var gpa *string
	if rec.GPA != nil {
		s := rec.GPA.StringFixed(2)
		gpa = &s
	}
	return AcademicRecordResponse{
		ID:             rec.ID,
		Student:        rec.StudentID,
		GradeLevel:     rec.GradeLevel,
		EnrollmentDate: helpers.FormatDate(rec.EnrollmentDate),
		Major:          rec.Major,
		GPA:            gpa,
		CreatedAt:      helpers.FormatTimestamp(rec.CreatedAt),
		UpdatedAt:      helpers.FormatTimestamp(rec.UpdatedAt),
	}
}

// FromAcademicRecords converts a list, never returning nil.
func FromAcademicRecords(records []*models.AcademicRecord) []AcademicRecordResponse {
	out := make([]AcademicRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromAcademicRecord(rec))
	}
	return out
}

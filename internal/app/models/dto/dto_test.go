package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func sampleStudent() *models.Student {
	ts := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return &models.Student{
		ID:            7,
		FirstName:     "Ann",
		LastName:      "Lee",
		DateOfBirth:   time.Date(2005, 4, 1, 0, 0, 0, 0, time.UTC),
		Gender:        "F",
		Address:       "1 Rd",
		ContactNumber: "555-0000",
		Email:         "ann@example.com",
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

func TestFromStudentWithoutRelations(t *testing.T) {
	body, err := json.Marshal(FromStudent(sampleStudent()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(body)
	for _, want := range []string{
		`"academic_records":[]`,
		`"medical_info":null`,
		`"date_of_birth":"2005-04-01"`,
		`"created_at":"2024-01-15T10:00:00Z"`,
		`"id":7`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("body %s missing %s", s, want)
		}
	}
}

func TestFromStudentEmbedsChildren(t *testing.T) {
	st := sampleStudent()
	gpa := decimal.RequireFromString("3.5")
	st.AcademicRecords = []*models.AcademicRecord{{ID: 1, StudentID: st.ID, GradeLevel: "10", GPA: &gpa}}
	st.MedicalInfo = &models.MedicalInformation{ID: 2, StudentID: st.ID, EmergencyContactName: "Sam"}

	resp := FromStudent(st)
	if len(resp.AcademicRecords) != 1 || resp.AcademicRecords[0].Student != st.ID {
		t.Fatalf("academic records = %+v", resp.AcademicRecords)
	}
	if got := *resp.AcademicRecords[0].GPA; got != "3.50" {
		t.Fatalf("gpa = %q, want 3.50", got)
	}
	if resp.MedicalInfo == nil || resp.MedicalInfo.ID != 2 {
		t.Fatalf("medical info = %+v", resp.MedicalInfo)
	}
}

func TestStudentRequestPartialDecode(t *testing.T) {
	req := NewStudentRequest(sampleStudent())
	if err := json.Unmarshal([]byte(`{"first_name":"  Annie ","academic_records":[{"id":1}]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	req.Normalize()

	st := sampleStudent()
	if err := req.ApplyTo(st); err != nil {
		t.Fatalf("ApplyTo: %v", err)
	}
	if st.FirstName != "Annie" {
		t.Fatalf("first name = %q", st.FirstName)
	}
	if st.Email != "ann@example.com" || st.LastName != "Lee" {
		t.Fatalf("untouched fields changed: %+v", st)
	}
}

func TestStudentRequestBadDate(t *testing.T) {
	req := NewStudentRequest(sampleStudent())
	req.DateOfBirth = "2005-13-01"
	_, err := req.ToModel()
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if _, ok := ce.Details["date_of_birth"]; !ok {
		t.Fatalf("details = %v", ce.Details)
	}
}

func TestAcademicRecordRequestGPAInput(t *testing.T) {
	for _, body := range []string{`{"gpa":3.5}`, `{"gpa":"3.5"}`} {
		var req AcademicRecordRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if req.GPA == nil || !req.GPA.Equal(decimal.RequireFromString("3.5")) {
			t.Fatalf("%s decoded gpa = %v", body, req.GPA)
		}
	}

	req := AcademicRecordRequest{GPA: ptrDecimal("2.0")}
	if err := json.Unmarshal([]byte(`{"gpa":null}`), &req); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if req.GPA != nil {
		t.Fatalf("gpa = %v, want nil after explicit null", req.GPA)
	}
}

func TestAcademicRecordRequestBadGPAIsFieldTypeError(t *testing.T) {
	for _, body := range []string{`{"gpa":"abc"}`, `{"gpa":""}`, `{"gpa":true}`} {
		var req AcademicRecordRequest
		err := json.Unmarshal([]byte(body), &req)

		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field != "gpa" {
			t.Fatalf("unmarshal %s: err = %v, want type error on gpa", body, err)
		}
	}

	req := AcademicRecordRequest{GPA: ptrDecimal("3.0")}
	if err := json.Unmarshal([]byte(`{"grade_level":"11"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.GradeLevel != "11" || req.GPA == nil || !req.GPA.Equal(decimal.RequireFromString("3")) {
		t.Fatalf("req = %+v, want gpa kept when absent", req)
	}
}

func TestNewAcademicRecordRequestCopiesPointers(t *testing.T) {
	major := "Biology"
	gpa := decimal.RequireFromString("3.00")
	rec := &models.AcademicRecord{StudentID: 1, GradeLevel: "10", Major: &major, GPA: &gpa}

	req := NewAcademicRecordRequest(rec)
	*req.Major = "Physics"
	if *rec.Major != "Biology" {
		t.Fatal("request aliases the stored major")
	}
}

func TestMedicalInformationRoundTrip(t *testing.T) {
	req := MedicalInformationRequest{
		Student:                3,
		Allergies:              " Peanuts ",
		EmergencyContactName:   "Sam Lee",
		EmergencyContactNumber: "555-0101",
	}
	req.Normalize()
	resp := FromMedicalInformation(req.ToModel())
	if resp.Student != 3 || resp.Allergies != "Peanuts" || resp.MedicalConditions != "" {
		t.Fatalf("response = %+v", resp)
	}
}

func ptrDecimal(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/helpers"
)

// Roster workbook sheet names.
const (
	StudentsSheet           = "Students"
	AcademicRecordsSheet    = "Academic Records"
	MedicalInformationSheet = "Medical Information"
)

var (
	studentHeaders = []string{
		"ID", "First Name", "Last Name", "Date of Birth", "Gender",
		"Address", "Contact Number", "Email", "Created At", "Updated At",
	}
	academicRecordHeaders = []string{
		"ID", "Student ID", "Student", "Grade Level", "Enrollment Date", "Major", "GPA",
	}
	medicalInformationHeaders = []string{
		"ID", "Student ID", "Student", "Allergies", "Medical Conditions",
		"Emergency Contact Name", "Emergency Contact Number",
	}
)

// ExportService builds spreadsheet exports
type ExportService interface {
	// StudentRoster returns a workbook with one sheet per entity. The caller closes it.
	StudentRoster(ctx context.Context) (*excelize.File, error)
}

type exportServiceImpl struct {
	students StudentService
}

// NewExportService creates a new export service instance
func NewExportService(students StudentService) ExportService {
	return &exportServiceImpl{students: students}
}

// StudentRoster exports every student with its academic records and medical information
func (s *exportServiceImpl) StudentRoster(ctx context.Context) (*excelize.File, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := writeRoster(f, students); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("error building roster workbook: %w", err)
	}
	return f, nil
}

func writeRoster(f *excelize.File, students []*models.Student) error {
	// NewFile starts with "Sheet1"; rename it rather than leave an empty sheet behind.
	if err := f.SetSheetName(f.GetSheetName(0), StudentsSheet); err != nil {
		return err
	}
	for _, name := range []string{AcademicRecordsSheet, MedicalInformationSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	studentRows := make([][]interface{}, 0, len(students))
	var recordRows, medicalRows [][]interface{}
	for _, st := range students {
		studentRows = append(studentRows, []interface{}{
			st.ID, st.FirstName, st.LastName, helpers.FormatDate(st.DateOfBirth), st.Gender,
			st.Address, st.ContactNumber, st.Email,
			helpers.FormatTimestamp(st.CreatedAt), helpers.FormatTimestamp(st.UpdatedAt),
		})
		for _, rec := range st.AcademicRecords {
			major, gpa := "", ""
			if rec.Major != nil {
				major = *rec.Major
			}
			if rec.GPA != nil {
				gpa = rec.GPA.StringFixed(2)
			}
			recordRows = append(recordRows, []interface{}{
				rec.ID, st.ID, st.FullName(), rec.GradeLevel, helpers.FormatDate(rec.EnrollmentDate), major, gpa,
			})
		}
		if m := st.MedicalInfo; m != nil {
			medicalRows = append(medicalRows, []interface{}{
				m.ID, st.ID, st.FullName(), m.Allergies, m.MedicalConditions,
				m.EmergencyContactName, m.EmergencyContactNumber,
			})
		}
	}

	if err := writeSheet(f, StudentsSheet, studentHeaders, studentRows); err != nil {
		return err
	}
	if err := writeSheet(f, AcademicRecordsSheet, academicRecordHeaders, recordRows); err != nil {
		return err
	}
	if err := writeSheet(f, MedicalInformationSheet, medicalInformationHeaders, medicalRows); err != nil {
		return err
	}
	f.SetActiveSheet(0)
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

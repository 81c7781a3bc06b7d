package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	appModels "github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// DemoStudentEmail identifies the seeded student; its presence means the seed already ran.
const DemoStudentEmail = "ann.lee@example.com"

// CreateDefaultData creates a demo student with one academic record and medical
// information if it doesn't exist yet.
func CreateDefaultData(ctx context.Context, svc *services.Services, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (demo student)...")

	student := &appModels.Student{
		FirstName:     "Ann",
		LastName:      "Lee",
		DateOfBirth:   time.Date(2005, time.April, 1, 0, 0, 0, 0, time.UTC),
		Gender:        "F",
		Address:       "1 Rd",
		ContactNumber: "555-0000",
		Email:         DemoStudentEmail,
	}
	if err := svc.Students.CreateStudent(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrValidationFailed) {
			lgr.Info().Str("email", DemoStudentEmail).Msg("Demo student already exists, skipping seed")
			return nil
		}
		return fmt.Errorf("seed student: %w", err)
	}

	var finalErr error // collect errors without stopping the process

	major := "Biology"
	gpa := decimal.RequireFromString("3.50")
	record := &appModels.AcademicRecord{
		StudentID:      student.ID,
		GradeLevel:     "10",
		EnrollmentDate: time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC),
		Major:          &major,
		GPA:            &gpa,
	}
	if err := svc.AcademicRecords.CreateAcademicRecord(ctx, record); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo academic record")
		finalErr = errors.Join(finalErr, err)
	}

	medical := &appModels.MedicalInformation{
		StudentID:              student.ID,
		Allergies:              "Peanuts",
		EmergencyContactName:   "Sam Lee",
		EmergencyContactNumber: "555-0101",
	}
	if err := svc.MedicalInformation.CreateMedicalInformation(ctx, medical); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo medical information")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Int64("studentID", student.ID).Msg("Default data created")
	}
	return finalErr
}

package services

import (
	"context"

	"github.com/yigit/studentrecords/internal/app/models"
)

// Services defined in this package:
// - StudentService: students, with their academic records and medical information embedded
// - AcademicRecordService: academic records
// - MedicalInformationService: medical information
// - ExportService: the student roster workbook

// Transactor runs fn inside one storage transaction. Repositories called with the
// context handed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StudentRepository is the storage the student service needs.
type StudentRepository interface {
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, s *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// AcademicRecordRepository is the storage the academic record service needs.
type AcademicRecordRepository interface {
	Create(ctx context.Context, rec *models.AcademicRecord) error
	GetByID(ctx context.Context, id int64) (*models.AcademicRecord, error)
	List(ctx context.Context) ([]*models.AcademicRecord, error)
	ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.AcademicRecord, error)
	Update(ctx context.Context, rec *models.AcademicRecord) error
	Delete(ctx context.Context, id int64) error
}

// MedicalInformationRepository is the storage the medical information service needs.
type MedicalInformationRepository interface {
	Create(ctx context.Context, m *models.MedicalInformation) error
	GetByID(ctx context.Context, id int64) (*models.MedicalInformation, error)
	List(ctx context.Context) ([]*models.MedicalInformation, error)
	ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.MedicalInformation, error)
	Update(ctx context.Context, m *models.MedicalInformation) error
	Delete(ctx context.Context, id int64) error
}

// Dependencies are the storage handles the services are built from.
type Dependencies struct {
	Transactor         Transactor
	Students           StudentRepository
	AcademicRecords    AcademicRecordRepository
	MedicalInformation MedicalInformationRepository
}

// Services holds all the service instances
type Services struct {
	Students           StudentService
	AcademicRecords    AcademicRecordService
	MedicalInformation MedicalInformationService
	Export             ExportService
}

// NewServices initializes all services
func NewServices(deps Dependencies) *Services {
	students := NewStudentService(deps.Transactor, deps.Students, deps.AcademicRecords, deps.MedicalInformation)
	return &Services{
		Students:           students,
		AcademicRecords:    NewAcademicRecordService(deps.Transactor, deps.AcademicRecords, deps.Students),
		MedicalInformation: NewMedicalInformationService(deps.Transactor, deps.MedicalInformation, deps.Students),
		Export:             NewExportService(students),
	}
}

package repositories

import (
	"github.com/yigit/studentrecords/internal/db"
)

// Repositories holds all the PostgreSQL repository instances
type Repositories struct {
	Students           *StudentRepository
	AcademicRecords    *AcademicRecordRepository
	MedicalInformation *MedicalInformationRepository
	// Transactor opens the transaction the repositories above join through the context.
	Transactor *db.PostgresDB
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Students:           NewStudentRepository(database),
		AcademicRecords:    NewAcademicRecordRepository(database),
		MedicalInformation: NewMedicalInformationRepository(database),
		Transactor:         database,
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations.
// Students are always returned with their academic records and medical information loaded.
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	// UpdateStudent loads the student, lets apply change it and stores the result.
	// apply runs inside the transaction; its error aborts the update.
	UpdateStudent(ctx context.Context, id int64, apply func(*models.Student) error) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	tx          Transactor
	studentRepo StudentRepository
	recordRepo  AcademicRecordRepository
	medicalRepo MedicalInformationRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	tx Transactor,
	studentRepo StudentRepository,
	recordRepo AcademicRecordRepository,
	medicalRepo MedicalInformationRepository,
) StudentService {
	return &studentServiceImpl{
		tx:          tx,
		studentRepo: studentRepo,
		recordRepo:  recordRepo,
		medicalRepo: medicalRepo,
	}
}

// ListStudents retrieves all students ordered by id
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		students, err = s.studentRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("error retrieving students: %w", err)
		}
		return s.loadRelations(ctx, students)
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	var student *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		student, err = s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.loadRelations(ctx, []*models.Student{student})
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.studentRepo.Create(ctx, student)
	})
	if err != nil {
		return translateStoreError(err, 0)
	}
	student.AcademicRecords = []*models.AcademicRecord{}
	student.MedicalInfo = nil
	return nil
}

// UpdateStudent updates an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, apply func(*models.Student) error) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	var student *models.Student
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		student, err = s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(student); err != nil {
			return err
		}
		student.ID = id
		if err := s.studentRepo.Update(ctx, student); err != nil {
			return translateStoreError(err, 0)
		}
		return s.loadRelations(ctx, []*models.Student{student})
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent deletes a student with its academic records and medical information
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.studentRepo.Delete(ctx, id)
	})
}

// loadRelations attaches children to students with one query per child table.
func (s *studentServiceImpl) loadRelations(ctx context.Context, students []*models.Student) error {
	ids := make([]int64, 0, len(students))
	byID := make(map[int64]*models.Student, len(students))
	for _, st := range students {
		st.AcademicRecords = []*models.AcademicRecord{}
		st.MedicalInfo = nil
		ids = append(ids, st.ID)
		byID[st.ID] = st
	}
	if len(ids) == 0 {
		return nil
	}

	records, err := s.recordRepo.ListByStudentIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error retrieving academic records: %w", err)
	}
	for _, rec := range records {
		if st, ok := byID[rec.StudentID]; ok {
			st.AcademicRecords = append(st.AcademicRecords, rec)
		}
	}

	medical, err := s.medicalRepo.ListByStudentIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error retrieving medical information: %w", err)
	}
	for _, m := range medical {
		if st, ok := byID[m.StudentID]; ok {
			st.MedicalInfo = m
		}
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// AcademicRecordService defines the interface for academic record operations
type AcademicRecordService interface {
	ListAcademicRecords(ctx context.Context) ([]*models.AcademicRecord, error)
	GetAcademicRecord(ctx context.Context, id int64) (*models.AcademicRecord, error)
	CreateAcademicRecord(ctx context.Context, rec *models.AcademicRecord) error
	UpdateAcademicRecord(ctx context.Context, id int64, apply func(*models.AcademicRecord) error) (*models.AcademicRecord, error)
	DeleteAcademicRecord(ctx context.Context, id int64) error
}

// academicRecordServiceImpl implements the AcademicRecordService interface
type academicRecordServiceImpl struct {
	tx          Transactor
	recordRepo  AcademicRecordRepository
	studentRepo StudentRepository
}

// NewAcademicRecordService creates a new academic record service instance
func NewAcademicRecordService(tx Transactor, recordRepo AcademicRecordRepository, studentRepo StudentRepository) AcademicRecordService {
	return &academicRecordServiceImpl{
		tx:          tx,
		recordRepo:  recordRepo,
		studentRepo: studentRepo,
	}
}

// validateAcademicRecord checks the rules the request DTO cannot express
func (s *academicRecordServiceImpl) validateAcademicRecord(ctx context.Context, rec *models.AcademicRecord) error {
	if rec.GPA != nil {
		if msg := validation.ValidateGPA(*rec.GPA); msg != "" {
			return apperrors.NewValidationError("gpa", msg)
		}
	}
	return ensureStudentExists(ctx, s.studentRepo, rec.StudentID)
}

// ListAcademicRecords retrieves all academic records
func (s *academicRecordServiceImpl) ListAcademicRecords(ctx context.Context) ([]*models.AcademicRecord, error) {
	var records []*models.AcademicRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		records, err = s.recordRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic records: %w", err)
	}
	return records, nil
}

// GetAcademicRecord retrieves an academic record by ID
func (s *academicRecordServiceImpl) GetAcademicRecord(ctx context.Context, id int64) (*models.AcademicRecord, error) {
	if id <= 0 {
		return nil, apperrors.ErrAcademicRecordNotFound
	}

	var rec *models.AcademicRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.recordRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateAcademicRecord creates a new academic record
func (s *academicRecordServiceImpl) CreateAcademicRecord(ctx context.Context, rec *models.AcademicRecord) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateAcademicRecord(ctx, rec); err != nil {
			return err
		}
		if err := s.recordRepo.Create(ctx, rec); err != nil {
			return translateStoreError(err, rec.StudentID)
		}
		return nil
	})
}

// UpdateAcademicRecord updates an existing academic record
func (s *academicRecordServiceImpl) UpdateAcademicRecord(ctx context.Context, id int64, apply func(*models.AcademicRecord) error) (*models.AcademicRecord, error) {
	if id <= 0 {
		return nil, apperrors.ErrAcademicRecordNotFound
	}

	var rec *models.AcademicRecord
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.recordRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(rec); err != nil {
			return err
		}
		rec.ID = id
		if err := s.validateAcademicRecord(ctx, rec); err != nil {
			return err
		}
		if err := s.recordRepo.Update(ctx, rec); err != nil {
			return translateStoreError(err, rec.StudentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteAcademicRecord deletes an academic record
func (s *academicRecordServiceImpl) DeleteAcademicRecord(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrAcademicRecordNotFound
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.recordRepo.Delete(ctx, id)
	})
}

package services

import (
	"context"
	"fmt"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// MedicalInformationService defines the interface for medical information operations
type MedicalInformationService interface {
	ListMedicalInformation(ctx context.Context) ([]*models.MedicalInformation, error)
	GetMedicalInformation(ctx context.Context, id int64) (*models.MedicalInformation, error)
	CreateMedicalInformation(ctx context.Context, m *models.MedicalInformation) error
	UpdateMedicalInformation(ctx context.Context, id int64, apply func(*models.MedicalInformation) error) (*models.MedicalInformation, error)
	DeleteMedicalInformation(ctx context.Context, id int64) error
}

// medicalInformationServiceImpl implements the MedicalInformationService interface
type medicalInformationServiceImpl struct {
	tx          Transactor
	medicalRepo MedicalInformationRepository
	studentRepo StudentRepository
}

// NewMedicalInformationService creates a new medical information service instance
func NewMedicalInformationService(tx Transactor, medicalRepo MedicalInformationRepository, studentRepo StudentRepository) MedicalInformationService {
	return &medicalInformationServiceImpl{
		tx:          tx,
		medicalRepo: medicalRepo,
		studentRepo: studentRepo,
	}
}

// ListMedicalInformation retrieves all medical information
func (s *medicalInformationServiceImpl) ListMedicalInformation(ctx context.Context) ([]*models.MedicalInformation, error) {
	var list []*models.MedicalInformation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		list, err = s.medicalRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving medical information: %w", err)
	}
	return list, nil
}

// GetMedicalInformation retrieves medical information by ID
func (s *medicalInformationServiceImpl) GetMedicalInformation(ctx context.Context, id int64) (*models.MedicalInformation, error) {
	if id <= 0 {
		return nil, apperrors.ErrMedicalInfoNotFound
	}

	var m *models.MedicalInformation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.medicalRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMedicalInformation creates medical information for a student that has none
func (s *medicalInformationServiceImpl) CreateMedicalInformation(ctx context.Context, m *models.MedicalInformation) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := ensureStudentExists(ctx, s.studentRepo, m.StudentID); err != nil {
			return err
		}
		if err := s.medicalRepo.Create(ctx, m); err != nil {
			return translateStoreError(err, m.StudentID)
		}
		return nil
	})
}

// UpdateMedicalInformation updates existing medical information
func (s *medicalInformationServiceImpl) UpdateMedicalInformation(ctx context.Context, id int64, apply func(*models.MedicalInformation) error) (*models.MedicalInformation, error) {
	if id <= 0 {
		return nil, apperrors.ErrMedicalInfoNotFound
	}

	var m *models.MedicalInformation
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.medicalRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(m); err != nil {
			return err
		}
		m.ID = id
		if err := ensureStudentExists(ctx, s.studentRepo, m.StudentID); err != nil {
			return err
		}
		if err := s.medicalRepo.Update(ctx, m); err != nil {
			return translateStoreError(err, m.StudentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMedicalInformation deletes medical information
func (s *medicalInformationServiceImpl) DeleteMedicalInformation(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrMedicalInfoNotFound
	}
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.medicalRepo.Delete(ctx, id)
	})
}

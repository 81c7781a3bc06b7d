package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/db"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

const (
	medicalInformationTable = "medical_information"
	// one row per student
	medicalInformationStudentUnique = "medical_information_student_id_key"
	medicalInformationStudentFKey   = "medical_information_student_id_fkey"
)

var medicalInformationColumns = []string{
	"id", "student_id", "allergies", "medical_conditions",
	"emergency_contact_name", "emergency_contact_number", "created_at", "updated_at",
}

// MedicalInformationRepository handles medical information database operations
type MedicalInformationRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewMedicalInformationRepository creates a new MedicalInformationRepository
func NewMedicalInformationRepository(database *db.PostgresDB) *MedicalInformationRepository {
	return &MedicalInformationRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMedicalInformation(row pgx.Row) (*models.MedicalInformation, error) {
	m := &models.MedicalInformation{}
	err := row.Scan(
		&m.ID, &m.StudentID, &m.Allergies, &m.MedicalConditions,
		&m.EmergencyContactName, &m.EmergencyContactNumber, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func mapMedicalInformationWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, medicalInformationStudentUnique):
		return apperrors.ErrMedicalInfoAlreadyExists
	case dberrors.IsForeignKeyViolation(err, medicalInformationStudentFKey):
		return apperrors.ErrStudentReferenceInvalid
	}
	return err
}

// Create inserts medical information and fills in its id and timestamps
func (r *MedicalInformationRepository) Create(ctx context.Context, m *models.MedicalInformation) error {
	sql, args, err := r.sb.Insert(medicalInformationTable).
		Columns("student_id", "allergies", "medical_conditions", "emergency_contact_name", "emergency_contact_number").
		Values(m.StudentID, m.Allergies, m.MedicalConditions, m.EmergencyContactName, m.EmergencyContactNumber).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create medical information SQL")
		return fmt.Errorf("failed to build create medical information query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if mapped := mapMedicalInformationWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", m.StudentID).Msg("Error executing create medical information query")
		return fmt.Errorf("error creating medical information: %w", err)
	}
	return nil
}

// GetByID retrieves medical information by ID
func (r *MedicalInformationRepository) GetByID(ctx context.Context, id int64) (*models.MedicalInformation, error) {
	sql, args, err := r.sb.Select(medicalInformationColumns...).
		From(medicalInformationTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get medical information SQL")
		return nil, fmt.Errorf("failed to build get medical information query: %w", err)
	}

	m, err := scanMedicalInformation(r.db.Querier(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMedicalInfoNotFound
		}
		logger.Error().Err(err).Int64("medicalInformationID", id).Msg("Error scanning medical information row")
		return nil, fmt.Errorf("error getting medical information by ID: %w", err)
	}
	return m, nil
}

// List retrieves all medical information ordered by id
func (r *MedicalInformationRepository) List(ctx context.Context) ([]*models.MedicalInformation, error) {
	return r.query(ctx, r.sb.Select(medicalInformationColumns...).
		From(medicalInformationTable).
		OrderBy("id ASC"))
}

// ListByStudentIDs retrieves the medical information of any of the given students
func (r *MedicalInformationRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.MedicalInformation, error) {
	if len(studentIDs) == 0 {
		return []*models.MedicalInformation{}, nil
	}
	return r.query(ctx, r.sb.Select(medicalInformationColumns...).
		From(medicalInformationTable).
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("id ASC"))
}

func (r *MedicalInformationRepository) query(ctx context.Context, qb squirrel.SelectBuilder) ([]*models.MedicalInformation, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list medical information SQL")
		return nil, fmt.Errorf("failed to build list medical information query: %w", err)
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list medical information query")
		return nil, fmt.Errorf("error querying medical information: %w", err)
	}
	defer rows.Close()

	list := []*models.MedicalInformation{}
	for rows.Next() {
		m, err := scanMedicalInformation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning medical information row: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating medical information rows")
		return nil, fmt.Errorf("error iterating medical information rows: %w", err)
	}
	return list, nil
}

// Update overwrites every writable column and refreshes updated_at
func (r *MedicalInformationRepository) Update(ctx context.Context, m *models.MedicalInformation) error {
	sql, args, err := r.sb.Update(medicalInformationTable).
		SetMap(map[string]interface{}{
			"student_id":               m.StudentID,
			"allergies":                m.Allergies,
			"medical_conditions":       m.MedicalConditions,
			"emergency_contact_name":   m.EmergencyContactName,
			"emergency_contact_number": m.EmergencyContactNumber,
			"updated_at":               squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update medical information SQL")
		return fmt.Errorf("failed to build update medical information query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrMedicalInfoNotFound
		}
		if mapped := mapMedicalInformationWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Int64("medicalInformationID", m.ID).Msg("Error executing update medical information query")
		return fmt.Errorf("error updating medical information: %w", err)
	}
	return nil
}

// Delete removes medical information
func (r *MedicalInformationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(medicalInformationTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete medical information SQL")
		return fmt.Errorf("failed to build delete medical information query: %w", err)
	}

	cmdTag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("medicalInformationID", id).Msg("Error executing delete medical information query")
		return fmt.Errorf("error deleting medical information: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMedicalInfoNotFound
	}
	return nil
}

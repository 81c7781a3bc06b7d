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
	studentsTable = "students"
	// studentsEmailKey is the unique constraint on students.email.
	studentsEmailKey = "students_email_key"
)

var studentColumns = []string{
	"id", "first_name", "last_name", "date_of_birth", "gender",
	"address", "contact_number", "email", "created_at", "updated_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.DateOfBirth, &s.Gender,
		&s.Address, &s.ContactNumber, &s.Email, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func mapStudentWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, studentsEmailKey) {
		return apperrors.ErrEmailAlreadyExists
	}
	return err
}

// Create inserts a student and fills in its id and timestamps
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert(studentsTable).
		Columns("first_name", "last_name", "date_of_birth", "gender", "address", "contact_number", "email").
		Values(s.FirstName, s.LastName, s.DateOfBirth, s.Gender, s.Address, s.ContactNumber, s.Email).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if mapped := mapStudentWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.Querier(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return s, nil
}

// List retrieves all students ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Exists reports whether a student with id exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From(studentsTable).
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	if err := r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update overwrites every writable column and refreshes updated_at
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Update(studentsTable).
		SetMap(map[string]interface{}{
			"first_name":     s.FirstName,
			"last_name":      s.LastName,
			"date_of_birth":  s.DateOfBirth,
			"gender":         s.Gender,
			"address":        s.Address,
			"contact_number": s.ContactNumber,
			"email":          s.Email,
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if mapped := mapStudentWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", s.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// Delete removes a student; academic records and medical information go with it (ON DELETE CASCADE)
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(studentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

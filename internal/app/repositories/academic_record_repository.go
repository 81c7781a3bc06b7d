package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/db"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

const (
	academicRecordsTable      = "academic_records"
	academicRecordsStudentKey = "academic_records_student_id_fkey"
)

var academicRecordColumns = []string{
	"id", "student_id", "grade_level", "enrollment_date", "major", "gpa", "created_at", "updated_at",
}

// AcademicRecordRepository handles academic record database operations
type AcademicRecordRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAcademicRecordRepository creates a new AcademicRecordRepository
func NewAcademicRecordRepository(database *db.PostgresDB) *AcademicRecordRepository {
	return &AcademicRecordRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAcademicRecord(row pgx.Row) (*models.AcademicRecord, error) {
	rec := &models.AcademicRecord{}
	var gpa decimal.NullDecimal
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.GradeLevel, &rec.EnrollmentDate,
		&rec.Major, &gpa, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gpa.Valid {
		rec.GPA = &gpa.Decimal
	}
	return rec, nil
}

// gpaArg converts an optional gpa into a driver argument
func gpaArg(gpa *decimal.Decimal) interface{} {
	if gpa == nil {
		return nil
	}
	return *gpa
}

func mapAcademicRecordWriteError(err error) error {
	if dberrors.IsForeignKeyViolation(err, academicRecordsStudentKey) {
		return apperrors.ErrStudentReferenceInvalid
	}
	return err
}

// Create inserts an academic record and fills in its id and timestamps
func (r *AcademicRecordRepository) Create(ctx context.Context, rec *models.AcademicRecord) error {
	sql, args, err := r.sb.Insert(academicRecordsTable).
		Columns("student_id", "grade_level", "enrollment_date", "major", "gpa").
		Values(rec.StudentID, rec.GradeLevel, rec.EnrollmentDate, rec.Major, gpaArg(rec.GPA)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create academic record SQL")
		return fmt.Errorf("failed to build create academic record query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if mapped := mapAcademicRecordWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", rec.StudentID).Msg("Error executing create academic record query")
		return fmt.Errorf("error creating academic record: %w", err)
	}
	return nil
}

// GetByID retrieves an academic record by ID
func (r *AcademicRecordRepository) GetByID(ctx context.Context, id int64) (*models.AcademicRecord, error) {
	sql, args, err := r.sb.Select(academicRecordColumns...).
		From(academicRecordsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get academic record SQL")
		return nil, fmt.Errorf("failed to build get academic record query: %w", err)
	}

	rec, err := scanAcademicRecord(r.db.Querier(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicRecordNotFound
		}
		logger.Error().Err(err).Int64("academicRecordID", id).Msg("Error scanning academic record row")
		return nil, fmt.Errorf("error getting academic record by ID: %w", err)
	}
	return rec, nil
}

// List retrieves all academic records ordered by id
func (r *AcademicRecordRepository) List(ctx context.Context) ([]*models.AcademicRecord, error) {
	return r.query(ctx, r.sb.Select(academicRecordColumns...).
		From(academicRecordsTable).
		OrderBy("id ASC"))
}

// ListByStudentIDs retrieves the records owned by any of the given students
func (r *AcademicRecordRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.AcademicRecord, error) {
	if len(studentIDs) == 0 {
		return []*models.AcademicRecord{}, nil
	}
	return r.query(ctx, r.sb.Select(academicRecordColumns...).
		From(academicRecordsTable).
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("id ASC"))
}

func (r *AcademicRecordRepository) query(ctx context.Context, qb squirrel.SelectBuilder) ([]*models.AcademicRecord, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list academic records SQL")
		return nil, fmt.Errorf("failed to build list academic records query: %w", err)
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list academic records query")
		return nil, fmt.Errorf("error querying academic records: %w", err)
	}
	defer rows.Close()

	records := []*models.AcademicRecord{}
	for rows.Next() {
		rec, err := scanAcademicRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning academic record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating academic record rows")
		return nil, fmt.Errorf("error iterating academic record rows: %w", err)
	}
	return records, nil
}

// Update overwrites every writable column and refreshes updated_at
func (r *AcademicRecordRepository) Update(ctx context.Context, rec *models.AcademicRecord) error {
	sql, args, err := r.sb.Update(academicRecordsTable).
		SetMap(map[string]interface{}{
			"student_id":      rec.StudentID,
			"grade_level":     rec.GradeLevel,
			"enrollment_date": rec.EnrollmentDate,
			"major":           rec.Major,
			"gpa":             gpaArg(rec.GPA),
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": rec.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update academic record SQL")
		return fmt.Errorf("failed to build update academic record query: %w", err)
	}

	err = r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAcademicRecordNotFound
		}
		if mapped := mapAcademicRecordWriteError(err); mapped != err {
			return mapped
		}
		logger.Error().Err(err).Int64("academicRecordID", rec.ID).Msg("Error executing update academic record query")
		return fmt.Errorf("error updating academic record: %w", err)
	}
	return nil
}

// Delete removes an academic record
func (r *AcademicRecordRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(academicRecordsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete academic record SQL")
		return fmt.Errorf("failed to build delete academic record query: %w", err)
	}

	cmdTag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("academicRecordID", id).Msg("Error executing delete academic record query")
		return fmt.Errorf("error deleting academic record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicRecordNotFound
	}
	return nil
}

package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "students_email_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching constraint", err: pgErr, constraint: "students_email_key", want: true},
		{name: "wrapped", err: fmt.Errorf("insert: %w", pgErr), constraint: "students_email_key", want: true},
		{name: "other constraint", err: pgErr, constraint: "medical_information_student_id_key", want: false},
		{name: "other code", err: &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "students_email_key"}, constraint: "students_email_key", want: false},
		{name: "plain error", err: errors.New("boom"), constraint: "students_email_key", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tc.err, tc.constraint); got != tc.want {
				t.Fatalf("IsDuplicateConstraintError = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "academic_records_student_id_fkey"}

	if !IsForeignKeyViolation(pgErr, "") {
		t.Fatal("expected any-constraint match")
	}
	if !IsForeignKeyViolation(pgErr, "academic_records_student_id_fkey") {
		t.Fatal("expected named constraint match")
	}
	if IsForeignKeyViolation(pgErr, "medical_information_student_id_fkey") {
		t.Fatal("unexpected match on different constraint")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: UniqueViolation}, "") {
		t.Fatal("unique violation reported as foreign key violation")
	}
}

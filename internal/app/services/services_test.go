package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories/memory"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func newTestServices() *Services {
	store := memory.NewStore()
	return NewServices(Dependencies{
		Transactor:         store,
		Students:           store.Students(),
		AcademicRecords:    store.AcademicRecords(),
		MedicalInformation: store.MedicalInformation(),
	})
}

func newStudent(email string) *models.Student {
	return &models.Student{
		FirstName:     "Ann",
		LastName:      "Lee",
		DateOfBirth:   time.Date(2005, 4, 1, 0, 0, 0, 0, time.UTC),
		Gender:        "F",
		Address:       "1 Rd",
		ContactNumber: "555-0000",
		Email:         email,
	}
}

func mustCreateStudent(t *testing.T, svc *Services, email string) *models.Student {
	t.Helper()
	st := newStudent(email)
	if err := svc.Students.CreateStudent(context.Background(), st); err != nil {
		t.Fatalf("CreateStudent(%s): %v", email, err)
	}
	return st
}

func gpa(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// fieldMessage returns the first validation message reported for field.
func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation error", err)
	}
	msgs, ok := ce.Details[field].([]string)
	if !ok || len(msgs) == 0 {
		t.Fatalf("no message for %q in %v", field, ce.Details)
	}
	return msgs[0]
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	svc := newTestServices()
	created := mustCreateStudent(t, svc, "ann@example.com")
	if created.AcademicRecords == nil || len(created.AcademicRecords) != 0 || created.MedicalInfo != nil {
		t.Fatalf("new student relations = %+v / %+v", created.AcademicRecords, created.MedicalInfo)
	}

	err := svc.Students.CreateStudent(context.Background(), newStudent("ann@example.com"))
	if msg := fieldMessage(t, err, "email"); msg != msgEmailTaken {
		t.Fatalf("message = %q", msg)
	}

	mustCreateStudent(t, svc, "bob@example.com")
}

func TestCreateThenGetStudent(t *testing.T) {
	svc := newTestServices()
	created := mustCreateStudent(t, svc, "ann@example.com")

	got, err := svc.Students.GetStudent(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if got.FirstName != created.FirstName || got.Email != created.Email ||
		!got.DateOfBirth.Equal(created.DateOfBirth) || got.Address != created.Address {
		t.Fatalf("got %+v, want %+v", got, created)
	}
}

func TestGetStudentEmbedsOwnChildren(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")
	bob := mustCreateStudent(t, svc, "bob@example.com")

	for _, owner := range []int64{ann.ID, bob.ID, ann.ID} {
		rec := &models.AcademicRecord{StudentID: owner, GradeLevel: "10", EnrollmentDate: time.Now()}
		if err := svc.AcademicRecords.CreateAcademicRecord(ctx, rec); err != nil {
			t.Fatalf("CreateAcademicRecord: %v", err)
		}
	}
	med := &models.MedicalInformation{StudentID: bob.ID, EmergencyContactName: "Sam", EmergencyContactNumber: "1"}
	if err := svc.MedicalInformation.CreateMedicalInformation(ctx, med); err != nil {
		t.Fatalf("CreateMedicalInformation: %v", err)
	}

	got, err := svc.Students.GetStudent(ctx, ann.ID)
	if err != nil {
		t.Fatalf("GetStudent: %v", err)
	}
	if len(got.AcademicRecords) != 2 || got.MedicalInfo != nil {
		t.Fatalf("ann relations = %d records, medical %+v", len(got.AcademicRecords), got.MedicalInfo)
	}
	for _, rec := range got.AcademicRecords {
		if rec.StudentID != ann.ID {
			t.Fatalf("foreign record embedded: %+v", rec)
		}
	}

	all, err := svc.Students.ListStudents(ctx)
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(all) != 2 || all[1].MedicalInfo == nil || all[1].MedicalInfo.ID != med.ID || len(all[1].AcademicRecords) != 1 {
		t.Fatalf("list = %+v", all)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")

	rec := &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10"}
	med := &models.MedicalInformation{StudentID: ann.ID, EmergencyContactName: "Sam", EmergencyContactNumber: "1"}
	if err := svc.AcademicRecords.CreateAcademicRecord(ctx, rec); err != nil {
		t.Fatalf("CreateAcademicRecord: %v", err)
	}
	if err := svc.MedicalInformation.CreateMedicalInformation(ctx, med); err != nil {
		t.Fatalf("CreateMedicalInformation: %v", err)
	}

	if err := svc.Students.DeleteStudent(ctx, ann.ID); err != nil {
		t.Fatalf("DeleteStudent: %v", err)
	}
	if _, err := svc.AcademicRecords.GetAcademicRecord(ctx, rec.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("record after cascade err = %v", err)
	}
	if _, err := svc.MedicalInformation.GetMedicalInformation(ctx, med.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("medical after cascade err = %v", err)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	for _, id := range []int64{0, -1, 42} {
		if _, err := svc.Students.GetStudent(ctx, id); !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Errorf("GetStudent(%d) err = %v", id, err)
		}
		if err := svc.Students.DeleteStudent(ctx, id); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Errorf("DeleteStudent(%d) err = %v", id, err)
		}
		if _, err := svc.AcademicRecords.GetAcademicRecord(ctx, id); !errors.Is(err, apperrors.ErrAcademicRecordNotFound) {
			t.Errorf("GetAcademicRecord(%d) err = %v", id, err)
		}
		if err := svc.MedicalInformation.DeleteMedicalInformation(ctx, id); !errors.Is(err, apperrors.ErrMedicalInfoNotFound) {
			t.Errorf("DeleteMedicalInformation(%d) err = %v", id, err)
		}
	}

	called := false
	_, err := svc.Students.UpdateStudent(ctx, 42, func(*models.Student) error {
		called = true
		return nil
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) || called {
		t.Fatalf("UpdateStudent on missing id err = %v, apply called = %v", err, called)
	}
}

func TestAcademicRecordValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")

	tests := []struct {
		name    string
		rec     *models.AcademicRecord
		field   string
		message string
	}{
		{
			name:    "missing student",
			rec:     &models.AcademicRecord{StudentID: 99, GradeLevel: "10"},
			field:   "student",
			message: `Invalid pk "99" - object does not exist.`,
		},
		{
			name:    "too many integer digits",
			rec:     &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10", GPA: gpa("12.5")},
			field:   "gpa",
			message: "Ensure that there are no more than 1 digits before the decimal point.",
		},
		{
			name:    "too many decimal places",
			rec:     &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10", GPA: gpa("3.125")},
			field:   "gpa",
			message: "Ensure that there are no more than 3 digits in total.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AcademicRecords.CreateAcademicRecord(ctx, tc.rec)
			if msg := fieldMessage(t, err, tc.field); msg != tc.message {
				t.Fatalf("message = %q, want %q", msg, tc.message)
			}
		})
	}

	ok := &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10", GPA: gpa("3.5")}
	if err := svc.AcademicRecords.CreateAcademicRecord(ctx, ok); err != nil {
		t.Fatalf("CreateAcademicRecord: %v", err)
	}
	stored, _ := svc.AcademicRecords.GetAcademicRecord(ctx, ok.ID)
	if stored.GPA.StringFixed(2) != "3.50" {
		t.Fatalf("stored gpa = %s", stored.GPA)
	}

	all, _ := svc.AcademicRecords.ListAcademicRecords(ctx)
	if len(all) != 1 {
		t.Fatalf("failed creates were stored: %+v", all)
	}
}

func TestSecondMedicalInformationRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")

	first := &models.MedicalInformation{StudentID: ann.ID, EmergencyContactName: "Sam", EmergencyContactNumber: "1"}
	if err := svc.MedicalInformation.CreateMedicalInformation(ctx, first); err != nil {
		t.Fatalf("CreateMedicalInformation: %v", err)
	}
	second := &models.MedicalInformation{StudentID: ann.ID, EmergencyContactName: "Kim", EmergencyContactNumber: "2"}
	err := svc.MedicalInformation.CreateMedicalInformation(ctx, second)
	if msg := fieldMessage(t, err, "student"); msg != msgMedicalInfoTaken {
		t.Fatalf("message = %q", msg)
	}

	err = svc.MedicalInformation.CreateMedicalInformation(ctx, &models.MedicalInformation{StudentID: 77})
	if msg := fieldMessage(t, err, "student"); msg != `Invalid pk "77" - object does not exist.` {
		t.Fatalf("message = %q", msg)
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")
	mustCreateStudent(t, svc, "bob@example.com")

	updated, err := svc.Students.UpdateStudent(ctx, ann.ID, func(st *models.Student) error {
		st.Address = "9 Elm"
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateStudent: %v", err)
	}
	if updated.Address != "9 Elm" || updated.FirstName != "Ann" || updated.Email != "ann@example.com" {
		t.Fatalf("updated = %+v", updated)
	}
	if updated.AcademicRecords == nil {
		t.Fatal("relations not loaded after update")
	}

	_, err = svc.Students.UpdateStudent(ctx, ann.ID, func(st *models.Student) error {
		st.Email = "bob@example.com"
		return nil
	})
	if msg := fieldMessage(t, err, "email"); msg != msgEmailTaken {
		t.Fatalf("message = %q", msg)
	}

	applyErr := apperrors.NewValidationError("first_name", "This field is required.")
	if _, err := svc.Students.UpdateStudent(ctx, ann.ID, func(*models.Student) error { return applyErr }); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("apply error not returned: %v", err)
	}
	got, _ := svc.Students.GetStudent(ctx, ann.ID)
	if got.Address != "9 Elm" || got.Email != "ann@example.com" {
		t.Fatalf("failed updates leaked: %+v", got)
	}
}

func TestUpdateAcademicRecordRevalidates(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")

	rec := &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10", GPA: gpa("3.0")}
	if err := svc.AcademicRecords.CreateAcademicRecord(ctx, rec); err != nil {
		t.Fatalf("CreateAcademicRecord: %v", err)
	}

	_, err := svc.AcademicRecords.UpdateAcademicRecord(ctx, rec.ID, func(r *models.AcademicRecord) error {
		r.GPA = gpa("10.0")
		return nil
	})
	fieldMessage(t, err, "gpa")

	updated, err := svc.AcademicRecords.UpdateAcademicRecord(ctx, rec.ID, func(r *models.AcademicRecord) error {
		r.GPA = nil
		return nil
	})
	if err != nil || updated.GPA != nil || updated.GradeLevel != "10" {
		t.Fatalf("updated = %+v, err = %v", updated, err)
	}
}

func TestUpdateMedicalInformation(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")
	bob := mustCreateStudent(t, svc, "bob@example.com")

	annMed := &models.MedicalInformation{StudentID: ann.ID, EmergencyContactName: "Sam", EmergencyContactNumber: "1"}
	bobMed := &models.MedicalInformation{StudentID: bob.ID, EmergencyContactName: "Kim", EmergencyContactNumber: "2"}
	for _, m := range []*models.MedicalInformation{annMed, bobMed} {
		if err := svc.MedicalInformation.CreateMedicalInformation(ctx, m); err != nil {
			t.Fatalf("CreateMedicalInformation: %v", err)
		}
	}

	_, err := svc.MedicalInformation.UpdateMedicalInformation(ctx, bobMed.ID, func(m *models.MedicalInformation) error {
		m.StudentID = ann.ID
		return nil
	})
	fieldMessage(t, err, "student")

	updated, err := svc.MedicalInformation.UpdateMedicalInformation(ctx, bobMed.ID, func(m *models.MedicalInformation) error {
		m.Allergies = "Pollen"
		return nil
	})
	if err != nil || updated.Allergies != "Pollen" || updated.EmergencyContactName != "Kim" {
		t.Fatalf("updated = %+v, err = %v", updated, err)
	}

	list, _ := svc.MedicalInformation.ListMedicalInformation(ctx)
	if len(list) != 2 {
		t.Fatalf("list = %+v", list)
	}
}

func TestStudentRoster(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	ann := mustCreateStudent(t, svc, "ann@example.com")
	mustCreateStudent(t, svc, "bob@example.com")

	major := "Biology"
	rec := &models.AcademicRecord{StudentID: ann.ID, GradeLevel: "10", Major: &major, GPA: gpa("3.5"),
		EnrollmentDate: time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)}
	if err := svc.AcademicRecords.CreateAcademicRecord(ctx, rec); err != nil {
		t.Fatalf("CreateAcademicRecord: %v", err)
	}

	f, err := svc.Export.StudentRoster(ctx)
	if err != nil {
		t.Fatalf("StudentRoster: %v", err)
	}
	defer f.Close()

	want := []string{StudentsSheet, AcademicRecordsSheet, MedicalInformationSheet}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", got, want)
		}
	}

	rows, err := f.GetRows(StudentsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "ID" || rows[1][7] != "ann@example.com" {
		t.Fatalf("student rows = %v", rows)
	}

	rows, _ = f.GetRows(AcademicRecordsSheet)
	if len(rows) != 2 || rows[1][2] != "Ann Lee" || rows[1][4] != "2020-09-01" || rows[1][6] != "3.50" {
		t.Fatalf("record rows = %v", rows)
	}

	rows, _ = f.GetRows(MedicalInformationSheet)
	if len(rows) != 1 {
		t.Fatalf("medical rows = %v", rows)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	reopened, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer reopened.Close()
	if v, _ := reopened.GetCellValue(StudentsSheet, "C2"); v != "Lee" {
		t.Fatalf("C2 = %q", v)
	}
}

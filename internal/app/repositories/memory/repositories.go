package memory

import (
	"context"
	"sort"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentRepository stores students.
type StudentRepository struct {
	store *Store
}

// Create inserts a student and fills in its id and timestamps.
func (r *StudentRepository) Create(ctx context.Context, st *models.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(st.Email, 0) {
		return apperrors.ErrEmailAlreadyExists
	}
	s.nextStudentID++
	st.ID = s.nextStudentID
	st.CreatedAt = s.now()
	st.UpdatedAt = st.CreatedAt
	s.students[st.ID] = copyStudent(st)
	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return copyStudent(st), nil
}

// List retrieves all students ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, copyStudent(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Exists reports whether a student with id exists.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.students[id]
	return ok, nil
}

// Update overwrites every writable column and refreshes updated_at.
func (r *StudentRepository) Update(ctx context.Context, st *models.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.students[st.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if s.emailTaken(st.Email, st.ID) {
		return apperrors.ErrEmailAlreadyExists
	}
	st.CreatedAt = current.CreatedAt
	st.UpdatedAt = s.now()
	s.students[st.ID] = copyStudent(st)
	return nil
}

// Delete removes a student together with its academic records and medical information.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	for recID, rec := range s.records {
		if rec.StudentID == id {
			delete(s.records, recID)
		}
	}
	for mID, m := range s.medical {
		if m.StudentID == id {
			delete(s.medical, mID)
		}
	}
	return nil
}

// emailTaken matches the case-sensitive uniqueness of the PostgreSQL column.
func (s *Store) emailTaken(email string, exceptID int64) bool {
	for id, st := range s.students {
		if id != exceptID && st.Email == email {
			return true
		}
	}
	return false
}

// AcademicRecordRepository stores academic records.
type AcademicRecordRepository struct {
	store *Store
}

// Create inserts an academic record and fills in its id and timestamps.
func (r *AcademicRecordRepository) Create(ctx context.Context, rec *models.AcademicRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[rec.StudentID]; !ok {
		return apperrors.ErrStudentReferenceInvalid
	}
	s.nextRecordID++
	rec.ID = s.nextRecordID
	rec.CreatedAt = s.now()
	rec.UpdatedAt = rec.CreatedAt
	s.records[rec.ID] = copyAcademicRecord(rec)
	return nil
}

// GetByID retrieves an academic record by ID.
func (r *AcademicRecordRepository) GetByID(ctx context.Context, id int64) (*models.AcademicRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrAcademicRecordNotFound
	}
	return copyAcademicRecord(rec), nil
}

// List retrieves all academic records ordered by id.
func (r *AcademicRecordRepository) List(ctx context.Context) ([]*models.AcademicRecord, error) {
	return r.filter(func(*models.AcademicRecord) bool { return true }), nil
}

// ListByStudentIDs retrieves the records owned by any of the given students.
func (r *AcademicRecordRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.AcademicRecord, error) {
	wanted := idSet(studentIDs)
	return r.filter(func(rec *models.AcademicRecord) bool { return wanted[rec.StudentID] }), nil
}

func (r *AcademicRecordRepository) filter(keep func(*models.AcademicRecord) bool) []*models.AcademicRecord {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.AcademicRecord{}
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, copyAcademicRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update overwrites every writable column and refreshes updated_at.
func (r *AcademicRecordRepository) Update(ctx context.Context, rec *models.AcademicRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[rec.ID]
	if !ok {
		return apperrors.ErrAcademicRecordNotFound
	}
	if _, ok := s.students[rec.StudentID]; !ok {
		return apperrors.ErrStudentReferenceInvalid
	}
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = s.now()
	s.records[rec.ID] = copyAcademicRecord(rec)
	return nil
}

// Delete removes an academic record.
func (r *AcademicRecordRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return apperrors.ErrAcademicRecordNotFound
	}
	delete(s.records, id)
	return nil
}

// MedicalInformationRepository stores medical information.
type MedicalInformationRepository struct {
	store *Store
}

// Create inserts medical information and fills in its id and timestamps.
func (r *MedicalInformationRepository) Create(ctx context.Context, m *models.MedicalInformation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkMedicalStudent(m.StudentID, 0); err != nil {
		return err
	}
	s.nextMedicalID++
	m.ID = s.nextMedicalID
	m.CreatedAt = s.now()
	m.UpdatedAt = m.CreatedAt
	s.medical[m.ID] = copyMedicalInformation(m)
	return nil
}

// GetByID retrieves medical information by ID.
func (r *MedicalInformationRepository) GetByID(ctx context.Context, id int64) (*models.MedicalInformation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.medical[id]
	if !ok {
		return nil, apperrors.ErrMedicalInfoNotFound
	}
	return copyMedicalInformation(m), nil
}

// List retrieves all medical information ordered by id.
func (r *MedicalInformationRepository) List(ctx context.Context) ([]*models.MedicalInformation, error) {
	return r.filter(func(*models.MedicalInformation) bool { return true }), nil
}

// ListByStudentIDs retrieves the medical information of any of the given students.
func (r *MedicalInformationRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.MedicalInformation, error) {
	wanted := idSet(studentIDs)
	return r.filter(func(m *models.MedicalInformation) bool { return wanted[m.StudentID] }), nil
}

func (r *MedicalInformationRepository) filter(keep func(*models.MedicalInformation) bool) []*models.MedicalInformation {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.MedicalInformation{}
	for _, m := range s.medical {
		if keep(m) {
			out = append(out, copyMedicalInformation(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update overwrites every writable column and refreshes updated_at.
func (r *MedicalInformationRepository) Update(ctx context.Context, m *models.MedicalInformation) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.medical[m.ID]
	if !ok {
		return apperrors.ErrMedicalInfoNotFound
	}
	if err := s.checkMedicalStudent(m.StudentID, m.ID); err != nil {
		return err
	}
	m.CreatedAt = current.CreatedAt
	m.UpdatedAt = s.now()
	s.medical[m.ID] = copyMedicalInformation(m)
	return nil
}

// Delete removes medical information.
func (r *MedicalInformationRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.medical[id]; !ok {
		return apperrors.ErrMedicalInfoNotFound
	}
	delete(s.medical, id)
	return nil
}

// checkMedicalStudent enforces the foreign key and the one-per-student rule,
// checking uniqueness first as PostgreSQL does.
func (s *Store) checkMedicalStudent(studentID, exceptID int64) error {
	for id, m := range s.medical {
		if id != exceptID && m.StudentID == studentID {
			return apperrors.ErrMedicalInfoAlreadyExists
		}
	}
	if _, ok := s.students[studentID]; !ok {
		return apperrors.ErrStudentReferenceInvalid
	}
	return nil
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
